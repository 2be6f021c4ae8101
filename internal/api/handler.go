package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/wavewatch/backend-go/internal/models"
)

type APIResponse struct {
	ResponseType string `json:"responseType"`
}

type TideSeriesResponse struct {
	APIResponse
	Date string `json:"date"`
	models.TideSeries
}

type BestWindowResponse struct {
	APIResponse
	BestWindow *models.BestWindow `json:"bestWindow"`
}

type BeachesResponse struct {
	APIResponse
	Beaches []string `json:"beaches"`
}

type ErrorResponse struct {
	APIResponse
	Error string `json:"error"`
}

func NewTideSeriesResponse(series *models.TideSeries, date string) *TideSeriesResponse {
	return &TideSeriesResponse{
		APIResponse: APIResponse{ResponseType: "tide"},
		Date:        date,
		TideSeries:  *series,
	}
}

func NewBestWindowResponse(window *models.BestWindow) *BestWindowResponse {
	return &BestWindowResponse{
		APIResponse: APIResponse{ResponseType: "bestWindow"},
		BestWindow:  window,
	}
}

func NewBeachesResponse(beaches []string) *BeachesResponse {
	return &BeachesResponse{
		APIResponse: APIResponse{ResponseType: "beaches"},
		Beaches:     beaches,
	}
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		APIResponse: APIResponse{ResponseType: "error"},
		Error:       message,
	}
}

// Response helpers
func Success(body interface{}) (events.APIGatewayProxyResponse, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return Error("Internal Server Error", http.StatusInternalServerError)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(jsonBody),
	}, nil
}

func Error(message string, statusCode int) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(NewErrorResponse(message))

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}, nil
}

// Parameter parsing helpers

type MissingParameterError struct {
	Name string
}

func (e MissingParameterError) Error() string {
	return "missing required parameter: " + e.Name
}

type InvalidDateError struct{}

func (e InvalidDateError) Error() string {
	return "Invalid date format. Use YYYY-MM-DD"
}

// ParseBeachDate extracts and validates the beach and date query
// parameters. An absent date defaults to today (UTC).
func ParseBeachDate(params map[string]string) (string, string, error) {
	beach, hasBeach := params["beach"]
	if !hasBeach || beach == "" {
		return "", "", MissingParameterError{Name: "beach"}
	}

	dateStr, hasDate := params["date"]
	if !hasDate || dateStr == "" {
		return beach, time.Now().UTC().Format("2006-01-02"), nil
	}

	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return "", "", InvalidDateError{}
	}

	return beach, dateStr, nil
}
