package main

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRequestExtractsWindow(t *testing.T) {
	body, err := json.Marshal(map[string]string{
		"analysisText": "Best Time to Surf: 8:00 AM - 9:00 AM\n" +
			"* Rating: 80/100\n" +
			"* Wave Height: 4.2-4.8ft\n" +
			"Explanation: clean conditions",
	})
	require.NoError(t, err)

	resp, err := handleRequest(context.Background(), events.APIGatewayProxyRequest{Body: string(body)})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &decoded))
	assert.Equal(t, "bestWindow", decoded["responseType"])

	window, ok := decoded["bestWindow"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "8:00 AM - 9:00 AM", window["timeRange"])
	assert.Equal(t, float64(80), window["rating"])
	assert.Equal(t, "4.2-4.8ft", window["waveHeightRange"])
	assert.Equal(t, "clean conditions", window["explanation"])
}

func TestHandleRequestNoWindowIsStillOK(t *testing.T) {
	body, err := json.Marshal(map[string]string{
		"analysisText": "Flat all day, not worth paddling out.",
	})
	require.NoError(t, err)

	resp, err := handleRequest(context.Background(), events.APIGatewayProxyRequest{Body: string(body)})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &decoded))

	value, present := decoded["bestWindow"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestHandleRequestInvalidBody(t *testing.T) {
	resp, err := handleRequest(context.Background(), events.APIGatewayProxyRequest{Body: "{not json"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, resp.Body, "invalid request body")
}
