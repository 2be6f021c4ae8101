package tide

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/wavewatch/backend-go/internal/models"
)

const metersToFeet = 3.28084

// reconcileHarmonic converts raw reference predictions to the response
// shape: meters to feet, rounded to two decimals, time unshifted and
// stamped UTC.
func reconcileHarmonic(predictions []models.NoaaPrediction) ([]models.TidePoint, error) {
	points := make([]models.TidePoint, len(predictions))
	for i, p := range predictions {
		t, err := parseNoaaTime(p.Time)
		if err != nil {
			return nil, err
		}

		heightMeters, err := strconv.ParseFloat(p.Height, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing height %s: %w", p.Height, err)
		}

		points[i] = models.TidePoint{
			Time: formatUTC(t),
			Tide: round2(heightMeters * metersToFeet),
		}
	}
	return points, nil
}

// reconcileSubordinate transforms reference-station predictions into
// beach-local ones. The per-type height factor applies to the unrounded
// feet value; rounding happens after scaling, and the per-type time offset
// is added last.
func reconcileSubordinate(predictions []models.NoaaPrediction, offsets *models.TideOffsets) ([]models.TidePoint, error) {
	points := make([]models.TidePoint, len(predictions))
	for i, p := range predictions {
		t, err := parseNoaaTime(p.Time)
		if err != nil {
			return nil, err
		}

		heightMeters, err := strconv.ParseFloat(p.Height, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing height %s: %w", p.Height, err)
		}

		heightFeet := heightMeters * metersToFeet

		var factor float64
		var shiftMinutes int
		if classifyTideType(p.Type) == models.TideTypeHigh {
			factor = offsets.HeightHighFactor
			shiftMinutes = offsets.TimeHighMinutes
		} else {
			factor = offsets.HeightLowFactor
			shiftMinutes = offsets.TimeLowMinutes
		}

		points[i] = models.TidePoint{
			Time: formatUTC(t.Add(time.Duration(shiftMinutes) * time.Minute)),
			Tide: round2(heightFeet * factor),
		}
	}
	return points, nil
}

// classifyTideType maps the NOAA type letter to a tide type. Anything other
// than 'H' is treated as a low; there is no third category.
func classifyTideType(letter *string) models.TideType {
	if letter != nil && (*letter == "H" || *letter == "h") {
		return models.TideTypeHigh
	}
	return models.TideTypeLow
}

// parseNoaaTime parses the naive timestamps NOAA returns, minute precision
// with a seconds-bearing fallback.
func parseNoaaTime(timeStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04", timeStr)
	if err != nil {
		t, err = time.Parse("2006-01-02 15:04:05", timeStr)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing time %s: %w", timeStr, err)
		}
	}
	return t, nil
}

// formatUTC stamps a timestamp as UTC with the literal +00:00 suffix the
// response contract requires.
func formatUTC(t time.Time) string {
	return t.Format("2006-01-02T15:04:05") + "+00:00"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
