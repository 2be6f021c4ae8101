package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func TestExtractBestWindowFullEntry(t *testing.T) {
	text := "Best Time to Surf: 8:00 AM - 9:00 AM\n" +
		"* Rating: 80/100\n" +
		"* Wave Height: 4.2-4.8ft\n" +
		"* Wave Period: 14s\n" +
		"* Wind Speed: 0.6-1.2mph\n" +
		"Explanation: clean conditions"

	window := ExtractBestWindow(text)
	require.NotNil(t, window)

	assert.Equal(t, "8:00 AM - 9:00 AM", window.TimeRange)
	assert.Equal(t, intPtr(80), window.Rating)
	assert.Equal(t, strPtr("4.2-4.8ft"), window.WaveHeightRange)
	assert.Equal(t, intPtr(14), window.PeriodSeconds)
	assert.Equal(t, strPtr("0.6-1.2mph"), window.WindSpeedRange)
	assert.Equal(t, strPtr("clean conditions"), window.Explanation)
}

func TestExtractBestWindowBoldHeading(t *testing.T) {
	text := "1. **Wave Conditions**\n" +
		"Chest high and building through the morning.\n" +
		"2. **Best Times to Surf**:\n" +
		"7:30 AM - 9:00 AM\n" +
		"Rating: 75\n" +
		"3. **Wind**\n" +
		"Blown out after noon, 18mph onshore.\n"

	window := ExtractBestWindow(text)
	require.NotNil(t, window)

	assert.Equal(t, "7:30 AM - 9:00 AM", window.TimeRange)
	assert.Equal(t, intPtr(75), window.Rating)
	// The wind figure lives in the next numbered section and must not leak
	// into this window.
	assert.Nil(t, window.WindSpeedRange)
}

func TestExtractBestWindowHighestRatingWins(t *testing.T) {
	text := "Best Times to Surf:\n" +
		"6:00 AM - 7:00 AM\n" +
		"Rating: 60/100\n" +
		"9:00 AM - 10:00 AM\n" +
		"Rating: 90/100\n"

	window := ExtractBestWindow(text)
	require.NotNil(t, window)

	assert.Equal(t, "9:00 AM - 10:00 AM", window.TimeRange)
	assert.Equal(t, intPtr(90), window.Rating)
}

func TestExtractBestWindowUnratedLosesToRated(t *testing.T) {
	text := "Best Times to Surf:\n" +
		"6:00 AM - 7:00 AM\n" +
		"9:00 AM - 10:00 AM\n" +
		"Rating: 40/100\n"

	window := ExtractBestWindow(text)
	require.NotNil(t, window)

	assert.Equal(t, "9:00 AM - 10:00 AM", window.TimeRange)
}

func TestExtractBestWindowSingleTime(t *testing.T) {
	window := ExtractBestWindow("Best time to surf: 8:00 AM before the wind picks up.")
	require.NotNil(t, window)

	assert.Equal(t, "8:00 AM", window.TimeRange)
	assert.Nil(t, window.Rating)
	assert.Nil(t, window.WaveHeightRange)
	assert.Nil(t, window.PeriodSeconds)
	assert.Nil(t, window.WindSpeedRange)
}

func TestExtractBestWindowSingleValueFallbacks(t *testing.T) {
	text := "Best time to surf: 7:00 AM - 8:00 AM\n" +
		"Wave Height: 3ft\n" +
		"Wind Speed: 5mph\n"

	window := ExtractBestWindow(text)
	require.NotNil(t, window)

	assert.Equal(t, strPtr("3ft"), window.WaveHeightRange)
	assert.Equal(t, strPtr("5mph"), window.WindSpeedRange)
}

func TestExtractBestWindowExplanationCleanup(t *testing.T) {
	text := "Best time to surf: 7:00 AM - 8:00 AM\n" +
		"Explanation: Clean  **glassy**   conditions:"

	window := ExtractBestWindow(text)
	require.NotNil(t, window)
	assert.Equal(t, strPtr("Clean glassy conditions"), window.Explanation)
}

func TestExtractBestWindowExplanationStopsAtRecommendations(t *testing.T) {
	text := "Best time to surf: 7:00 AM - 8:00 AM\n" +
		"Explanation: good sandbars\n" +
		"Specific Recommendations: bring a longboard\n"

	window := ExtractBestWindow(text)
	require.NotNil(t, window)
	assert.Equal(t, strPtr("good sandbars"), window.Explanation)
}

func TestExtractBestWindowExplanationStopsAtNextSection(t *testing.T) {
	tests := []struct {
		name   string
		marker string
	}{
		{name: "bold-first marker", marker: "**3. Wind**"},
		{name: "number-first marker", marker: "3. **Wind**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "Best time to surf: 7:00 AM - 8:00 AM\n" +
				"Explanation: good sandbars\n" +
				tt.marker + "\nHowling onshore by lunch.\n"

			window := ExtractBestWindow(text)
			require.NotNil(t, window)
			assert.Equal(t, strPtr("good sandbars"), window.Explanation)
		})
	}
}

func TestExtractBestWindowRatingBounds(t *testing.T) {
	text := "Best time to surf: 7:00 AM - 8:00 AM\n" +
		"Rating: 500\n"

	window := ExtractBestWindow(text)
	require.NotNil(t, window)
	assert.Nil(t, window.Rating)
}

func TestExtractBestWindowNoMatch(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "no heading", text: "Totally flat today, maybe check back tomorrow at 6:00 AM."},
		{name: "heading without time", text: "Best time to surf: early morning before the wind."},
		{name: "bare integer is not a time", text: "Best time to surf: conditions rated 80/100."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ExtractBestWindow(tt.text))
		})
	}
}
