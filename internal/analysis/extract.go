// Package analysis extracts a single structured best-surf-window record
// from free-text AI narrative. It is best-effort text scraping, not a
// grammar: matchers are held in explicit ordered tables so the precedence
// between tiers stays auditable.
package analysis

import (
	"sort"
	"strings"

	"github.com/wavewatch/backend-go/internal/models"
)

// ExtractBestWindow parses the narrative into a best-window record, or nil
// when no recognizable section or time range exists. It never fails:
// absence of a match is a valid outcome, not an error.
func ExtractBestWindow(text string) *models.BestWindow {
	section, ok := findSection(text)
	if !ok {
		return nil
	}

	candidates := splitCandidates(section)
	if len(candidates) == 0 {
		return nil
	}

	windows := make([]models.BestWindow, len(candidates))
	for i, c := range candidates {
		windows[i] = parseCandidate(c)
	}

	// Malformed upstream text can yield several time matches; only the
	// highest-rated window survives, with a nil rating sorting as zero.
	sort.SliceStable(windows, func(i, j int) bool {
		return ratingOrZero(windows[i].Rating) > ratingOrZero(windows[j].Rating)
	})

	return &windows[0]
}

type candidate struct {
	timeRange string
	entry     string
}

// splitCandidates slices the section into one entry per time match, each
// entry running to the start of the next time match.
func splitCandidates(section string) []candidate {
	locations := timeRangePattern.FindAllStringIndex(section, -1)
	if locations == nil {
		return nil
	}

	candidates := make([]candidate, len(locations))
	for i, loc := range locations {
		end := len(section)
		if i+1 < len(locations) {
			end = locations[i+1][0]
		}
		candidates[i] = candidate{
			timeRange: strings.TrimSpace(section[loc[0]:loc[1]]),
			entry:     section[loc[0]:end],
		}
	}
	return candidates
}

func parseCandidate(c candidate) models.BestWindow {
	window := models.BestWindow{TimeRange: c.timeRange}
	for _, matcher := range fieldMatchers {
		matcher.apply(c.entry, &window)
	}
	return window
}

func ratingOrZero(rating *int) int {
	if rating == nil {
		return 0
	}
	return *rating
}
