package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wavewatch/backend-go/internal/models"
)

// Narrative phrasing varies between generations, so the section is located
// by an ordered table of heading patterns, most precise first. The ordering
// is part of the contract: earlier tiers are stricter about markdown
// structure, the last tier accepts a bare label.
type sectionMatcher struct {
	name string
	re   *regexp.Regexp
}

// Major section markers terminate both the best-time section and the
// explanation field.
const sectionEnd = `(?:\*\*\d+\.|\d+\.\s*\*\*|specific recommendations|notable changes|\z)`

var sectionMatchers = []sectionMatcher{
	{
		name: "bold-heading",
		re:   regexp.MustCompile(`(?is)(?:\d+\.\s*)?\*\*best times? to surf\*\*:?\s*(.*?)` + sectionEnd),
	},
	{
		name: "bold-inline",
		re:   regexp.MustCompile(`(?is)best times? to surf:?\s*\*\*:?\s*(.*?)` + sectionEnd),
	},
	{
		name: "plain-label",
		re:   regexp.MustCompile(`(?is)best times? to surf:?\s*(.*?)` + sectionEnd),
	},
}

// findSection returns the narrative's best-time section, or ok=false when
// no heading tier matches.
func findSection(text string) (string, bool) {
	for _, m := range sectionMatchers {
		if groups := m.re.FindStringSubmatch(text); groups != nil {
			return groups[1], true
		}
	}
	return "", false
}

// timeRangePattern is the one mandatory field: H:MM with a meridiem,
// optionally extended to a range. Minutes and AM/PM are required so bare
// integers elsewhere in the section ("80/100") cannot pass as times.
var timeRangePattern = regexp.MustCompile(
	`(?i)\b\d{1,2}:\d{2}\s*(?:AM|PM)(?:\s*[-–—]\s*\d{1,2}:\d{2}\s*(?:AM|PM))?`)

// Optional field matchers, applied independently within a candidate entry.
// First match wins per field; a non-matching field stays nil.
var (
	ratingPattern = regexp.MustCompile(`(?i)(?:rating|score|rated)\s*:?\s*(\d{1,3})(?:\s*/\s*100)?`)

	waveRangePattern  = regexp.MustCompile(`(?i)wave[^\d]*?(?:height|size)?\s*:?\s*(\d+(?:\.\d+)?\s*[-–—]\s*\d+(?:\.\d+)?\s*ft)`)
	waveSinglePattern = regexp.MustCompile(`(?i)wave[^\d]*?(?:height|size)?\s*:?\s*(\d+(?:\.\d+)?\s*ft)`)

	periodPattern = regexp.MustCompile(`(?i)period[^\d]*?(\d+)\s*s(?:ec(?:ond)?s?)?\b`)

	windRangePattern  = regexp.MustCompile(`(?i)wind[^\d]*?(?:speed)?\s*:?\s*(\d+(?:\.\d+)?\s*[-–—]\s*\d+(?:\.\d+)?\s*mph)`)
	windSinglePattern = regexp.MustCompile(`(?i)wind[^\d]*?(?:speed)?\s*:?\s*(\d+(?:\.\d+)?\s*mph)`)

	explanationPattern      = regexp.MustCompile(`(?is)explanation\s*:?\s+(.+?)(?:\n\s*(?:specific recommendations|notable changes|\*\*\d+\.|\d+\.\s*\*\*)|\z)`)
	explanationLoosePattern = regexp.MustCompile(`(?is)(?:\*\*)?explanation\s*:?\s+(.+)`)

	markdownEmphasis  = regexp.MustCompile(`\*+`)
	innerSpaceRuns    = regexp.MustCompile(`[ \t]+`)
	blankLineRuns     = regexp.MustCompile(`\n[ \t]*\n+`)
	trailingColon     = regexp.MustCompile(`:\s*$`)
)

type fieldMatcher struct {
	name  string
	apply func(entry string, w *models.BestWindow)
}

// fieldMatchers is the explicit, auditable precedence table for the
// optional fields.
var fieldMatchers = []fieldMatcher{
	{"rating", matchRating},
	{"wave-height", matchWaveHeight},
	{"period", matchPeriod},
	{"wind-speed", matchWindSpeed},
	{"explanation", matchExplanation},
}

func matchRating(entry string, w *models.BestWindow) {
	groups := ratingPattern.FindStringSubmatch(entry)
	if groups == nil {
		return
	}
	rating, err := strconv.Atoi(groups[1])
	if err != nil || rating < 0 || rating > 100 {
		return
	}
	w.Rating = &rating
}

func matchWaveHeight(entry string, w *models.BestWindow) {
	if groups := waveRangePattern.FindStringSubmatch(entry); groups != nil {
		value := strings.TrimSpace(groups[1])
		w.WaveHeightRange = &value
		return
	}
	if groups := waveSinglePattern.FindStringSubmatch(entry); groups != nil {
		value := strings.TrimSpace(groups[1])
		w.WaveHeightRange = &value
	}
}

func matchPeriod(entry string, w *models.BestWindow) {
	groups := periodPattern.FindStringSubmatch(entry)
	if groups == nil {
		return
	}
	period, err := strconv.Atoi(groups[1])
	if err != nil {
		return
	}
	w.PeriodSeconds = &period
}

func matchWindSpeed(entry string, w *models.BestWindow) {
	if groups := windRangePattern.FindStringSubmatch(entry); groups != nil {
		value := strings.TrimSpace(groups[1])
		w.WindSpeedRange = &value
		return
	}
	if groups := windSinglePattern.FindStringSubmatch(entry); groups != nil {
		value := strings.TrimSpace(groups[1])
		w.WindSpeedRange = &value
	}
}

func matchExplanation(entry string, w *models.BestWindow) {
	groups := explanationPattern.FindStringSubmatch(entry)
	if groups == nil {
		groups = explanationLoosePattern.FindStringSubmatch(entry)
	}
	if groups == nil {
		return
	}

	value := cleanExplanation(groups[1])
	if value == "" {
		return
	}
	w.Explanation = &value
}

// cleanExplanation strips markdown emphasis, collapses inner whitespace to
// single spaces, squeezes blank-line runs to exactly one blank line, and
// drops trailing colons.
func cleanExplanation(raw string) string {
	value := markdownEmphasis.ReplaceAllString(raw, "")
	value = innerSpaceRuns.ReplaceAllString(value, " ")
	value = blankLineRuns.ReplaceAllString(value, "\n\n")
	value = strings.TrimSpace(value)
	value = trailingColon.ReplaceAllString(value, "")
	return strings.TrimSpace(value)
}
