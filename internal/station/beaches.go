package station

import (
	"sort"
	"strings"
)

// tideStations maps surf beach names to their nearest NOAA tide station.
// Keys are lowercase; lookup is exact-match only, a missing beach is a hard
// miss rather than a fuzzy match.
var tideStations = map[string]string{
	"pleasure point":   "9413745", // Santa Cruz, CA
	"santa cruz":       "9413745", // Santa Cruz, CA
	"malibu":           "9410660", // Los Angeles, CA
	"pipeline":         "1612340", // Honolulu, HI
	"trestles":         "9410660", // Los Angeles, CA (closest)
	"mavericks":        "9413450", // Half Moon Bay, CA
	"huntington beach": "9410660", // Los Angeles, CA
	"venice beach":     "9410660", // Los Angeles, CA
	"manhattan beach":  "9410660", // Los Angeles, CA
	"hermosa beach":    "9410660", // Los Angeles, CA
	"redondo beach":    "9410660", // Los Angeles, CA
	"el segundo":       "9410660", // Los Angeles, CA
	"scripps":          "9410230", // La Jolla, CA
	"tourmaline":       "9410230", // La Jolla, CA
	"linda mar":        "9414290", // San Francisco, CA (closest to Pacifica)
}

// StationIDForBeach resolves a beach name, case-insensitively, to its tide
// station id.
func StationIDForBeach(beachName string) (string, bool) {
	id, ok := tideStations[strings.ToLower(strings.TrimSpace(beachName))]
	return id, ok
}

// Beaches returns the known beach names in sorted order, for listing
// endpoints.
func Beaches() []string {
	names := make([]string, 0, len(tideStations))
	for name := range tideStations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
