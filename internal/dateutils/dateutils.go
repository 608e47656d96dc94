// Package dateutils provides date extraction helpers for CAMT documents.
package dateutils

import "regexp"

// Banks emit both plain dates and full timestamps (with or without offsets);
// the first calendar-date substring is what we keep.
var isoDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// ExtractISODate returns the first YYYY-MM-DD substring in s, or "" when no
// calendar date is present. Trailing time and zone offsets are tolerated.
func ExtractISODate(s string) string {
	return isoDatePattern.FindString(s)
}

// Latest returns the lexicographically greatest of the given ISO dates,
// ignoring empty strings. ISO calendar dates order correctly as strings.
func Latest(dates []string) string {
	var latest string
	for _, d := range dates {
		if d == "" {
			continue
		}
		if latest == "" || d > latest {
			latest = d
		}
	}
	return latest
}

// Earliest returns the lexicographically smallest of the given ISO dates,
// ignoring empty strings.
func Earliest(dates []string) string {
	var earliest string
	for _, d := range dates {
		if d == "" {
			continue
		}
		if earliest == "" || d < earliest {
			earliest = d
		}
	}
	return earliest
}
