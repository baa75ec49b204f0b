// Package dateutils provides the date parsing and normalization rules
// of the conversion pipeline. All input dates follow the day-first
// convention: an ambiguous "01/02/2024" reads as 1 February 2024.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// LayoutCompact is the 8-digit ddmmyyyy form used in RAW headers, tag
// values and filenames.
const LayoutCompact = "02012006"

// dayFirstFormats lists the layouts tried when parsing an input date,
// in order. Ambiguous numeric layouts are all day-first; ISO dates are
// unambiguous and accepted as-is.
var dayFirstFormats = []string{
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"2006-01-02",
	"02 Jan 2006",
	"2 January 2006",
}

var spaceRe = regexp.MustCompile(`\s+`)

// Clean trims a date string and collapses internal runs of whitespace.
func Clean(dateStr string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDayFirst parses a date string under the day-first convention.
func ParseDayFirst(dateStr string) (time.Time, error) {
	cleaned := Clean(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, format := range dayFirstFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// Compact renders a time as ddmmyyyy.
func Compact(t time.Time) string {
	return t.Format(LayoutCompact)
}

// NormalizeDayFirst parses a date string day-first and renders it as
// ddmmyyyy. Two input strings denote the same calendar day exactly
// when their normalized forms are equal.
func NormalizeDayFirst(dateStr string) (string, error) {
	t, err := ParseDayFirst(dateStr)
	if err != nil {
		return "", err
	}
	return Compact(t), nil
}
