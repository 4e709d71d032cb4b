package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Duration parsing patterns. The upstream reports itinerary durations as
// ISO-8601 tokens ("PT2H30M"); the display form is "2h 30m".
var (
	durationTokenPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)
	hoursPattern         = regexp.MustCompile(`(\d+)h`)
	minutesPattern       = regexp.MustCompile(`(\d+)m`)
)

// FormatDurationToken converts an ISO-8601 duration token into the display
// form: "PT2H30M" -> "2h 30m", "PT45M" -> "45m". Both components are
// optional. Tokens that do not match the pattern, or that match with no
// components at all, are passed through unchanged.
func FormatDurationToken(token string) string {
	m := durationTokenPattern.FindStringSubmatch(token)
	if m == nil {
		return token
	}

	var hours, minutes string
	if m[1] != "" {
		hours = m[1] + "h"
	}
	if m[2] != "" {
		minutes = m[2] + "m"
	}

	formatted := strings.TrimSpace(hours + " " + minutes)
	if formatted == "" {
		return token
	}
	return formatted
}

// ParseDurationMinutes parses a formatted duration string back to total
// minutes by extracting the digits preceding "h" and "m". Missing
// components count as zero, so "3h" parses to 180 and "45m" to 45.
func ParseDurationMinutes(formatted string) int {
	total := 0
	if m := hoursPattern.FindStringSubmatch(formatted); m != nil {
		n, _ := strconv.Atoi(m[1])
		total += n * 60
	}
	if m := minutesPattern.FindStringSubmatch(formatted); m != nil {
		n, _ := strconv.Atoi(m[1])
		total += n
	}
	return total
}
