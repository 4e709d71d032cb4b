package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDurationToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{
			name:  "hours and minutes",
			token: "PT2H30M",
			want:  "2h 30m",
		},
		{
			name:  "hours only",
			token: "PT7H",
			want:  "7h",
		},
		{
			name:  "minutes only",
			token: "PT45M",
			want:  "45m",
		},
		{
			name:  "large hour count",
			token: "PT14H5M",
			want:  "14h 5m",
		},
		{
			name:  "non-matching token passes through",
			token: "2 hours",
			want:  "2 hours",
		},
		{
			name:  "bare PT passes through",
			token: "PT",
			want:  "PT",
		},
		{
			name:  "empty token passes through",
			token: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDurationToken(tt.token))
		})
	}
}

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		name      string
		formatted string
		want      int
	}{
		{
			name:      "hours and minutes",
			formatted: "2h 30m",
			want:      150,
		},
		{
			name:      "hours only",
			formatted: "3h",
			want:      180,
		},
		{
			name:      "minutes only",
			formatted: "45m",
			want:      45,
		},
		{
			name:      "unparseable string counts as zero",
			formatted: "unknown",
			want:      0,
		},
		{
			name:      "empty string",
			formatted: "",
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDurationMinutes(tt.formatted))
		})
	}
}

// Formatting a token and re-parsing it must be lossless for well-formed
// durations.
func TestDurationRoundTrip(t *testing.T) {
	formatted := FormatDurationToken("PT2H30M")
	assert.Equal(t, "2h 30m", formatted)
	assert.Equal(t, 150, ParseDurationMinutes(formatted))
}
