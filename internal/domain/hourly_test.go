package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourlyTestFlight(id string, price float64, departureTime string) Flight {
	return Flight{
		ID:            id,
		Price:         price,
		Currency:      "USD",
		Airline:       "BA",
		Duration:      "7h 0m",
		Origin:        "NYC",
		Destination:   "LON",
		DepartureTime: departureTime,
	}
}

func TestBucketHourly_EmptyInput(t *testing.T) {
	series := BucketHourly(nil)

	require.Len(t, series, HourBuckets)
	for h, point := range series {
		assert.Equal(t, fmt.Sprintf("%02d:00", h), point.Hour)
		assert.Equal(t, 0, point.Price)
	}
}

func TestBucketHourly_AveragesPerHour(t *testing.T) {
	flights := []Flight{
		hourlyTestFlight("1", 100, "2026-03-01T08:15:00Z"),
		hourlyTestFlight("2", 200, "2026-03-01T08:45:00Z"),
		hourlyTestFlight("3", 450, "2026-03-01T21:00:00Z"),
	}

	series := BucketHourly(flights)

	require.Len(t, series, HourBuckets)
	assert.Equal(t, "08:00", series[8].Hour)
	assert.Equal(t, 150, series[8].Price)
	assert.Equal(t, 450, series[21].Price)
	assert.Equal(t, 0, series[0].Price)
}

func TestBucketHourly_RoundsAverage(t *testing.T) {
	flights := []Flight{
		hourlyTestFlight("1", 100, "2026-03-01T10:00:00Z"),
		hourlyTestFlight("2", 101, "2026-03-01T10:30:00Z"),
	}

	series := BucketHourly(flights)

	// 100.5 rounds up
	assert.Equal(t, 101, series[10].Price)
}

func TestBucketHourly_UsesUTCHour(t *testing.T) {
	// 23:30 at +02:00 is 21:30 UTC
	flights := []Flight{hourlyTestFlight("1", 300, "2026-03-01T23:30:00+02:00")}

	series := BucketHourly(flights)

	assert.Equal(t, 300, series[21].Price)
	assert.Equal(t, 0, series[23].Price)
}

func TestBucketHourly_UnparseableTimestampFallsToHourZero(t *testing.T) {
	flights := []Flight{hourlyTestFlight("1", 250, "not-a-timestamp")}

	series := BucketHourly(flights)

	assert.Equal(t, 250, series[0].Price)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:  "RFC3339 with zone",
			value: "2026-03-01T08:15:00+01:00",
		},
		{
			name:  "zone-less ISO",
			value: "2026-03-01T08:15:00",
		},
		{
			name:    "garbage",
			value:   "tomorrow",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTimestamp(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
