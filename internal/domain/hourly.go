package domain

import (
	"fmt"
	"math"
	"time"
)

// HourBuckets is the number of hourly buckets in a price series (one per
// UTC hour of day).
const HourBuckets = 24

// HourlyPricePoint is one bucket of the hourly average-price series.
type HourlyPricePoint struct {
	// Hour is the bucket label in "HH:00" 24-hour UTC form
	Hour string `json:"hour"`

	// Price is the rounded average price of flights departing in this hour,
	// or 0 when no flight contributed to the bucket
	Price int `json:"price"`
}

// ParseTimestamp parses an upstream ISO-8601 timestamp. Zone-less
// timestamps are interpreted as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse("2006-01-02T15:04:05", value)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse timestamp %q", value)
}

// departureHour returns the UTC hour-of-day bucket for a flight.
// Timestamps that fail to parse land in bucket 0.
func departureHour(f Flight) int {
	t, err := ParseTimestamp(f.DepartureTime)
	if err != nil {
		return 0
	}
	return t.UTC().Hour()
}

// BucketHourly aggregates flights into hourly average-price buckets keyed
// by the UTC hour of departure. All 24 hours are always emitted in
// increasing order, labelled "00:00" through "23:00"; hours with no
// contributing flights report price 0.
func BucketHourly(flights []Flight) []HourlyPricePoint {
	var totals [HourBuckets]float64
	var counts [HourBuckets]int

	for _, f := range flights {
		h := departureHour(f)
		totals[h] += f.Price
		counts[h]++
	}

	series := make([]HourlyPricePoint, HourBuckets)
	for h := 0; h < HourBuckets; h++ {
		price := 0
		if counts[h] > 0 {
			price = int(math.Round(totals[h] / float64(counts[h])))
		}
		series[h] = HourlyPricePoint{
			Hour:  fmt.Sprintf("%02d:00", h),
			Price: price,
		}
	}
	return series
}
