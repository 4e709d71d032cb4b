// Package chart renders the hourly price series as a PNG bar chart for
// clients that want a server-side image instead of drawing the series
// themselves.
package chart

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/luckylamd/flight-search-engine/internal/domain"
)

const (
	chartWidth  = 1200
	chartHeight = 400
	barWidth    = 30
)

// RenderHourlyPrices renders the 24-bucket hourly price series as a PNG
// bar chart. Buckets with no flights render as zero-height bars.
func RenderHourlyPrices(points []domain.HourlyPricePoint, title string) ([]byte, error) {
	bars := make([]chart.Value, 0, len(points))
	maxPrice := 0
	for _, p := range points {
		bars = append(bars, chart.Value{
			Label: p.Hour,
			Value: float64(p.Price),
		})
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
	}

	// go-chart rejects a zero-size value range, so keep the axis open even
	// when every bucket is empty.
	if maxPrice == 0 {
		maxPrice = 1
	}

	graph := chart.BarChart{
		Title: title,
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: barWidth,
		XAxis: chart.Style{
			StrokeColor: drawing.ColorBlack,
			FontSize:    8,
		},
		YAxis: chart.YAxis{
			Name: "Average price",
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64(maxPrice),
			},
			GridMajorStyle: chart.Style{
				StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
				StrokeWidth: 1.0,
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
