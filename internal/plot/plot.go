// Package plot renders a jump-height series into a PNG chart.
package plot

import (
	"bytes"
	"fmt"
	"time"

	"github.com/johnzhangfit/verttracker/internal/jump"
	"github.com/wcharczuk/go-chart/v2"
)

// Render draws jump height over local days and returns the encoded PNG.
// The series must be non-empty and day-ascending.
func Render(series []jump.Entry, heightUnit string) ([]byte, error) {
	xs := make([]time.Time, len(series))
	ys := make([]float64, len(series))
	maxHeight := 0.0
	for i, e := range series {
		xs[i] = e.Day
		ys[i] = e.Height
		if e.Height > maxHeight {
			maxHeight = e.Height
		}
	}

	graph := chart.Chart{
		Title:  "jump height over time",
		Width:  900,
		Height: 500,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: fmt.Sprintf("height (%s)", heightUnit),
			// go-chart refuses zero-delta ranges, so pin the axis
			// from zero past the best jump.
			Range: &chart.ContinuousRange{Min: 0, Max: maxHeight * 1.1},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "height",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: 2,
					DotWidth:    4,
				},
			},
		},
	}

	// A one-day series also has a zero-delta X range; widen it a day each way.
	if len(series) == 1 || series[0].Day.Equal(series[len(series)-1].Day) {
		day := series[0].Day
		graph.XAxis.Range = &chart.ContinuousRange{
			Min: chart.TimeToFloat64(day.AddDate(0, 0, -1)),
			Max: chart.TimeToFloat64(day.AddDate(0, 0, 1)),
		}
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
