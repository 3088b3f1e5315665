// Package chartimg renders stockio price data to image formats. It is a
// presentation collaborator: the core produces series and curve geometry,
// this package turns them into PNG and SVG bytes.
package chartimg

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/etnz/stockio"
)

// styleColors resolves the core's opaque style keys to hex colors. Unknown
// keys fall back to the primary blue.
var styleColors = map[stockio.StyleKey]string{
	"blue":    "1565c0",
	"green":   "4caf50",
	"red":     "e53935",
	"emerald": "00aa5b",
	"azure":   "0078d4",
	"brown":   "795548",
	"purple":  "673ab7",
	"orange":  "ff9800",
	"teal":    "009688",
	"slate":   "607d8b",
	"violet":  "9c27b0",
	"indigo":  "627eea",
	"amber":   "f3ba2f",
	"navy":    "0033ad",
}

func colorFor(key stockio.StyleKey) drawing.Color {
	hex, ok := styleColors[key]
	if !ok {
		hex = "1565c0"
	}
	return drawing.ColorFromHex(hex)
}

// RenderPNG renders a PNG line chart of an asset's price history. Returns
// raw PNG bytes.
func RenderPNG(asset stockio.Asset, width, height int) ([]byte, error) {
	prices := asset.History
	if len(prices) < 2 {
		return nil, fmt.Errorf("render %s: need at least 2 data points, got %d", asset.Code, len(prices))
	}

	xValues := make([]float64, len(prices))
	for i := range prices {
		xValues[i] = float64(i)
	}

	stroke := colorFor(asset.Style)
	series := chart.ContinuousSeries{
		Name: asset.Code,
		Style: chart.Style{
			StrokeColor: stroke,
			StrokeWidth: 2.5,
			FillColor:   stroke.WithAlpha(60),
		},
		XValues: xValues,
		YValues: prices,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s - %s", asset.Code, asset.Name),
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("d%d", int(f))
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return formatAxisPrice(f)
				}
				return ""
			},
		},
		Series: []chart.Series{series},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// formatAxisPrice keeps axis labels short for rupiah-scale prices.
func formatAxisPrice(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
