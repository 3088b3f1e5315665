package chartimg

import (
	"bytes"
	"fmt"

	"github.com/etnz/stockio"
)

// RenderSVG converts curve geometry into a standalone SVG document: the
// gradient fill region first, the smoothed stroke on top, then the marker
// dots. Geometry coordinates are already in canvas space, so the SVG
// viewBox matches the canvas one to one. Empty geometry yields an empty
// picture, not an error.
func RenderSVG(g stockio.CurveGeometry, width, height float64, style stockio.StyleKey) []byte {
	color := "#" + hexFor(style)

	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n", width, height, width, height)
	fmt.Fprintf(&b, `<defs><linearGradient id="fill" x1="0" y1="0" x2="0" y2="1">`+
		`<stop offset="0%%" stop-color="%s" stop-opacity="0.3"/>`+
		`<stop offset="60%%" stop-color="%s" stop-opacity="0.1"/>`+
		`<stop offset="100%%" stop-color="%s" stop-opacity="0"/>`+
		`</linearGradient></defs>`+"\n", color, color, color)

	if !g.Empty() {
		fmt.Fprintf(&b, `<path d="%s" fill="url(#fill)" stroke="none"/>`+"\n", pathData(g.Fill))
		fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="%s" stroke-width="3" stroke-linecap="round" stroke-linejoin="round"/>`+"\n", pathData(g.Stroke), color)
		for _, m := range g.Markers {
			fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="5" fill="#ffffff"/><circle cx="%.2f" cy="%.2f" r="3" fill="%s"/>`+"\n", m.X, m.Y, m.X, m.Y, color)
		}
	}

	b.WriteString("</svg>\n")
	return b.Bytes()
}

func hexFor(key stockio.StyleKey) string {
	if hex, ok := styleColors[key]; ok {
		return hex
	}
	return "1565c0"
}

// pathData serializes path operations into SVG path syntax.
func pathData(ops []stockio.PathOp) string {
	var b bytes.Buffer
	for i, op := range ops {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch op.Kind {
		case stockio.OpMove:
			fmt.Fprintf(&b, "M %.2f %.2f", op.To.X, op.To.Y)
		case stockio.OpLine:
			fmt.Fprintf(&b, "L %.2f %.2f", op.To.X, op.To.Y)
		case stockio.OpQuad:
			fmt.Fprintf(&b, "Q %.2f %.2f %.2f %.2f", op.Control.X, op.Control.Y, op.To.X, op.To.Y)
		case stockio.OpClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}
