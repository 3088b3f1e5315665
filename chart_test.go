package stockio

import "testing"

func TestBuildCurve_DegenerateSeries(t *testing.T) {
	if g := BuildCurve(nil, 300, 200); !g.Empty() {
		t.Errorf("BuildCurve(nil) not empty: %+v", g)
	}
	if g := BuildCurve([]float64{42}, 300, 200); !g.Empty() {
		t.Errorf("BuildCurve(one point) not empty: %+v", g)
	}
}

func TestBuildCurve_ConstantSeriesIsFlat(t *testing.T) {
	g := BuildCurve([]float64{5, 5, 5}, 300, 200)
	if g.Empty() {
		t.Fatal("constant series yielded empty geometry")
	}
	// Zero range is floored to 1.0, every point maps to the bottom margin
	// line; the curve is flat and no division blows up.
	wantY := 200 - 200*chartVerticalMargin
	for i, op := range g.Stroke {
		if op.Kind == OpClose {
			continue
		}
		if op.To.Y != wantY {
			t.Errorf("stroke[%d].To.Y = %v, want %v", i, op.To.Y, wantY)
		}
	}
}

func TestBuildCurve_EndpointsExact(t *testing.T) {
	prices := []float64{10, 12, 11, 15, 13, 14, 9, 16, 12, 10}
	w, h := 300.0, 200.0
	g := BuildCurve(prices, w, h)

	first := g.Stroke[0]
	if first.Kind != OpMove {
		t.Fatalf("stroke starts with %v, want OpMove", first.Kind)
	}
	if first.To.X != 0 {
		t.Errorf("first point X = %v, want 0", first.To.X)
	}

	last := g.Stroke[len(g.Stroke)-1]
	if last.Kind != OpLine {
		t.Fatalf("stroke ends with %v, want explicit OpLine to last point", last.Kind)
	}
	if last.To.X != w {
		t.Errorf("last point X = %v, want %v", last.To.X, w)
	}
}

func TestBuildCurve_SmoothingShape(t *testing.T) {
	prices := []float64{1, 2, 3, 4}
	g := BuildCurve(prices, 300, 200)

	// move, line to p1, quad to mid(p1,p2), quad to mid(p2,p3), line to p3
	kinds := []OpKind{OpMove, OpLine, OpQuad, OpQuad, OpLine}
	if len(g.Stroke) != len(kinds) {
		t.Fatalf("len(Stroke) = %d, want %d", len(g.Stroke), len(kinds))
	}
	for i, k := range kinds {
		if g.Stroke[i].Kind != k {
			t.Errorf("stroke[%d].Kind = %v, want %v", i, g.Stroke[i].Kind, k)
		}
	}
	// The quadratic anchors on the previous point and lands on the midpoint.
	stepX := 300.0 / 3
	quad := g.Stroke[2]
	if quad.Control.X != stepX {
		t.Errorf("quad control X = %v, want %v", quad.Control.X, stepX)
	}
	if quad.To.X != 1.5*stepX {
		t.Errorf("quad endpoint X = %v, want %v", quad.To.X, 1.5*stepX)
	}
}

func TestBuildCurve_VerticalInset(t *testing.T) {
	prices := []float64{10, 20} // min and max of the series
	h := 200.0
	g := BuildCurve(prices, 100, h)

	// Highest price maps to 10% from the top, lowest to 10% above the bottom.
	if gotMin := g.Stroke[0].To.Y; gotMin != h-h*chartVerticalMargin {
		t.Errorf("min price Y = %v, want %v", gotMin, h-h*chartVerticalMargin)
	}
	if gotMax := g.Stroke[1].To.Y; gotMax != h-h*chartVerticalScale-h*chartVerticalMargin {
		t.Errorf("max price Y = %v, want %v", gotMax, h-h*chartVerticalScale-h*chartVerticalMargin)
	}
}

func TestBuildCurve_FillClosesAtCanvasBottom(t *testing.T) {
	prices := []float64{10, 12, 11}
	w, h := 300.0, 200.0
	g := BuildCurve(prices, w, h)

	n := len(g.Fill)
	if g.Fill[n-1].Kind != OpClose {
		t.Fatalf("fill does not close")
	}
	if got := g.Fill[n-2].To; got.X != 0 || got.Y != h {
		t.Errorf("fill corner = %+v, want (0, %v)", got, h)
	}
	if got := g.Fill[n-3].To; got.X != w || got.Y != h {
		t.Errorf("fill corner = %+v, want (%v, %v)", got, w, h)
	}
	// The fill region starts as a copy of the stroke.
	for i, op := range g.Stroke {
		if g.Fill[i] != op {
			t.Fatalf("fill[%d] = %+v diverges from stroke", i, g.Fill[i])
		}
	}
}

func TestBuildCurve_Markers(t *testing.T) {
	prices := make([]float64, 100)
	for i := range prices {
		prices[i] = 100 + float64(i%7)
	}
	g := BuildCurve(prices, 300, 200)

	if len(g.Markers) > 9 {
		t.Errorf("len(Markers) = %d, want at most 9", len(g.Markers))
	}
	last := g.Markers[len(g.Markers)-1]
	if last.X != 300 {
		t.Errorf("last marker X = %v, want 300 (last data point)", last.X)
	}
}
