package stockio

// Chart curves are pure geometry: the builder maps a price series into
// coordinate space and emits path operations plus marker positions. Drawing
// is delegated to a rendering collaborator (see the chartimg package).

// Point is a coordinate in the target canvas space.
type Point struct {
	X, Y float64
}

// OpKind discriminates the operations of a Path.
type OpKind int

const (
	// OpMove starts a subpath at To.
	OpMove OpKind = iota
	// OpLine draws a straight segment to To.
	OpLine
	// OpQuad draws a quadratic segment to To anchored on Control.
	OpQuad
	// OpClose closes the current subpath.
	OpClose
)

// PathOp is a single path operation.
type PathOp struct {
	Kind    OpKind
	To      Point
	Control Point // quadratic anchor, meaningful for OpQuad only
}

// CurveGeometry describes a renderable price curve: the smoothed stroke
// path, a closed fill region for a gradient, and up to nine marker points
// for decoration.
type CurveGeometry struct {
	Stroke  []PathOp
	Fill    []PathOp
	Markers []Point
}

// Empty reports whether there is nothing to draw.
func (g CurveGeometry) Empty() bool { return len(g.Stroke) == 0 }

// The plotted curve occupies the middle 80% of the canvas height, leaving a
// 10% margin top and bottom.
const (
	chartVerticalScale  = 0.8
	chartVerticalMargin = 0.1
)

// BuildCurve fits a smoothed curve over prices in a width×height canvas.
//
// Fewer than two points yield an empty geometry: a single point cannot
// define a line, and callers treat the result as a valid no-op. A constant
// series is drawn flat, its zero price range floored to 1.0.
//
// The stroke is a straight segment from the first to the second point, then
// one quadratic segment per point using the previous point as control
// anchor and the midpoint between previous and current as endpoint; a final
// straight segment guarantees the path ends exactly on the last data point.
func BuildCurve(prices []float64, width, height float64) CurveGeometry {
	if len(prices) < 2 {
		return CurveGeometry{}
	}

	minPrice, maxPrice := prices[0], prices[0]
	for _, p := range prices[1:] {
		if p < minPrice {
			minPrice = p
		}
		if p > maxPrice {
			maxPrice = p
		}
	}
	priceRange := maxPrice - minPrice
	if priceRange <= 0 {
		priceRange = 1.0
	}

	stepX := width / float64(len(prices)-1)
	points := make([]Point, len(prices))
	for i, p := range prices {
		points[i] = Point{
			X: float64(i) * stepX,
			Y: height - (p-minPrice)/priceRange*height*chartVerticalScale - height*chartVerticalMargin,
		}
	}

	stroke := make([]PathOp, 0, len(points)+2)
	stroke = append(stroke, PathOp{Kind: OpMove, To: points[0]})
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		if i == 1 {
			stroke = append(stroke, PathOp{Kind: OpLine, To: cur})
			continue
		}
		mid := Point{X: (prev.X + cur.X) / 2, Y: (prev.Y + cur.Y) / 2}
		stroke = append(stroke, PathOp{Kind: OpQuad, Control: prev, To: mid})
		if i == len(points)-1 {
			stroke = append(stroke, PathOp{Kind: OpLine, To: cur})
		}
	}

	fill := make([]PathOp, 0, len(stroke)+3)
	fill = append(fill, stroke...)
	fill = append(fill,
		PathOp{Kind: OpLine, To: Point{X: width, Y: height}},
		PathOp{Kind: OpLine, To: Point{X: 0, Y: height}},
		PathOp{Kind: OpClose},
	)

	step := (len(points) + 7) / 8 // ceil(n/8)
	markers := make([]Point, 0, 9)
	for i, pt := range points {
		if i%step == 0 && i != len(points)-1 {
			markers = append(markers, pt)
		}
	}
	markers = append(markers, points[len(points)-1])

	return CurveGeometry{Stroke: stroke, Fill: fill, Markers: markers}
}
