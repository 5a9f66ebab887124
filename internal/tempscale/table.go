package tempscale

import (
	"fmt"
	"math"
)

// Point is one row of a conversion table: the reference temperature in the
// source scale and the correction (target − source) at that reference.
type Point struct {
	Ref   float64
	Delta float64
}

// Table is an immutable piecewise-linear correction table.
type Table struct {
	name   string
	points []Point
}

// InvalidTableError reports a conversion table that cannot serve a lookup.
// It is a programming error in static data, so Interpolate panics with it
// instead of returning a stale value.
type InvalidTableError struct {
	Table  string
	Input  float64
	Reason string
}

func (e *InvalidTableError) Error() string {
	if math.IsNaN(e.Input) {
		return fmt.Sprintf("invalid conversion table %s: %s", e.Table, e.Reason)
	}
	return fmt.Sprintf("invalid conversion table %s at %g K: %s", e.Table, e.Input, e.Reason)
}

// NewTable validates points and returns a Table over them. The slice is
// copied.
//
// Validation requires at least one entry, finite values, and endpoints that
// bound every other reference. Strict ordering is not required because some
// published tables carry a transposed row; the bracket search stays
// well defined as long as the last reference is the maximum.
func NewTable(name string, points []Point) (*Table, error) {
	if len(points) == 0 {
		return nil, &InvalidTableError{Table: name, Input: math.NaN(), Reason: "no entries"}
	}
	first, last := points[0].Ref, points[len(points)-1].Ref
	for i, p := range points {
		if math.IsNaN(p.Ref) || math.IsInf(p.Ref, 0) || math.IsNaN(p.Delta) || math.IsInf(p.Delta, 0) {
			return nil, &InvalidTableError{Table: name, Input: math.NaN(), Reason: fmt.Sprintf("entry %d is not finite", i)}
		}
		if p.Ref < first || p.Ref > last {
			return nil, &InvalidTableError{Table: name, Input: math.NaN(), Reason: fmt.Sprintf("entry %d (%g) outside [%g, %g]", i, p.Ref, first, last)}
		}
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return &Table{name: name, points: cp}, nil
}

// mustTable is NewTable for compiled-in data; a malformed table stops the
// program at startup.
func mustTable(name string, points []Point) *Table {
	t, err := NewTable(name, points)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table's label.
func (t *Table) Name() string { return t.name }

// Bounds returns the first and last reference temperatures.
func (t *Table) Bounds() (lo, hi float64) {
	return t.points[0].Ref, t.points[len(t.points)-1].Ref
}

// Points returns a copy of the table rows.
func (t *Table) Points() []Point {
	cp := make([]Point, len(t.points))
	copy(cp, t.points)
	return cp
}

// Interpolate applies the table's correction to x.
//
// Inputs outside the table range (and NaN) are returned unchanged. An input
// equal to either endpoint gets that endpoint's delta exactly. Otherwise the
// rows are scanned in order, keeping the last row with Ref <= x until the
// first row with Ref > x, and the delta is linearly interpolated between the
// two.
func (t *Table) Interpolate(x float64) float64 {
	lo, hi := t.Bounds()
	if math.IsNaN(x) || x < lo || x > hi {
		return x
	}
	if x == lo {
		return x + t.points[0].Delta
	}
	if x == hi {
		return x + t.points[len(t.points)-1].Delta
	}

	var below Point
	for _, p := range t.points {
		if p.Ref <= x {
			below = p
			continue
		}
		delta := (p.Delta-below.Delta)/(p.Ref-below.Ref)*(x-below.Ref) + below.Delta
		return x + delta
	}
	panic(&InvalidTableError{Table: t.name, Input: x, Reason: "no bracketing entries"})
}
