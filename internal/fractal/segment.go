package fractal

import "github.com/jbeda/geom"

// Orientation is the axis a toothpick lies along.
type Orientation uint8

const (
	// Horizontal toothpicks extend along the X axis.
	Horizontal Orientation = iota
	// Vertical toothpicks extend along the Y axis.
	Vertical
)

// Flip returns the perpendicular orientation.
func (o Orientation) Flip() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// String returns a short identifier for the orientation.
func (o Orientation) String() string {
	if o == Horizontal {
		return "H"
	}
	return "V"
}

// Segment is a single toothpick: a center point and an orientation. The
// length is uniform across the whole simulation and held by the Sim, so it is
// deliberately not part of the value; two segments are the same toothpick iff
// their center and orientation match, which makes Segment a comparable struct
// usable directly as a map key.
type Segment struct {
	Center      geom.Coord
	Orientation Orientation
}

// Endpoints returns the two extreme points of the segment for the given
// length, negative side first. Iteration over endpoints must always use this
// order; insertion order of grown segments depends on it.
func (s Segment) Endpoints(length float64) (geom.Coord, geom.Coord) {
	half := length / 2
	if s.Orientation == Horizontal {
		return geom.Coord{X: s.Center.X - half, Y: s.Center.Y},
			geom.Coord{X: s.Center.X + half, Y: s.Center.Y}
	}
	return geom.Coord{X: s.Center.X, Y: s.Center.Y - half},
		geom.Coord{X: s.Center.X, Y: s.Center.Y + half}
}
