package fractal

import (
	"testing"

	"github.com/jbeda/geom"
)

func TestHorizontalEndpoints(t *testing.T) {
	s := Segment{Center: geom.Coord{X: 3, Y: -2}, Orientation: Horizontal}
	p1, p2 := s.Endpoints(10)

	if (p1 != geom.Coord{X: -2, Y: -2}) {
		t.Fatalf("negative endpoint = %v, want (-2,-2)", p1)
	}
	if (p2 != geom.Coord{X: 8, Y: -2}) {
		t.Fatalf("positive endpoint = %v, want (8,-2)", p2)
	}
}

func TestVerticalEndpoints(t *testing.T) {
	s := Segment{Center: geom.Coord{X: 3, Y: -2}, Orientation: Vertical}
	p1, p2 := s.Endpoints(10)

	if (p1 != geom.Coord{X: 3, Y: -7}) {
		t.Fatalf("negative endpoint = %v, want (3,-7)", p1)
	}
	if (p2 != geom.Coord{X: 3, Y: 3}) {
		t.Fatalf("positive endpoint = %v, want (3,3)", p2)
	}
}

func TestOrientationFlip(t *testing.T) {
	if Horizontal.Flip() != Vertical {
		t.Fatal("Horizontal.Flip() != Vertical")
	}
	if Vertical.Flip() != Horizontal {
		t.Fatal("Vertical.Flip() != Horizontal")
	}
}

func TestSegmentValueIdentity(t *testing.T) {
	a := Segment{Center: geom.Coord{X: 1, Y: 2}, Orientation: Horizontal}
	b := Segment{Center: geom.Coord{X: 1, Y: 2}, Orientation: Horizontal}
	c := Segment{Center: geom.Coord{X: 1, Y: 2}, Orientation: Vertical}

	if a != b {
		t.Fatal("segments with equal center and orientation must be equal")
	}
	if a == c {
		t.Fatal("segments with different orientation must not be equal")
	}

	set := map[Segment]struct{}{a: {}}
	if _, ok := set[b]; !ok {
		t.Fatal("equal segment not found under map key")
	}
	if _, ok := set[c]; ok {
		t.Fatal("perpendicular segment found under map key")
	}
}
