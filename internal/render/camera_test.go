package render

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
)

func TestFitZoomFramesBounds(t *testing.T) {
	b := geom.Rect{
		Min: geom.Coord{X: -40, Y: -40},
		Max: geom.Coord{X: 40, Y: 40},
	}
	cam := FitZoom(b, 1000, 800, 50)

	if cam.CenterX != 0 || cam.CenterY != 0 {
		t.Fatalf("center = (%v, %v), want origin", cam.CenterX, cam.CenterY)
	}
	// Height is the constraining axis: (800 - 100) / 80.
	if cam.Scale != 8.75 {
		t.Fatalf("scale = %v, want 8.75", cam.Scale)
	}
}

func TestFitZoomDegenerateBounds(t *testing.T) {
	b := geom.Rect{Min: geom.Coord{X: 5, Y: 5}, Max: geom.Coord{X: 5, Y: 5}}
	cam := FitZoom(b, 200, 200, 0)

	if math.IsInf(cam.Scale, 0) || cam.Scale <= 0 {
		t.Fatalf("scale = %v, want finite positive", cam.Scale)
	}
	if cam.CenterX != 5 || cam.CenterY != 5 {
		t.Fatalf("center = (%v, %v), want (5, 5)", cam.CenterX, cam.CenterY)
	}
}

func TestApproachConverges(t *testing.T) {
	cam := Camera{CenterX: 0, CenterY: 0, Scale: 1}
	target := Camera{CenterX: 100, CenterY: -50, Scale: 4}

	for i := 0; i < 200; i++ {
		cam.Approach(target, 0.1)
	}

	if math.Abs(cam.CenterX-target.CenterX) > 1e-6 ||
		math.Abs(cam.CenterY-target.CenterY) > 1e-6 ||
		math.Abs(cam.Scale-target.Scale) > 1e-6 {
		t.Fatalf("camera %+v did not converge to %+v", cam, target)
	}
}

func TestApproachSnapSpeed(t *testing.T) {
	cam := Camera{Scale: 1}
	target := Camera{CenterX: 10, CenterY: 20, Scale: 3}
	cam.Approach(target, 1)

	if cam != target {
		t.Fatalf("speed 1 must snap, got %+v", cam)
	}
}

func TestToScreen(t *testing.T) {
	cam := Camera{CenterX: 0, CenterY: 0, Scale: 2}
	x, y := cam.ToScreen(geom.Coord{X: 10, Y: -5}, 100, 100)

	if x != 70 || y != 40 {
		t.Fatalf("projected to (%v, %v), want (70, 40)", x, y)
	}
}
