package render

import "github.com/jbeda/geom"

// Camera maps world coordinates to screen pixels: a world-space center and a
// uniform scale factor.
type Camera struct {
	CenterX float64
	CenterY float64
	Scale   float64
}

// FitZoom returns the camera that frames the given world bounds inside a
// screen of the given pixel size, leaving padding pixels on every edge.
// Degenerate bounds (a single seed segment has zero width) are clamped so the
// scale stays finite.
func FitZoom(b geom.Rect, screenW, screenH, padding float64) Camera {
	width := b.Max.X - b.Min.X
	if width < 1 {
		width = 1
	}
	height := b.Max.Y - b.Min.Y
	if height < 1 {
		height = 1
	}

	scaleX := (screenW - 2*padding) / width
	scaleY := (screenH - 2*padding) / height
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	return Camera{
		CenterX: (b.Min.X + b.Max.X) / 2,
		CenterY: (b.Min.Y + b.Max.Y) / 2,
		Scale:   scale,
	}
}

// Approach moves the camera a fraction of the way toward the target, giving
// the smooth zoom-out as the fractal grows. speed is the per-frame fraction
// in (0, 1]; 1 snaps immediately.
func (c *Camera) Approach(target Camera, speed float64) {
	c.CenterX += (target.CenterX - c.CenterX) * speed
	c.CenterY += (target.CenterY - c.CenterY) * speed
	c.Scale += (target.Scale - c.Scale) * speed
}

// ToScreen projects a world coordinate into pixel space for a screen of the
// given size.
func (c Camera) ToScreen(p geom.Coord, screenW, screenH float64) (float64, float64) {
	return (p.X-c.CenterX)*c.Scale + screenW/2,
		(p.Y-c.CenterY)*c.Scale + screenH/2
}
