//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"toothpick-fractal/internal/fractal"
)

// LinePainter strokes toothpick segments onto the screen through a camera.
type LinePainter struct {
	color     color.RGBA
	thickness float64
}

// NewLinePainter constructs a painter with the configured stroke style.
// thickness is in world units and scales with the zoom.
func NewLinePainter(clr color.RGBA, thickness float64) *LinePainter {
	if thickness <= 0 {
		thickness = 1
	}
	return &LinePainter{color: clr, thickness: thickness}
}

// Draw strokes every segment of the simulation.
func (lp *LinePainter) Draw(dst *ebiten.Image, sim *fractal.Sim, cam Camera) {
	w := float64(dst.Bounds().Dx())
	h := float64(dst.Bounds().Dy())

	width := float32(lp.thickness * cam.Scale)
	if width < 1 {
		width = 1
	}

	length := sim.Length()
	for _, seg := range sim.Segments() {
		p1, p2 := seg.Endpoints(length)
		x0, y0 := cam.ToScreen(p1, w, h)
		x1, y1 := cam.ToScreen(p2, w, h)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), width, lp.color, true)
	}
}
