// Package export writes a snapshot of the segment list as an SVG document,
// giving the simulation an observable output that needs no window.
package export

import (
	"fmt"
	"io"

	"github.com/jbeda/geom"

	"toothpick-fractal/internal/fractal"
)

// Options controls the appearance of the exported document.
type Options struct {
	// Stroke is the SVG stroke color, e.g. "black".
	Stroke string
	// StrokeWidth is in world units.
	StrokeWidth float64
	// Padding widens the viewBox beyond the fractal bounds, in world units.
	Padding float64
}

// DefaultOptions returns a readable black-on-transparent style.
func DefaultOptions() Options {
	return Options{Stroke: "black", StrokeWidth: 2, Padding: 10}
}

// SVG serializes line drawings to a writer. The first write error is
// retained and reported when the document is finished.
type SVG struct {
	w   io.Writer
	err error
}

// NewSVG wraps the writer.
func NewSVG(w io.Writer) *SVG {
	return &SVG{w: w}
}

func (svg *SVG) printf(format string, a ...any) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.w, format, a...)
}

// Start opens the document with the given viewBox and line style.
func (svg *SVG) Start(viewBox geom.Rect, opts Options) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg"
     style="stroke: %s; stroke-width: %f; stroke-linecap: round; fill: none">
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), opts.Stroke, opts.StrokeWidth)
}

// Line emits one line element.
func (svg *SVG) Line(p1, p2 geom.Coord) {
	svg.printf("<line x1='%f' y1='%f' x2='%f' y2='%f'/>\n", p1.X, p1.Y, p2.X, p2.Y)
}

// End closes the document and returns the first error encountered.
func (svg *SVG) End() error {
	svg.printf("</svg>\n")
	return svg.err
}

// WriteSim renders every segment of the simulation as a line, with the
// viewBox fitted to the fractal bounds plus padding.
func WriteSim(w io.Writer, sim *fractal.Sim, opts Options) error {
	viewBox := sim.Bounds()
	viewBox.Min.X -= opts.Padding
	viewBox.Min.Y -= opts.Padding
	viewBox.Max.X += opts.Padding
	viewBox.Max.Y += opts.Padding

	svg := NewSVG(w)
	svg.Start(viewBox, opts)
	length := sim.Length()
	for _, seg := range sim.Segments() {
		p1, p2 := seg.Endpoints(length)
		svg.Line(p1, p2)
	}
	return svg.End()
}
