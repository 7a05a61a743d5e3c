//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"toothpick-fractal/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD draws the progress readout and key help in the top-left corner.
type HUD struct {
	sim    core.Sim
	params string
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	if provider, ok := sim.(parameterProvider); ok {
		h.params = formatParameters(provider.Parameters())
	}
	return h
}

// Draw paints the readout over the current frame.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	info := fmt.Sprintf("Generation: %d | Toothpicks: %d", h.sim.Generation(), h.sim.SegmentCount())
	text.Draw(screen, info, face, 10, 20, color.RGBA{R: 255, G: 255, A: 255})
	if h.params != "" {
		text.Draw(screen, h.params, face, 10, 36, color.RGBA{R: 160, G: 160, B: 160, A: 255})
	}
	text.Draw(screen, "space pause | n step | r reset | q quit", face, 10, 52, color.RGBA{R: 160, G: 160, B: 160, A: 255})
}

func formatParameters(snap core.ParameterSnapshot) string {
	var parts []string
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			parts = append(parts, fmt.Sprintf("%s=%s", p.Key, p.Value))
		}
	}
	return strings.Join(parts, " ")
}
