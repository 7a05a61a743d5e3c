package fractal

import (
	"github.com/jbeda/geom"

	"toothpick-fractal/internal/core"
)

// Sim is the toothpick growth simulation. It owns the ordered segment list,
// the generation counter, and the set of endpoints that have already spawned
// a child. All mutation happens through Step and Reset; callers own the Sim
// value and nothing here is process-global.
type Sim struct {
	cfg Config

	segments []Segment
	seen     map[Segment]struct{}
	used     map[geom.Coord]struct{}
	gen      int
}

// New builds a simulation holding only the seed toothpick: a vertical
// segment centered at the origin.
func New(cfg Config) *Sim {
	s := &Sim{cfg: cfg}
	s.Reset()
	return s
}

// Name identifies the simulation.
func (s *Sim) Name() string { return "toothpick" }

// Reset discards all growth and restores the single-segment seed state.
func (s *Sim) Reset() {
	seed := Segment{Orientation: Vertical}
	s.segments = append(s.segments[:0], seed)
	s.seen = map[Segment]struct{}{seed: {}}
	s.used = make(map[geom.Coord]struct{})
	s.gen = 0
}

// Step advances the fractal by exactly one generation. Every endpoint that is
// touched by exactly one segment and has never spawned before grows a new
// perpendicular toothpick centered on it. The batch is committed as a whole;
// when no endpoint is eligible only the generation counter advances.
//
// An endpoint that spawns is retired permanently, even if a later generation
// would leave its touching count at one again. That is narrower than the
// textbook toothpick-sequence rule, and it is the behavior this simulation is
// defined to have; see DESIGN.md.
func (s *Sim) Step() {
	idx := BuildIndex(s.segments, s.cfg.Length)

	var batch []Segment
	for _, parent := range s.segments {
		a, b := parent.Endpoints(s.cfg.Length)
		for _, e := range [2]geom.Coord{a, b} {
			if _, spent := s.used[e]; spent {
				continue
			}
			// Two or more segments meeting here make a junction; junctions
			// never grow.
			if idx.TouchingCount(e) != 1 {
				continue
			}
			child := Segment{Center: e, Orientation: parent.Orientation.Flip()}
			if _, dup := s.seen[child]; dup {
				continue
			}
			s.seen[child] = struct{}{}
			s.used[e] = struct{}{}
			batch = append(batch, child)
		}
	}

	s.segments = append(s.segments, batch...)
	s.gen++
}

// Generation returns the number of completed growth steps since the seed.
func (s *Sim) Generation() int { return s.gen }

// SegmentCount returns the number of toothpicks placed so far.
func (s *Sim) SegmentCount() int { return len(s.segments) }

// Segments exposes the segment list in creation order. Callers must treat the
// slice as read-only; it is only safe to hold between steps.
func (s *Sim) Segments() []Segment { return s.segments }

// Length returns the uniform toothpick length.
func (s *Sim) Length() float64 { return s.cfg.Length }

// Bounds returns the axis-aligned box containing every endpoint of every
// segment. The seed guarantees a non-empty list, but an empty one still
// yields a usable fallback range for defensive callers.
func (s *Sim) Bounds() geom.Rect {
	if len(s.segments) == 0 {
		return geom.Rect{
			Min: geom.Coord{X: -100, Y: -100},
			Max: geom.Coord{X: 100, Y: 100},
		}
	}
	a, b := s.segments[0].Endpoints(s.cfg.Length)
	r := geom.Rect{Min: a, Max: a}
	r.ExpandToContainCoord(b)
	for _, seg := range s.segments[1:] {
		p, q := seg.Endpoints(s.cfg.Length)
		r.ExpandToContainCoord(p)
		r.ExpandToContainCoord(q)
	}
	return r
}

// Parameters reports the run's tunables for the HUD readout.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Growth",
				Params: []core.Parameter{
					floatParam("toothpick_length", "Toothpick length", s.cfg.Length),
					intParam("max_generations", "Max generations", s.cfg.MaxGenerations),
				},
			},
		},
	}
}
