package fractal

import "github.com/jbeda/geom"

// EndpointIndex counts, per coordinate, how many segments have that
// coordinate as one of their endpoints. It is rebuilt from scratch at the
// start of every growth step and discarded afterwards; it is never mutated
// after construction.
type EndpointIndex map[geom.Coord]int

// BuildIndex scans the segment list once and records both endpoints of every
// segment. O(n) in segment count, replacing a pairwise scan per endpoint.
func BuildIndex(segments []Segment, length float64) EndpointIndex {
	idx := make(EndpointIndex, 2*len(segments))
	for _, s := range segments {
		a, b := s.Endpoints(length)
		idx[a]++
		idx[b]++
	}
	return idx
}

// TouchingCount returns how many segments touch the coordinate, 0 when none.
func (idx EndpointIndex) TouchingCount(p geom.Coord) int {
	return idx[p]
}
