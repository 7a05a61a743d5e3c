package core

// Sim is the contract the driver layer needs from a simulation: advance one
// generation at a time, restart from the seed, and report progress counters
// for display.
type Sim interface {
	Name() string
	Reset()
	Step()
	Generation() int
	SegmentCount() int
}
