package core

import "time"

// FixedStep paces automatic generation advances at a steady per-second rate,
// independent of the frame rate of the surrounding loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given number
// of steps per second. The accumulator starts full so the first call fires
// immediately.
func NewFixedStep(perSecond float64) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(perSecond)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(perSecond float64) {
	if perSecond <= 0 {
		perSecond = 2
	}
	f.step = time.Duration(float64(time.Second) / perSecond)
}

// ShouldStep reports whether the simulation should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
