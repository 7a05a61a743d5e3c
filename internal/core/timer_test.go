package core

import "testing"

func TestFixedStepFiresImmediately(t *testing.T) {
	fs := NewFixedStep(2)
	if !fs.ShouldStep() {
		t.Fatal("first call should fire, accumulator starts full")
	}
	if fs.ShouldStep() {
		t.Fatal("second immediate call should not fire")
	}
}

func TestFixedStepRateClamp(t *testing.T) {
	// A non-positive rate falls back to a sane default instead of a zero
	// interval that would fire every frame.
	fs := NewFixedStep(0)
	fs.ShouldStep()
	if fs.ShouldStep() {
		t.Fatal("clamped rate should not fire twice immediately")
	}
}
