package fractal

import "testing"

func TestFromMapNil(t *testing.T) {
	c := FromMap(nil)
	if c != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v, want defaults", c)
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"toothpick_length": "12.5",
		"max_generations":  "7",
	})
	if c.Length != 12.5 {
		t.Fatalf("Length = %v, want 12.5", c.Length)
	}
	if c.MaxGenerations != 7 {
		t.Fatalf("MaxGenerations = %d, want 7", c.MaxGenerations)
	}
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	c := FromMap(map[string]string{
		"toothpick_length": "-3",
		"max_generations":  "not-a-number",
	})
	if c != DefaultConfig() {
		t.Fatalf("bad values must be ignored, got %+v", c)
	}
}
