package testutil

import (
	"math"
	"testing"
)

func TestDC(t *testing.T) {
	s := DC(0.5, 16)
	if len(s) != 16 {
		t.Fatalf("len = %d, want 16", len(s))
	}
	for i, v := range s {
		if v != 0.5 {
			t.Fatalf("index %d: got %v, want 0.5", i, v)
		}
	}
}

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	if math.Abs(s[12]-1) > 1e-12 {
		t.Fatalf("s[12] = %v, want 1 (quarter period of 1 kHz at 48 kHz)", s[12])
	}
}

func TestStep(t *testing.T) {
	s := Step(0.1, 0.9, 10, 4)
	if s[3] != 0.1 || s[4] != 0.9 {
		t.Fatalf("step edge wrong: s[3]=%v s[4]=%v", s[3], s[4])
	}
}

func TestClickTrain(t *testing.T) {
	s := ClickTrain(1.0, 10, 4, 1)
	want := []float64{0, 1, 0, 0, 0, 1, 0, 0, 0, 1}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, s[i], want[i])
		}
	}
}
