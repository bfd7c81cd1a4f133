package summary

import (
	"math"
	"testing"
)

func TestScaleAmplitudeZeroWeightAttenuates(t *testing.T) {
	for _, a := range []float64{-1, -0.5, -0.01, 0, 0.25, 0.7, 1} {
		got := ScaleAmplitude(a, 0)
		want := a * NonTransientAttenuation
		if got != want {
			t.Fatalf("ScaleAmplitude(%v, 0) = %v, want %v", a, got, want)
		}
	}
}

func TestScaleAmplitudeFullTransientPreservesFullScale(t *testing.T) {
	if got := ScaleAmplitude(1, 1); got != 1.0 {
		t.Fatalf("ScaleAmplitude(1, 1) = %v, want 1.0", got)
	}
	if got := ScaleAmplitude(-1, 1); got != -1.0 {
		t.Fatalf("ScaleAmplitude(-1, 1) = %v, want -1.0", got)
	}
}

func TestScaleAmplitudeZeroInputStaysZero(t *testing.T) {
	for _, w := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := ScaleAmplitude(0, w); got != 0 {
			t.Fatalf("ScaleAmplitude(0, %v) = %v, want 0", w, got)
		}
	}
}

func TestScaleAmplitudeSymmetric(t *testing.T) {
	for _, a := range []float64{0.1, 0.33, 0.5, 0.99, 1} {
		for _, w := range []float64{0, 0.2, 0.6, 1} {
			pos := ScaleAmplitude(a, w)
			neg := ScaleAmplitude(-a, w)
			if neg != -pos {
				t.Fatalf("ScaleAmplitude(-%v, %v) = %v, want %v", a, w, neg, -pos)
			}
		}
	}
}

func TestScaleAmplitudeMonotonicInWeight(t *testing.T) {
	for _, a := range []float64{0.05, 0.3, 0.8, 1} {
		prev := math.Inf(-1)
		for w := 0.0; w <= 1.0; w += 0.01 {
			got := ScaleAmplitude(a, w)
			if got < prev {
				t.Fatalf("ScaleAmplitude(%v, %v) = %v < previous %v, want non-decreasing", a, w, got, prev)
			}
			prev = got
		}
	}
}

func TestScaleAmplitudeBounded(t *testing.T) {
	for _, a := range []float64{-1, -0.4, 0.4, 1} {
		for w := 0.0; w <= 1.0; w += 0.05 {
			got := ScaleAmplitude(a, w)
			if math.Abs(got) > 1 {
				t.Fatalf("ScaleAmplitude(%v, %v) = %v, want magnitude <= 1", a, w, got)
			}
		}
	}
}

func TestSampleDataScale(t *testing.T) {
	d := SampleData{Min: -0.5, Max: 0.5, TransientWeight: 0}
	minVal, maxVal := d.Scale()
	if minVal != -0.5*NonTransientAttenuation || maxVal != 0.5*NonTransientAttenuation {
		t.Fatalf("Scale() = (%v, %v), want attenuated bounds", minVal, maxVal)
	}
}

func TestScaleSequence(t *testing.T) {
	seq := Sequence{
		{Min: -1, Max: 1, TransientWeight: 1},
		{Min: -0.2, Max: 0.2, TransientWeight: 0},
	}
	dstMin := make([]float64, len(seq))
	dstMax := make([]float64, len(seq))
	ScaleSequence(dstMin, dstMax, seq)

	if dstMin[0] != -1 || dstMax[0] != 1 {
		t.Fatalf("column 0 = (%v, %v), want (-1, 1)", dstMin[0], dstMax[0])
	}
	if dstMin[1] != -0.2*NonTransientAttenuation || dstMax[1] != 0.2*NonTransientAttenuation {
		t.Fatalf("column 1 = (%v, %v), want attenuated", dstMin[1], dstMax[1])
	}
}
