package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-waveform/internal/testutil"
	"github.com/cwbudde/algo-waveform/wave/reduce"
)

func TestPreviewShape(t *testing.T) {
	g := NewGenerator()
	buf, err := g.Preview(2, 4800)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if buf.Frames() != 4800 || buf.Channels() != 2 {
		t.Fatalf("got %d frames x %d channels, want 4800x2", buf.Frames(), buf.Channels())
	}
}

func TestPreviewRejectsBadArguments(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Preview(0, 100); !errors.Is(err, ErrInvalidChannels) {
		t.Fatalf("err = %v, want ErrInvalidChannels", err)
	}
	if _, err := g.Preview(1, 0); !errors.Is(err, ErrInvalidFrames) {
		t.Fatalf("err = %v, want ErrInvalidFrames", err)
	}
}

func TestPreviewDeterministic(t *testing.T) {
	a, err := NewGenerator(WithSeed(7)).Preview(1, 1000)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	b, err := NewGenerator(WithSeed(7)).Preview(1, 1000)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	for f := 0; f < a.Frames(); f++ {
		if a.Sample(f, 0) != b.Sample(f, 0) {
			t.Fatalf("frame %d differs between identical generators", f)
		}
	}
}

func TestPreviewBoundedAndFinite(t *testing.T) {
	buf, err := NewGenerator(WithAmplitude(0.9)).Preview(1, 48000)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	samples := make([]float64, buf.Frames())
	for f := range samples {
		samples[f] = buf.Sample(f, 0)
	}
	testutil.RequireFinite(t, samples)
	for f, v := range samples {
		if math.Abs(v) > 1 {
			t.Fatalf("frame %d: sample %v outside [-1, 1]", f, v)
		}
	}
}

func TestPreviewClicksRegisterAsTransients(t *testing.T) {
	buf, err := NewGenerator().Preview(1, 96000)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	seq, ok := reduce.Reduce(reduce.Request{
		Buffer: buf,
		Window: reduce.NewRange(0, buf.Frames()),
		Width:  200,
		Mode:   reduce.ModeTransientHighlight,
	})
	if !ok {
		t.Fatal("Reduce reported degenerate geometry")
	}

	maxW := 0.0
	for _, d := range seq {
		if d.TransientWeight > maxW {
			maxW = d.TransientWeight
		}
	}
	if maxW != 1.0 {
		t.Fatalf("max weight = %v, want 1.0 at a click attack", maxW)
	}
}
