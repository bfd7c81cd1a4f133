package signal

import (
	"errors"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-waveform/wave/buffer"
)

var (
	ErrInvalidFrames   = errors.New("signal: frame count must be positive")
	ErrInvalidChannels = errors.New("signal: channel count must be positive")
)

// Generator creates deterministic preview waveforms from a shared
// configuration.
type Generator struct {
	sampleRate float64
	amplitude  float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sample rate used to place tones and clicks.
func WithSampleRate(rate float64) Option {
	return func(g *Generator) {
		if rate > 0 {
			g.sampleRate = rate
		}
	}
}

// WithAmplitude sets the overall output amplitude in (0, 1].
func WithAmplitude(amplitude float64) Option {
	return func(g *Generator) {
		if amplitude > 0 && amplitude <= 1 {
			g.amplitude = amplitude
		}
	}
}

// WithSeed sets the deterministic seed for the noise floor.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured preview generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: 48000,
		amplitude:  0.9,
		seed:       1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Preview renders a multichannel demo waveform: a 220 Hz tone per channel
// (each channel one octave apart), amplitude-shaped by a sustain envelope
// with a click attack every half second, over a -34 dB noise floor. Output
// is deterministic for a given configuration and bounded by the configured
// amplitude.
func (g *Generator) Preview(channels, frames int) (*buffer.SampleBuffer, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if frames <= 0 {
		return nil, ErrInvalidFrames
	}

	chans := make([][]float64, channels)
	for c := range chans {
		chans[c] = g.renderChannel(c, frames)
	}

	return buffer.FromPlanar(chans)
}

func (g *Generator) renderChannel(channel, frames int) []float64 {
	rng := rand.New(rand.NewSource(g.seed + int64(channel)))

	out := make([]float64, frames)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * 0.02
	}

	freq := 220 * math.Exp2(float64(channel))
	step := 2 * math.Pi * freq / g.sampleRate
	tone := make([]float64, frames)
	for i := range tone {
		tone[i] = math.Sin(step * float64(i))
	}

	vecmath.MulBlockInPlace(tone, g.envelope(frames))
	vecmath.AddBlockInPlace(out, tone)
	vecmath.ScaleBlock(out, out, g.amplitude)

	return out
}

// envelope builds the amplitude shape: a 0.3 sustain level with a unit
// click attack every half second decaying back to the sustain over roughly
// 10 ms. The clicks are what the transient detector is expected to find.
func (g *Generator) envelope(frames int) []float64 {
	const sustain = 0.3

	env := make([]float64, frames)
	for i := range env {
		env[i] = sustain
	}

	clickSpacing := int(g.sampleRate / 2)
	if clickSpacing < 1 {
		clickSpacing = 1
	}
	decay := int(g.sampleRate / 100)
	if decay < 1 {
		decay = 1
	}

	for start := 0; start < frames; start += clickSpacing {
		for i := 0; i < decay && start+i < frames; i++ {
			level := sustain + (1-sustain)*(1-float64(i)/float64(decay))
			if level > env[start+i] {
				env[start+i] = level
			}
		}
	}

	return env
}
