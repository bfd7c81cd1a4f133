package buffer

import (
	"errors"

	goaudio "github.com/go-audio/audio"
)

var ErrNilBuffer = errors.New("buffer: nil source buffer")

// FromFloatBuffer copies a decoded go-audio float buffer into a SampleBuffer.
// Samples are taken as-is; decoders producing [-1, 1] floats need no scaling.
func FromFloatBuffer(src *goaudio.FloatBuffer) (*SampleBuffer, error) {
	if src == nil {
		return nil, ErrNilBuffer
	}

	data := make([]float64, len(src.Data))
	copy(data, src.Data)

	return FromInterleaved(data, sourceChannels(src.Format))
}

// FromFloat32Buffer copies a decoded go-audio float32 buffer into a
// SampleBuffer, widening each sample to float64.
func FromFloat32Buffer(src *goaudio.Float32Buffer) (*SampleBuffer, error) {
	if src == nil {
		return nil, ErrNilBuffer
	}

	data := make([]float64, len(src.Data))
	for i, v := range src.Data {
		data[i] = float64(v)
	}

	return FromInterleaved(data, sourceChannels(src.Format))
}

// FromIntBuffer converts a decoded go-audio PCM buffer into a SampleBuffer,
// normalizing integer samples to [-1, 1] by the source bit depth. Bit depths
// outside 1..32 are treated as 16-bit, matching go-audio decoder defaults.
func FromIntBuffer(src *goaudio.IntBuffer) (*SampleBuffer, error) {
	if src == nil {
		return nil, ErrNilBuffer
	}

	bitDepth := src.SourceBitDepth
	if bitDepth < 1 || bitDepth > 32 {
		bitDepth = 16
	}
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))

	data := make([]float64, len(src.Data))
	for i, v := range src.Data {
		data[i] = float64(v) * scale
	}

	return FromInterleaved(data, sourceChannels(src.Format))
}

func sourceChannels(f *goaudio.Format) int {
	if f == nil {
		return 1
	}
	return f.NumChannels
}
