package buffer

import "errors"

var (
	ErrNoChannels    = errors.New("buffer: channel count must be positive")
	ErrUnevenData    = errors.New("buffer: data length is not a whole number of frames")
	ErrChannelLength = errors.New("buffer: planar channels differ in length")
)

// SampleBuffer is a read-only multichannel view over decoded PCM samples.
// Sample values are float64 in [-1, 1] by convention, stored interleaved:
// frame f, channel c lives at data[f*stride+c]. A SampleBuffer is immutable
// after construction and safe to share across goroutines.
type SampleBuffer struct {
	data     []float64
	frames   int
	channels int
	stride   int
}

// FromInterleaved wraps interleaved samples without copying.
// The caller must not mutate data after handing it over.
func FromInterleaved(data []float64, channels int) (*SampleBuffer, error) {
	if channels <= 0 {
		return nil, ErrNoChannels
	}
	if len(data)%channels != 0 {
		return nil, ErrUnevenData
	}

	return &SampleBuffer{
		data:     data,
		frames:   len(data) / channels,
		channels: channels,
		stride:   channels,
	}, nil
}

// FromPlanar interleaves per-channel slices into a new SampleBuffer.
// All channels must have the same length.
func FromPlanar(chans [][]float64) (*SampleBuffer, error) {
	if len(chans) == 0 {
		return nil, ErrNoChannels
	}

	frames := len(chans[0])
	for _, ch := range chans[1:] {
		if len(ch) != frames {
			return nil, ErrChannelLength
		}
	}

	channels := len(chans)
	data := make([]float64, frames*channels)
	for c, ch := range chans {
		for f, v := range ch {
			data[f*channels+c] = v
		}
	}

	return &SampleBuffer{
		data:     data,
		frames:   frames,
		channels: channels,
		stride:   channels,
	}, nil
}

// Mono wraps a single-channel slice without copying.
func Mono(samples []float64) *SampleBuffer {
	return &SampleBuffer{
		data:     samples,
		frames:   len(samples),
		channels: 1,
		stride:   1,
	}
}

// Frames returns the number of frames (samples per channel).
func (b *SampleBuffer) Frames() int {
	return b.frames
}

// Channels returns the channel count.
func (b *SampleBuffer) Channels() int {
	return b.channels
}

// Sample returns the value at the given frame and channel.
// Indices must be in range; no bounds clamping is performed.
func (b *SampleBuffer) Sample(frame, channel int) float64 {
	return b.data[frame*b.stride+channel]
}

// MinMax scans frames [start, end) across all channels and returns the
// smallest and largest sample value encountered. Multichannel extremes are
// unioned, not averaged. The range is clamped to the buffer; an empty range
// yields (0, 0).
func (b *SampleBuffer) MinMax(start, end int) (minVal, maxVal float64) {
	if start < 0 {
		start = 0
	}
	if end > b.frames {
		end = b.frames
	}
	if end <= start {
		return 0, 0
	}

	minVal = b.data[start*b.stride]
	maxVal = minVal

	for f := start; f < end; f++ {
		base := f * b.stride
		for c := 0; c < b.channels; c++ {
			v := b.data[base+c]
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}

	return minVal, maxVal
}
