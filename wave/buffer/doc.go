// Package buffer provides an immutable multichannel sample buffer that the
// reduction and viewport packages read from. A SampleBuffer wraps decoded
// PCM as interleaved float64 frames; it is created once per decoded source
// and shared read-only across concurrent reduction workers.
//
// Adapters are provided for the go-audio buffer types so decoders built on
// github.com/go-audio can feed a SampleBuffer directly.
package buffer
