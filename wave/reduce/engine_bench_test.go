package reduce

import (
	"runtime"
	"testing"

	"github.com/cwbudde/algo-waveform/internal/testutil"
	"github.com/cwbudde/algo-waveform/wave/buffer"
)

func benchmarkBuckets(b *testing.B, frames, width, workers int) {
	buf := buffer.Mono(testutil.DeterministicSine(440, 48000, 0.8, frames))
	req := Request{
		Buffer: buf,
		Window: NewRange(0, frames),
		Width:  width,
	}
	spp := req.samplesPerPoint()

	b.ReportAllocs()
	b.SetBytes(int64(frames * 8))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, ok := reduceBuckets(req, spp, workers, nil); !ok {
			b.Fatal("unexpected cancellation")
		}
	}
}

func BenchmarkReduce1MFramesWidth1k(b *testing.B) {
	benchmarkBuckets(b, 1<<20, 1024, runtime.NumCPU())
}

func BenchmarkReduce1MFramesWidth1kSingleWorker(b *testing.B) {
	benchmarkBuckets(b, 1<<20, 1024, 1)
}

func BenchmarkReduceTransient(b *testing.B) {
	const frames = 1 << 20
	buf := buffer.Mono(testutil.DeterministicSine(440, 48000, 0.8, frames))
	req := Request{
		Buffer: buf,
		Window: NewRange(0, frames),
		Width:  1024,
		Mode:   ModeTransientHighlight,
	}

	b.ReportAllocs()
	b.SetBytes(int64(frames * 8))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, ok := Reduce(req); !ok {
			b.Fatal("unexpected degenerate geometry")
		}
	}
}
