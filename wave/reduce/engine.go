package reduce

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-waveform/wave/buffer"
	"github.com/cwbudde/algo-waveform/wave/summary"
)

// DisplayMode selects how a summary is meant to be rendered.
type DisplayMode int

const (
	// ModeNormal renders raw min/max columns.
	ModeNormal DisplayMode = iota
	// ModeTransientHighlight additionally scores transients after the
	// reduction pass so the renderer can attenuate steady-state material.
	ModeTransientHighlight
)

// String returns the mode name.
func (m DisplayMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeTransientHighlight:
		return "transient-highlight"
	default:
		return "unknown"
	}
}

// Request describes one reduction: which buffer to scan, how the buffer sits
// inside virtual sample space, the visible window, and the output geometry.
type Request struct {
	Buffer           *buffer.SampleBuffer
	SamplesToPrepend int
	Window           Range
	Width            int
	Mode             DisplayMode
}

// samplesPerPoint returns the bucket size in samples, or 0 when the request
// geometry is degenerate (zero width, empty window, more pixels than
// samples). Degenerate requests produce no summary by policy.
func (req Request) samplesPerPoint() int {
	if req.Buffer == nil || req.Width <= 0 {
		return 0
	}
	return req.Window.Count() / req.Width
}

// Engine runs reductions asynchronously with single-flight semantics:
// starting a new run cancels whichever run is still in flight, and a
// cancelled run never delivers. An Engine is safe for concurrent use,
// though typically one coordination goroutine owns it.
type Engine struct {
	workers int

	mu      sync.Mutex
	current *run

	// deliverMu serializes the supersede check with the delivery callback
	// itself, so a run that passed the check can never have its callback
	// execute after a newer run's delivery.
	deliverMu sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the number of goroutines used for the parallel bucket
// pass. Values below 1 are ignored; the default is runtime.NumCPU.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.workers = n
		}
	}
}

// New returns an Engine ready for use.
func New(opts ...Option) *Engine {
	e := &Engine{workers: runtime.NumCPU()}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

type run struct {
	cancelled atomic.Bool
}

func (r *run) isCancelled() bool {
	return r.cancelled.Load()
}

// Start begins a reduction and returns immediately. Any run still in flight
// is cancelled first. On completion, deliver is invoked once from the run's
// coordinator goroutine, after its workers have joined — unless the run was
// cancelled or superseded in the meantime, in which case deliver is never
// called. Deliveries across runs happen in request order; deliver must not
// block indefinitely, as a stalled callback delays the next run's delivery.
//
// Degenerate geometry (width <= 0, empty window, more pixels than samples)
// starts nothing and returns false; the caller keeps its prior summary.
func (e *Engine) Start(req Request, deliver func(summary.Sequence)) bool {
	spp := req.samplesPerPoint()
	if spp <= 0 {
		return false
	}

	r := &run{}
	e.mu.Lock()
	if e.current != nil {
		e.current.cancelled.Store(true)
	}
	e.current = r
	e.mu.Unlock()

	go func() {
		seq, ok := reduceBuckets(req, spp, e.workers, r.isCancelled)
		if !ok {
			return
		}
		if req.Mode == ModeTransientHighlight {
			summary.ComputeTransientWeights(seq)
		}

		// Deliver only if this run is still the current one; a newer Start
		// wins even if it raced with our final cancellation check.
		// deliverMu stays held across the callback so a newer run's
		// delivery cannot land before an older one still in progress.
		e.deliverMu.Lock()
		e.mu.Lock()
		if e.current != r || r.isCancelled() {
			e.mu.Unlock()
			e.deliverMu.Unlock()
			return
		}
		e.current = nil
		e.mu.Unlock()

		deliver(seq)
		e.deliverMu.Unlock()
	}()

	return true
}

// Cancel aborts any run in flight without starting a new one.
func (e *Engine) Cancel() {
	e.mu.Lock()
	if e.current != nil {
		e.current.cancelled.Store(true)
		e.current = nil
	}
	e.mu.Unlock()
}

// Reduce runs a single reduction synchronously and returns the finished
// sequence. It reports false for degenerate geometry. The transient pass is
// applied for ModeTransientHighlight, same as the asynchronous path.
func Reduce(req Request) (summary.Sequence, bool) {
	spp := req.samplesPerPoint()
	if spp <= 0 {
		return nil, false
	}

	seq, _ := reduceBuckets(req, spp, runtime.NumCPU(), nil)
	if req.Mode == ModeTransientHighlight {
		summary.ComputeTransientWeights(seq)
	}
	return seq, true
}

// reduceBuckets fills one summary slot per pixel column. Each worker owns a
// contiguous span of columns, so slots are written without synchronization.
// cancelled, when non-nil, is polled once per bucket; a cancelled pass
// returns ok=false and its partial output is discarded.
func reduceBuckets(req Request, spp, workers int, cancelled func() bool) (summary.Sequence, bool) {
	seq := make(summary.Sequence, req.Width)
	frames := req.Buffer.Frames()
	prepend := req.SamplesToPrepend

	if workers > req.Width {
		workers = req.Width
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (req.Width + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > req.Width {
			hi = req.Width
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for p := lo; p < hi; p++ {
				if cancelled != nil && cancelled() {
					return
				}

				startV := req.Window.Lower + p*spp
				endV := startV + spp

				// Buckets entirely inside the prepend or append padding
				// keep the zero summary.
				if endV <= prepend || startV >= prepend+frames {
					continue
				}

				actualStart := startV
				if actualStart < prepend {
					actualStart = prepend
				}
				actualEnd := endV
				if actualEnd > prepend+frames {
					actualEnd = prepend + frames
				}
				actualStart -= prepend
				actualEnd -= prepend
				if actualEnd <= actualStart {
					continue
				}

				minVal, maxVal := req.Buffer.MinMax(actualStart, actualEnd)
				seq[p] = summary.SampleData{Min: minVal, Max: maxVal}
			}
		}(lo, hi)
	}
	wg.Wait()

	if cancelled != nil && cancelled() {
		return nil, false
	}
	return seq, true
}
