package viewport

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-waveform/wave/buffer"
	"github.com/cwbudde/algo-waveform/wave/reduce"
	"github.com/cwbudde/algo-waveform/wave/summary"
)

var ErrNilSource = errors.New("viewport: nil sample buffer")

// Model owns the viewport state of one waveform: the immutable sample
// buffer, the virtual padding around it, an optional shared global total,
// the visible render range, and the target pixel width.
type Model struct {
	buf    *buffer.SampleBuffer
	engine *reduce.Engine

	prepend int
	append  int

	globalTotal    int
	hasGlobalTotal bool

	window reduce.Range
	width  float64
	mode   reduce.DisplayMode

	deliveries chan summary.Sequence
	onSummary  func(summary.Sequence)
	summary    summary.Sequence
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithPadding sets the initial silent prepend/append padding in samples.
// Negative values are clamped to zero.
func WithPadding(prepend, appendPad int) Option {
	return func(m *Model) {
		m.prepend = clampNonNegative(prepend)
		m.append = clampNonNegative(appendPad)
	}
}

// WithGlobalTotal sets an externally shared total sample count used for
// proportional scaling across multiple waveforms.
func WithGlobalTotal(total int) Option {
	return func(m *Model) {
		if total > 0 {
			m.globalTotal = total
			m.hasGlobalTotal = true
		}
	}
}

// WithDisplayMode sets the initial display mode.
func WithDisplayMode(mode reduce.DisplayMode) Option {
	return func(m *Model) {
		m.mode = mode
	}
}

// WithWorkers sets the reduction worker count.
func WithWorkers(n int) Option {
	return func(m *Model) {
		if n >= 1 {
			m.engine = reduce.New(reduce.WithWorkers(n))
		}
	}
}

// WithOnSummary registers a callback invoked from Poll whenever a fresh
// summary is applied.
func WithOnSummary(fn func(summary.Sequence)) Option {
	return func(m *Model) {
		m.onSummary = fn
	}
}

// New returns a Model over buf. The render range starts as the full
// effective total and the width as zero, so no reduction runs until the
// caller sets a positive width.
func New(buf *buffer.SampleBuffer, opts ...Option) (*Model, error) {
	if buf == nil {
		return nil, ErrNilSource
	}

	m := &Model{
		buf:        buf,
		engine:     reduce.New(),
		deliveries: make(chan summary.Sequence, 1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	m.window = reduce.NewRange(0, m.EffectiveTotal())

	return m, nil
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// TotalVirtual returns frames + prepend + append, the length of this
// waveform's own virtual sample space.
func (m *Model) TotalVirtual() int {
	return m.buf.Frames() + m.prepend + m.append
}

// EffectiveTotal returns the sample count used for proportional scaling:
// the global total when one is set, the virtual total otherwise.
func (m *Model) EffectiveTotal() int {
	if m.hasGlobalTotal {
		return m.globalTotal
	}
	return m.TotalVirtual()
}

// RenderRange returns the visible window in virtual sample space.
func (m *Model) RenderRange() reduce.Range {
	return m.window
}

// Width returns the target pixel width.
func (m *Model) Width() float64 {
	return m.width
}

// DisplayMode returns the current display mode.
func (m *Model) DisplayMode() reduce.DisplayMode {
	return m.mode
}

// Padding returns the current prepend and append padding.
func (m *Model) Padding() (prepend, appendPad int) {
	return m.prepend, m.append
}

// Summary returns the most recently applied summary, or nil if none has
// been delivered yet.
func (m *Model) Summary() summary.Sequence {
	return m.summary
}

// VisibleStart returns the render range's lower bound as a fraction of the
// effective total, in [0, 1].
func (m *Model) VisibleStart() float64 {
	total := m.EffectiveTotal()
	if total <= 0 {
		return 0
	}
	return float64(m.window.Lower) / float64(total)
}

// VisibleEnd returns the render range's upper bound as a fraction of the
// effective total, in [0, 1].
func (m *Model) VisibleEnd() float64 {
	total := m.EffectiveTotal()
	if total <= 0 {
		return 0
	}
	return float64(m.window.Upper) / float64(total)
}

// IsAtLeadingEdge reports whether the viewport touches sample 0.
func (m *Model) IsAtLeadingEdge() bool {
	return m.window.Lower <= 0
}

// IsAtTrailingEdge reports whether the viewport touches the effective total.
func (m *Model) IsAtTrailingEdge() bool {
	return m.window.Upper >= m.EffectiveTotal()
}

// SetWidth sets the pixel width and regenerates the summary.
func (m *Model) SetWidth(width float64) {
	m.width = width
	m.regenerate()
}

// SetRenderRange sets the visible window, clamped into the effective total,
// and regenerates the summary.
func (m *Model) SetRenderRange(r reduce.Range) {
	m.window = r.ClampInto(m.EffectiveTotal())
	m.regenerate()
}

// SetGlobalTotal sets the shared total sample count and regenerates.
// Totals below 1 clear the global total instead.
func (m *Model) SetGlobalTotal(total int) {
	if total <= 0 {
		m.ClearGlobalTotal()
		return
	}
	m.globalTotal = total
	m.hasGlobalTotal = true
	m.regenerate()
}

// ClearGlobalTotal reverts to the waveform's own virtual total and
// regenerates.
func (m *Model) ClearGlobalTotal() {
	m.globalTotal = 0
	m.hasGlobalTotal = false
	m.regenerate()
}

// SetDisplayMode sets the display mode and regenerates.
func (m *Model) SetDisplayMode(mode reduce.DisplayMode) {
	m.mode = mode
	m.regenerate()
}

// UpdatePadding changes the padding while shifting the render range by the
// prepend delta, so the audio content visible before the change stays under
// the same viewport window. Use for seamless live re-alignment.
func (m *Model) UpdatePadding(prepend, appendPad int) {
	prepend = clampNonNegative(prepend)
	appendPad = clampNonNegative(appendPad)

	delta := prepend - m.prepend
	count := m.window.Count()

	m.prepend = prepend
	m.append = appendPad

	lower := m.window.Lower + delta
	if lower < 0 {
		lower = 0
	}
	upper := lower + count
	if total := m.TotalVirtual(); upper > total {
		upper = total
	}
	m.window = reduce.Range{Lower: lower, Upper: upper}

	m.regenerate()
}

// ResetPadding changes the padding without touching the render range, so
// the audio content visibly moves within a fixed window.
func (m *Model) ResetPadding(prepend, appendPad int) {
	m.prepend = clampNonNegative(prepend)
	m.append = clampNonNegative(appendPad)
	m.regenerate()
}

// RestoreState overwrites padding and render range unconditionally, for
// undo/revert, and regenerates.
func (m *Model) RestoreState(prepend, appendPad int, window reduce.Range) {
	m.prepend = clampNonNegative(prepend)
	m.append = clampNonNegative(appendPad)
	m.window = window
	m.regenerate()
}

// PositionToSample converts a pixel position to a virtual sample index,
// clamped to [0, effective total]. With a non-positive width or an empty
// render range it returns the range's lower bound unchanged.
func (m *Model) PositionToSample(x float64) int {
	count := m.window.Count()
	if m.width <= 0 || count <= 0 {
		return m.window.Lower
	}

	sample := m.window.Lower + int(math.Round(x*float64(count)/m.width))
	return clampSample(sample, m.EffectiveTotal())
}

// SampleToPosition converts a virtual sample index to a pixel position.
// Returns 0 with a non-positive width or an empty render range.
func (m *Model) SampleToPosition(sample int) float64 {
	count := m.window.Count()
	if m.width <= 0 || count <= 0 {
		return 0
	}
	return float64(sample-m.window.Lower) * m.width / float64(count)
}

// OffsetSample translates a sample index by a pixel delta, clamped to
// [0, effective total]. Returns the input unchanged when width is
// non-positive or the render range is empty.
func (m *Model) OffsetSample(sample int, dx float64) int {
	count := m.window.Count()
	if m.width <= 0 || count <= 0 {
		return sample
	}

	shifted := sample + int(math.Round(dx*float64(count)/m.width))
	return clampSample(shifted, m.EffectiveTotal())
}

func clampSample(sample, total int) int {
	if sample < 0 {
		return 0
	}
	if sample > total {
		return total
	}
	return sample
}

// Zoom scales the render range's length by 1/factor, recentered on the
// current midpoint and clamped into the effective total, then regenerates.
// Factors <= 0 are ignored.
func (m *Model) Zoom(factor float64) {
	if factor <= 0 {
		return
	}

	count := m.window.Count()
	newCount := int(math.Round(float64(count) / factor))
	if newCount < 1 {
		newCount = 1
	}

	mid := m.window.Lower + count/2
	lower := mid - newCount/2
	m.window = reduce.Range{Lower: lower, Upper: lower + newCount}.ClampInto(m.EffectiveTotal())

	m.regenerate()
}

// Pan translates the render range by the sample delta implied by the pixel
// offset dx, clamped so the range never leaves [0, effective total] and
// keeps its length. It returns the sample delta actually applied, which an
// alignment consumer feeds to its accumulated-offset counter, and
// regenerates when the range moved.
func (m *Model) Pan(dx float64) int {
	count := m.window.Count()
	if m.width <= 0 || count <= 0 {
		return 0
	}

	requested := int(math.Round(dx * float64(count) / m.width))
	shifted := m.window.Shifted(requested).ClampInto(m.EffectiveTotal())
	applied := shifted.Lower - m.window.Lower
	if applied == 0 {
		return 0
	}

	m.window = shifted
	m.regenerate()
	return applied
}

// Cancel aborts any reduction in flight without starting a new one.
func (m *Model) Cancel() {
	m.engine.Cancel()
}

// regenerate cancels the run in flight and requests a summary for the
// current state. A non-positive width suppresses regeneration entirely.
func (m *Model) regenerate() {
	if m.width <= 0 {
		return
	}

	m.engine.Start(reduce.Request{
		Buffer:           m.buf,
		SamplesToPrepend: m.prepend,
		Window:           m.window,
		Width:            int(m.width),
		Mode:             m.mode,
	}, m.publish)
}

// publish hands a finished summary to the coordination goroutine,
// replacing any delivery it has not drained yet (latest wins).
func (m *Model) publish(seq summary.Sequence) {
	for {
		select {
		case m.deliveries <- seq:
			return
		default:
			select {
			case <-m.deliveries:
			default:
			}
		}
	}
}

// Deliveries exposes the delivery channel for callers that integrate with
// their own event loop. At most one pending summary is buffered; newer
// deliveries replace undrained ones.
func (m *Model) Deliveries() <-chan summary.Sequence {
	return m.deliveries
}

// Poll applies the most recent pending delivery, if any, invoking the
// OnSummary callback, and reports whether a new summary was applied.
// Call from the coordination goroutine.
func (m *Model) Poll() bool {
	select {
	case seq := <-m.deliveries:
		m.summary = seq
		if m.onSummary != nil {
			m.onSummary(seq)
		}
		return true
	default:
		return false
	}
}
