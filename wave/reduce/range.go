package reduce

// Range is a half-open window [Lower, Upper) in virtual sample space.
type Range struct {
	Lower int
	Upper int
}

// NewRange returns the range [lower, upper), swapping nothing and clamping
// nothing; callers clamp against their own totals.
func NewRange(lower, upper int) Range {
	return Range{Lower: lower, Upper: upper}
}

// Count returns the number of samples covered, never negative.
func (r Range) Count() int {
	if r.Upper <= r.Lower {
		return 0
	}
	return r.Upper - r.Lower
}

// IsEmpty reports whether the range covers no samples.
func (r Range) IsEmpty() bool {
	return r.Upper <= r.Lower
}

// Shifted returns the range translated by delta samples.
func (r Range) Shifted(delta int) Range {
	return Range{Lower: r.Lower + delta, Upper: r.Upper + delta}
}

// ClampInto slides and trims the range into [0, total) while preserving its
// length where possible: if the range sticks out past either edge it is
// translated back in, and only shortened when it is longer than total.
func (r Range) ClampInto(total int) Range {
	if total < 0 {
		total = 0
	}

	count := r.Count()
	if count > total {
		count = total
	}

	lower := r.Lower
	if lower+count > total {
		lower = total - count
	}
	if lower < 0 {
		lower = 0
	}

	return Range{Lower: lower, Upper: lower + count}
}
