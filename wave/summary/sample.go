package summary

// SampleData summarizes one pixel column of a waveform: the minimum and
// maximum sample value over the column's bucket and a transient weight
// in [0, 1]. The zero value is the identity for buckets that were never
// touched (virtual padding, cancelled scans).
type SampleData struct {
	Min             float64
	Max             float64
	TransientWeight float64
}

// Peak returns max(|Min|, |Max|), the column's absolute peak amplitude.
func (d SampleData) Peak() float64 {
	minAbs := d.Min
	if minAbs < 0 {
		minAbs = -minAbs
	}
	maxAbs := d.Max
	if maxAbs < 0 {
		maxAbs = -maxAbs
	}
	if minAbs > maxAbs {
		return minAbs
	}
	return maxAbs
}

// Sequence is an ordered run of column summaries; index i corresponds to
// the i-th pixel column of the requested render range.
type Sequence []SampleData
