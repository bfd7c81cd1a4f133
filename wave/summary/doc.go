// Package summary defines the per-pixel waveform summary produced by the
// reducer: one SampleData per screen column holding the column's min/max
// sample values and a transient weight in [0, 1]. The package also provides
// the transient-weight computation and the paint-time amplitude scaling
// curve used in transient-highlight rendering.
package summary
