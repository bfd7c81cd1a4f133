// Package signal generates deterministic preview buffers for demos and
// benchmarks: tone bursts with click attacks over a low noise floor, shaped
// so that both the padding arithmetic and the transient scoring have
// something to show. No file I/O is involved; output goes straight into a
// buffer.SampleBuffer.
package signal
