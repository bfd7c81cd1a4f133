// Package reduce downsamples a multichannel sample buffer into a fixed-width
// summary.Sequence, one min/max entry per pixel column. Buckets are reduced
// in parallel across a worker pool; a run is cancelled cooperatively at
// bucket granularity, and starting a new run on an Engine supersedes any run
// still in flight so at most one result is ever delivered per request
// generation.
//
// The reducer works in virtual sample space: the buffer may be framed by
// silent prepend/append padding, and buckets that fall entirely inside the
// padding stay at the zero summary.
package reduce
