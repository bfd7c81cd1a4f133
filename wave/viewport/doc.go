// Package viewport tracks the visible window into a padded waveform and
// drives summary regeneration. A Model owns the virtual sample space (real
// frames plus silent prepend/append padding), the render range, and the
// pixel width; every mutation cancels the reduction in flight and requests a
// fresh one, so the consumer only ever observes the summary matching the
// latest viewport state.
//
// A Model's state is meant to be read and mutated from one coordination
// goroutine. Finished summaries arrive on a channel that the coordination
// goroutine drains via Poll or Deliveries.
package viewport
