// Package iir provides the per-sample runtime of a fixed 6th-order IIR
// feedback-control filter.
//
// A [Coefficients] record holds the tap gains, output offset, and output
// limits; a [State] is the caller-owned history buffer of one signal
// channel. [Coefficients.Update] advances a channel by one sample tick:
// it shifts the history, evaluates the difference equation by
// multiply-accumulate (or reuses the previous output when held), clamps
// the result to the configured limits, and stores it back.
//
// Because the history holds raw input and output samples rather than
// scaled internal states, the design gets two control-loop properties
// for free:
//
//   - Anti-windup: only actually emitted (already clamped) outputs feed
//     back into future computations, so saturation never accumulates
//     hidden state.
//   - Bump-less transfer: a record can be replaced between calls
//     without touching the history; the next update simply applies the
//     new weights to the same physically meaningful samples.
//
// Update performs a fixed amount of arithmetic, never allocates, and is
// safe to call from a tight real-time loop. Coefficient design
// (Butterworth, PID mappings, etc.) is out of scope; records arrive
// fully formed from a configuration layer such as package
// control/config.
package iir
