// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (frames, the timeline rail,
//   line fitting and padding)
//
// Not allowed here:
// - key handling, reveal state, or scroll policy
package widgets
