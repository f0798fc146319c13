// Package motion provides the two scalar animation primitives behind
// the chart's pan and zoom feel:
//
//   - [Tween]: duration-bounded eased interpolation toward a target
//   - [Inertia]: finite-difference forced motion that coasts to rest
//     under exponential velocity decay
//
// Both are driven by an injected [frame.Scheduler] and [frame.Clock];
// nothing here owns a goroutine or a timer. Each engine keeps at most
// one pending frame callback, and every new target cancels the
// previous callback before scheduling its replacement, so a stale step
// can never run against superseded state.
//
// The inertial model is a first-order forward-Euler approximation
// tuned for visual feel. Results are frame-timestamp dependent, not
// bit-exact across frame rates.
package motion
