// Package frame provides the per-frame callback scheduling primitives
// that drive the motion engines.
//
//   - [Scheduler]: register a callback for the next frame, cancel by handle
//   - [Clock]: monotonic time source
//   - [Queue]: concrete scheduler flushed once per display frame
//   - [Simulator]: deterministic fake clock for stepping frames in tests
//
// A registered callback fires at most once, on the next flush after it
// was scheduled. Self-animating code re-schedules itself at the end of
// its own step; the scheduler owns the pending identity, so a newer
// request can always cancel a stale step before it runs.
//
// # Thread Safety
//
// Queue is not safe for concurrent use. The intended model is a single
// UI goroutine: input handlers and frame flushes both run on it.
package frame
