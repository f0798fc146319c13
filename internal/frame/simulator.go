package frame

import "time"

// Simulator is a Scheduler plus a fake Clock for tests: frames advance
// only when Advance is called, so every step sees an exact timestamp.
type Simulator struct {
	Queue
	now time.Time
}

// NewSimulator starts the fake clock at an arbitrary fixed instant.
func NewSimulator() *Simulator {
	return &Simulator{
		Queue: Queue{pending: make(map[Handle]Callback)},
		now:   time.Unix(0, 0),
	}
}

func (s *Simulator) Now() time.Time { return s.now }

// Advance moves the clock forward by d and flushes one frame.
func (s *Simulator) Advance(d time.Duration) {
	s.now = s.now.Add(d)
	s.Flush(s.now)
}

// Run advances in fixed steps until no callbacks remain pending or
// maxFrames is reached, and returns the number of frames flushed.
func (s *Simulator) Run(step time.Duration, maxFrames int) int {
	frames := 0
	for s.Pending() > 0 && frames < maxFrames {
		s.Advance(step)
		frames++
	}
	return frames
}
