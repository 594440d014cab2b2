package spindle

// Scheduler drives a rate-capped callback off a FrameSource. The cap is
// skip-based: a notification arriving before 1/targetFPS seconds have passed
// since the last accepted tick is ignored, and the skipped time is folded
// into the next accepted tick's dt.
type Scheduler struct {
	src      FrameSource
	fn       func(dt float64)
	interval float64

	running bool
	gen     uint64 // incremented per Start; stale chains compare against it
	seeded  bool   // false until the first notification after Start
	last    float64
}

// NewScheduler creates a stopped scheduler. targetFPS <= 0 disables the cap.
func NewScheduler(src FrameSource, targetFPS float64, fn func(dt float64)) *Scheduler {
	s := &Scheduler{src: src, fn: fn}
	if targetFPS > 0 {
		s.interval = 1 / targetFPS
	}
	return s
}

// Interval returns the minimum seconds between accepted ticks.
func (s *Scheduler) Interval() float64 { return s.interval }

// Running reports whether the scheduler is requesting frames.
func (s *Scheduler) Running() bool { return s.running }

// Start begins requesting frames. It is a no-op while already running.
func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.gen++
	s.src.RequestFrame(s.chain(s.gen))
}

// Stop halts future scheduling and resets the last-tick timestamp, so the
// next Start seeds from its first notification instead of a stale one.
func (s *Scheduler) Stop() {
	s.running = false
	s.seeded = false
	s.last = 0
}

// chain returns the frame callback for one Start generation. A callback
// belonging to an older generation drops out without re-arming.
func (s *Scheduler) chain(gen uint64) func(float64) {
	var step func(ts float64)
	step = func(ts float64) {
		if !s.running || s.gen != gen {
			return
		}
		s.frame(ts)
		if s.running && s.gen == gen {
			s.src.RequestFrame(step)
		}
	}
	return step
}

func (s *Scheduler) frame(ts float64) {
	if !s.seeded {
		s.seeded = true
		s.last = ts
		return
	}
	elapsed := ts - s.last
	if elapsed > s.interval {
		s.last = ts
		s.fn(elapsed)
	}
}
