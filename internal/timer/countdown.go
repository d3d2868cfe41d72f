package timer

// DefaultSeconds is the countdown length for a question.
const DefaultSeconds = 30

// Thresholds for the timer display level.
const (
	LowSeconds      = 10
	CriticalSeconds = 5
)

// Level classifies the remaining time for display.
type Level int

const (
	// LevelNormal means plenty of time remains.
	LevelNormal Level = iota
	// LevelLow means ten seconds or fewer remain.
	LevelLow
	// LevelCritical means five seconds or fewer remain.
	LevelCritical
)

// Countdown tracks whole seconds remaining for the active question.
//
// Countdown is a value type; every operation returns the updated copy.
// Generation is bumped on each Reset so that ticks scheduled for an
// earlier run can be recognised and dropped.
type Countdown struct {
	Duration   int
	Remaining  int
	Running    bool
	Expired    bool
	Generation int
}

// New returns a stopped countdown at full duration.
func New(seconds int) Countdown {
	if seconds < 1 {
		seconds = 1
	}
	return Countdown{Duration: seconds, Remaining: seconds}
}

// Start resumes ticking. An expired countdown must be Reset first.
func (c Countdown) Start() Countdown {
	if c.Expired || c.Remaining <= 0 {
		return c
	}
	c.Running = true
	return c
}

// Stop halts ticking without changing the remaining time.
func (c Countdown) Stop() Countdown {
	c.Running = false
	return c
}

// Reset restores the full duration and starts a new generation.
func (c Countdown) Reset() Countdown {
	c.Remaining = c.Duration
	c.Expired = false
	c.Running = false
	c.Generation++
	return c
}

// Restart resets and starts the countdown.
func (c Countdown) Restart() Countdown {
	return c.Reset().Start()
}

// Tick advances the countdown by one second. It reports true exactly once,
// on the tick that reaches zero.
func (c Countdown) Tick() (Countdown, bool) {
	if !c.Running || c.Expired || c.Remaining <= 0 {
		return c, false
	}
	c.Remaining--
	if c.Remaining > 0 {
		return c, false
	}
	c.Remaining = 0
	c.Running = false
	c.Expired = true
	return c, true
}

// Accepts reports whether a tick scheduled for generation is still current.
func (c Countdown) Accepts(generation int) bool {
	return generation == c.Generation
}

// Fraction returns the remaining share of the duration in [0, 1].
func (c Countdown) Fraction() float64 {
	if c.Duration <= 0 {
		return 0
	}
	return float64(c.Remaining) / float64(c.Duration)
}

// Level classifies the remaining time.
func (c Countdown) Level() Level {
	switch {
	case c.Remaining <= CriticalSeconds:
		return LevelCritical
	case c.Remaining <= LowSeconds:
		return LevelLow
	default:
		return LevelNormal
	}
}
