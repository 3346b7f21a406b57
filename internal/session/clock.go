package session

import "time"

// Clock accumulates practice time from 1-second ticks. Time only
// accrues while the terminal has focus, so backgrounding the app does
// not inflate a learner's measured time-per-question. Per-question
// attribution restarts on StartQuestion; time that passes while blurred
// is credited to nobody and the next tick after refocus counts toward
// the question on screen then.
type Clock struct {
	focused  bool
	total    time.Duration
	question time.Duration
}

// NewClock returns a running, focused clock.
func NewClock() Clock {
	return Clock{focused: true}
}

// Tick advances the clock by one tick interval if focused.
func (c *Clock) Tick(d time.Duration) {
	if !c.focused {
		return
	}
	c.total += d
	c.question += d
}

// Focus resumes time attribution.
func (c *Clock) Focus() { c.focused = true }

// Blur pauses time attribution.
func (c *Clock) Blur() { c.focused = false }

// Focused reports whether time is currently accruing.
func (c *Clock) Focused() bool { return c.focused }

// StartQuestion resets the per-question counter.
func (c *Clock) StartQuestion() { c.question = 0 }

// QuestionElapsed returns focused time spent on the current question.
func (c *Clock) QuestionElapsed() time.Duration { return c.question }

// Total returns focused time spent in the whole session.
func (c *Clock) Total() time.Duration { return c.total }
