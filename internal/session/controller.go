package session

import (
	"errors"
	"time"
)

// QuestionBudget is the fixed number of questions in one practice run.
const QuestionBudget = 10

// Phase is the lifecycle phase of the session as a whole. InProgress is
// re-entrant across question advances; Completed is terminal.
type Phase int

const (
	NotStarted Phase = iota
	Starting         // Remote session creation in flight
	InProgress
	Completed
)

// ErrAlreadyStarted is returned when Begin is invoked twice. The guard
// makes session creation idempotent per controller instance, so event
// re-entrancy cannot create two remote sessions for the same skill.
var ErrAlreadyStarted = errors.New("session already started")

// Context identifies who is practicing what. Passed in at construction
// instead of being read from ambient storage.
type Context struct {
	UserID  string
	SkillID string
	Grade   string
}

// Controller owns the session lifecycle: the remote session id, the
// aggregate counters and the finalize-once guard. It holds no network
// code itself; callers drive it from their event loop and perform the
// remote calls, applying the results here.
type Controller struct {
	ctx   Context
	phase Phase

	// sessionID is empty when remote creation failed. Reporting calls
	// are skipped in that case; practice continues regardless.
	sessionID string

	correct int
	wrong   int

	clock Clock
}

// NewController creates a controller in NotStarted.
func NewController(ctx Context) *Controller {
	return &Controller{ctx: ctx, clock: NewClock()}
}

// Ctx returns the session context.
func (c *Controller) Ctx() Context { return c.ctx }

// Phase returns the current session phase.
func (c *Controller) Phase() Phase { return c.phase }

// SessionID returns the remote session id, or "" if none was obtained.
func (c *Controller) SessionID() string { return c.sessionID }

// Clock returns the session clock for tick and focus handling.
func (c *Controller) Clock() *Clock { return &c.clock }

// Begin moves NotStarted → Starting. The caller should then create the
// remote session and report the outcome via Started.
func (c *Controller) Begin() error {
	if c.phase != NotStarted {
		return ErrAlreadyStarted
	}
	c.phase = Starting
	return nil
}

// Started moves Starting → InProgress with the session id the remote
// service assigned. An empty id records that creation failed; the
// session proceeds without remote reporting.
func (c *Controller) Started(sessionID string) {
	if c.phase != Starting {
		return
	}
	c.sessionID = sessionID
	c.phase = InProgress
}

// CanReport reports whether remote attempt/report calls should be made.
func (c *Controller) CanReport() bool {
	return c.sessionID != ""
}

// RecordOutcome folds one graded question into the aggregates. The
// remote create may still be in flight when the first answer lands, so
// Starting counts as live.
func (c *Controller) RecordOutcome(correct bool) {
	if c.phase != Starting && c.phase != InProgress {
		return
	}
	if correct {
		c.correct++
	} else {
		c.wrong++
	}
}

// Correct returns the number of correct answers so far.
func (c *Controller) Correct() int { return c.correct }

// Wrong returns the number of wrong answers so far.
func (c *Controller) Wrong() int { return c.wrong }

// Total returns the number of graded questions so far.
func (c *Controller) Total() int { return c.correct + c.wrong }

// BudgetExhausted reports whether the fixed question budget is used up.
func (c *Controller) BudgetExhausted() bool {
	return c.Total() >= QuestionBudget
}

// Finish moves the session to Completed and returns the summary.
// Exactly one call succeeds; later calls (early exit racing with
// natural completion) return ok=false and the caller must not issue
// the remote finish/report pair again.
func (c *Controller) Finish() (*Summary, bool) {
	if c.phase == Completed {
		return nil, false
	}
	c.phase = Completed
	return c.buildSummary(), true
}

func (c *Controller) buildSummary() *Summary {
	return &Summary{
		SessionID: c.sessionID,
		UserID:    c.ctx.UserID,
		SkillID:   c.ctx.SkillID,
		Grade:     c.ctx.Grade,
		Correct:   c.correct,
		Wrong:     c.wrong,
		Total:     c.correct + c.wrong,
		Duration:  c.clock.Total(),
	}
}

// Summary holds the aggregate statistics shown on the results screen
// and sent with the session report.
type Summary struct {
	SessionID string
	UserID    string
	SkillID   string
	Grade     string
	Correct   int
	Wrong     int
	Total     int
	Duration  time.Duration
}

// ScorePercent returns correct/total as a percentage, 0 for an empty run.
func (s *Summary) ScorePercent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Correct * 100 / s.Total
}
