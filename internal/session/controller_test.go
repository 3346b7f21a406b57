package session

import (
	"errors"
	"testing"
	"time"
)

func testCtx() Context {
	return Context{UserID: "u-1", SkillID: "frac-2", Grade: "junior"}
}

func TestController_StartGuard(t *testing.T) {
	c := NewController(testCtx())

	if err := c.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if c.Phase() != Starting {
		t.Errorf("Phase = %d, want Starting", c.Phase())
	}

	// Re-entrant invocation must not restart the session.
	if err := c.Begin(); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Begin err = %v, want ErrAlreadyStarted", err)
	}

	c.Started("sess-1")
	if c.Phase() != InProgress {
		t.Errorf("Phase = %d, want InProgress", c.Phase())
	}
	if c.SessionID() != "sess-1" {
		t.Errorf("SessionID = %q, want sess-1", c.SessionID())
	}
	if !c.CanReport() {
		t.Error("expected reporting enabled with a session id")
	}
}

func TestController_StartFailureIsNonFatal(t *testing.T) {
	c := NewController(testCtx())
	_ = c.Begin()
	c.Started("")

	if c.Phase() != InProgress {
		t.Errorf("Phase = %d, want InProgress even without a session id", c.Phase())
	}
	if c.CanReport() {
		t.Error("reporting must be disabled without a session id")
	}

	// Finish must still work locally.
	sum, ok := c.Finish()
	if !ok || sum == nil {
		t.Fatal("Finish should succeed without a session id")
	}
	if sum.SessionID != "" {
		t.Errorf("SessionID = %q, want empty", sum.SessionID)
	}
}

func TestController_Counters(t *testing.T) {
	c := NewController(testCtx())
	_ = c.Begin()
	c.Started("sess-1")

	c.RecordOutcome(true)
	c.RecordOutcome(true)
	c.RecordOutcome(false)

	if c.Correct() != 2 || c.Wrong() != 1 || c.Total() != 3 {
		t.Errorf("counters = %d/%d/%d, want 2/1/3", c.Correct(), c.Wrong(), c.Total())
	}
}

func TestController_OutcomesIgnoredBeforeStart(t *testing.T) {
	c := NewController(testCtx())
	c.RecordOutcome(true)
	if c.Total() != 0 {
		t.Errorf("Total = %d, want 0 before start", c.Total())
	}
}

func TestController_OutcomesCountWhileStarting(t *testing.T) {
	c := NewController(testCtx())
	_ = c.Begin()

	// The first answer can land before the remote create returns.
	c.RecordOutcome(true)
	if c.Total() != 1 {
		t.Errorf("Total = %d, want 1 during Starting", c.Total())
	}
}

func TestController_BudgetExhausted(t *testing.T) {
	c := NewController(testCtx())
	_ = c.Begin()
	c.Started("sess-1")

	for i := 0; i < QuestionBudget-1; i++ {
		c.RecordOutcome(i%2 == 0)
	}
	if c.BudgetExhausted() {
		t.Error("budget should not be exhausted yet")
	}
	c.RecordOutcome(true)
	if !c.BudgetExhausted() {
		t.Error("budget should be exhausted")
	}
}

func TestController_FinishOnce(t *testing.T) {
	c := NewController(testCtx())
	_ = c.Begin()
	c.Started("sess-1")
	c.RecordOutcome(true)
	c.RecordOutcome(false)

	sum, ok := c.Finish()
	if !ok {
		t.Fatal("first Finish should succeed")
	}
	if sum.ScorePercent() != 50 {
		t.Errorf("ScorePercent = %d, want 50", sum.ScorePercent())
	}

	// Early exit racing with natural completion: only one finalize.
	if _, ok := c.Finish(); ok {
		t.Error("second Finish must not succeed")
	}
	if c.Phase() != Completed {
		t.Errorf("Phase = %d, want Completed", c.Phase())
	}
}

func TestController_FinishWithoutStart(t *testing.T) {
	c := NewController(testCtx())
	sum, ok := c.Finish()
	if !ok || sum == nil {
		t.Fatal("Finish should be safe even if start never ran")
	}
	if sum.Total != 0 {
		t.Errorf("Total = %d, want 0", sum.Total)
	}
}

func TestSummary_ScorePercent(t *testing.T) {
	tests := []struct {
		correct, total int
		want           int
	}{
		{0, 0, 0},
		{10, 10, 100},
		{7, 10, 70},
		{1, 3, 33},
	}
	for _, tt := range tests {
		s := Summary{Correct: tt.correct, Total: tt.total}
		if got := s.ScorePercent(); got != tt.want {
			t.Errorf("ScorePercent(%d/%d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestClock_FocusAttribution(t *testing.T) {
	c := NewClock()

	c.Tick(time.Second)
	c.Tick(time.Second)
	if c.Total() != 2*time.Second {
		t.Errorf("Total = %v, want 2s", c.Total())
	}

	c.Blur()
	c.Tick(time.Second)
	c.Tick(time.Second)
	if c.Total() != 2*time.Second {
		t.Errorf("Total = %v, want 2s while blurred", c.Total())
	}

	c.Focus()
	c.Tick(time.Second)
	if c.Total() != 3*time.Second {
		t.Errorf("Total = %v, want 3s after refocus", c.Total())
	}
}

func TestClock_QuestionElapsed(t *testing.T) {
	c := NewClock()
	c.Tick(time.Second)
	c.Tick(time.Second)

	c.StartQuestion()
	if c.QuestionElapsed() != 0 {
		t.Errorf("QuestionElapsed = %v, want 0 after reset", c.QuestionElapsed())
	}
	c.Tick(time.Second)
	if c.QuestionElapsed() != time.Second {
		t.Errorf("QuestionElapsed = %v, want 1s", c.QuestionElapsed())
	}
	if c.Total() != 3*time.Second {
		t.Errorf("Total = %v, want 3s", c.Total())
	}
}
