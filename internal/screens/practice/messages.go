package practice

import (
	"time"

	"github.com/amehta/practik/internal/question"
)

// sessionStartedMsg is sent when remote session creation completes.
// An empty SessionID with a non-nil Err means the run continues
// without remote reporting.
type sessionStartedMsg struct {
	SessionID string
	Err       error
}

// questionReadyMsg is sent when a question fetch completes. Seq ties
// the reply to the fetch that requested it; replies for an older Seq
// are dropped.
type questionReadyMsg struct {
	Seq      int
	Question *question.Question
	Err      error
}

// attemptSavedMsg confirms the fire-and-forget attempt report.
type attemptSavedMsg struct {
	Err error
}

// finishSavedMsg confirms the end-of-run finish and report calls.
type finishSavedMsg struct {
	Err error
}

// timerTickMsg is sent every second to advance the session clock.
type timerTickMsg time.Time

// spinnerTickMsg animates the fetch spinner while a question loads.
type spinnerTickMsg time.Time
