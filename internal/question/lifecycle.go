package question

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Phase is the lifecycle phase of the current question.
type Phase int

const (
	Unanswered Phase = iota // Loaded, awaiting an answer
	Graded                  // Answer submitted and graded
	Advanced                // Session has moved past this question
)

var (
	// ErrAlreadyGraded is returned by Submit on a graded question.
	ErrAlreadyGraded = errors.New("question already graded")

	// ErrNotGraded is returned when an operation requires grading first.
	ErrNotGraded = errors.New("question not yet graded")
)

// Lifecycle drives one question from load to advancement. Duplicate
// events (double-clicks, replayed messages) are treated as contract
// violations and rejected without panicking, so the UI stays resilient.
type Lifecycle struct {
	question *Question
	phase    Phase
	correct  bool

	// explanationOpen is a presentation toggle. Wrong answers force
	// it open; correct answers leave it closed until requested.
	explanationOpen bool
}

// NewLifecycle starts the lifecycle for a freshly loaded question.
func NewLifecycle(q *Question) *Lifecycle {
	return &Lifecycle{question: q}
}

// Question returns the question this lifecycle wraps.
func (l *Lifecycle) Question() *Question { return l.question }

// Phase returns the current lifecycle phase.
func (l *Lifecycle) Phase() Phase { return l.phase }

// Correct reports the grading outcome. Only meaningful after Graded.
func (l *Lifecycle) Correct() bool { return l.correct }

// ExplanationOpen reports whether the explanation is showing.
func (l *Lifecycle) ExplanationOpen() bool { return l.explanationOpen }

// Submit grades the submitted answer and produces the Attempt record.
// Valid only in Unanswered; a second call returns ErrAlreadyGraded and
// leaves the first grading untouched.
func (l *Lifecycle) Submit(answer string, timeSpent time.Duration) (*Attempt, error) {
	if l.phase != Unanswered {
		return nil, ErrAlreadyGraded
	}

	l.correct = Grade(answer, l.question.Answer)
	l.phase = Graded
	if !l.correct {
		l.explanationOpen = true
	}

	return &Attempt{
		ID:         uuid.New().String(),
		QuestionID: l.question.ID,
		SkillID:    l.question.SkillID,
		TemplateID: l.question.TemplateID,
		Prompt:     l.question.Prompt,
		Answer:     l.question.Answer,
		Submitted:  answer,
		Correct:    l.correct,
		Difficulty: l.question.Difficulty,
		Solution:   l.question.Explanation,
		TimeSpent:  timeSpent,
	}, nil
}

// ToggleExplanation flips the explanation panel. Valid only after
// grading; before that it is a no-op.
func (l *Lifecycle) ToggleExplanation() {
	if l.phase != Graded {
		return
	}
	l.explanationOpen = !l.explanationOpen
}

// Advance marks the question as passed. Valid only in Graded.
func (l *Lifecycle) Advance() error {
	if l.phase != Graded {
		return ErrNotGraded
	}
	l.phase = Advanced
	return nil
}
