package question

import (
	"time"

	"github.com/amehta/practik/internal/engine"
)

// Question is a single practice question as delivered by the remote
// service. The prompt and explanation are opaque blobs (plain text or
// markup); the client renders them but never interprets them. A
// question is immutable once received.
type Question struct {
	// ID is the service-assigned question identifier.
	ID string

	// Prompt is the question content shown to the learner.
	Prompt string

	// Options are the answer choices. Empty for free-text questions.
	Options []string

	// Answer is the canonical correct answer.
	Answer string

	// Difficulty is the level this question was served at.
	Difficulty engine.Difficulty

	// Explanation is the worked solution shown after grading.
	Explanation string

	// TemplateID identifies the generator template on the service side.
	// Used only for attempt logging.
	TemplateID string

	// SkillID is the skill this question belongs to.
	SkillID string
}

// FreeText reports whether the learner types an answer rather than
// picking an option.
func (q *Question) FreeText() bool {
	return len(q.Options) == 0
}

// Attempt is the record of one graded question. Created when the
// question is graded, never mutated, reported once to the remote
// service and kept locally for summary statistics.
type Attempt struct {
	ID         string
	QuestionID string
	SkillID    string
	TemplateID string
	Prompt     string
	Answer     string
	Submitted  string
	Correct    bool
	Difficulty engine.Difficulty
	Solution   string
	TimeSpent  time.Duration
}
