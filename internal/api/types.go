package api

import (
	"github.com/amehta/practik/internal/engine"
	"github.com/amehta/practik/internal/question"
	"github.com/amehta/practik/internal/skills"
)

// Wire types for the practice service. The wire format is owned by the
// backend; these mirror it and convert to the domain types at the edge.

type createSessionRequest struct {
	UserID   string `json:"user_id"`
	SkillKey string `json:"skill_key"`
}

type createSessionResponse struct {
	SessionID string `json:"session_id"`
}

type questionPayload struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"answer"`
	Difficulty  string   `json:"difficulty"`
	Explanation string   `json:"explanation"`
	TemplateID  string   `json:"template_id,omitempty"`
	SkillID     string   `json:"skill_id"`
}

type questionsResponse struct {
	Questions        []questionPayload `json:"questions"`
	TemplateMetadata *templateMetadata `json:"template_metadata,omitempty"`
}

type templateMetadata struct {
	Difficulty string `json:"difficulty"`
	SkillName  string `json:"skill_name"`
	Grade      string `json:"grade"`
}

// AttemptPayload is the attempt record as the service expects it.
type AttemptPayload struct {
	UserID           string `json:"user_id"`
	SessionID        string `json:"session_id"`
	SkillID          string `json:"skill_id"`
	TemplateID       string `json:"template_id,omitempty"`
	DifficultyLevel  string `json:"difficulty_level"`
	QuestionText     string `json:"question_text"`
	CorrectAnswer    string `json:"correct_answer"`
	StudentAnswer    string `json:"student_answer"`
	IsCorrect        bool   `json:"is_correct"`
	SolutionText     string `json:"solution_text,omitempty"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

// NewAttemptPayload converts a graded attempt into its wire form.
func NewAttemptPayload(userID, sessionID string, att *question.Attempt) AttemptPayload {
	return AttemptPayload{
		UserID:           userID,
		SessionID:        sessionID,
		SkillID:          att.SkillID,
		TemplateID:       att.TemplateID,
		DifficultyLevel:  string(att.Difficulty),
		QuestionText:     att.Prompt,
		CorrectAnswer:    att.Answer,
		StudentAnswer:    att.Submitted,
		IsCorrect:        att.Correct,
		SolutionText:     att.Solution,
		TimeSpentSeconds: int(att.TimeSpent.Seconds()),
	}
}

// ReportPayload is the end-of-session report record.
type ReportPayload struct {
	Title      string            `json:"title"`
	Type       string            `json:"type"`
	Score      int               `json:"score"`
	Parameters map[string]string `json:"parameters,omitempty"`
	UserID     string            `json:"user_id"`
}

type skillPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TopicKey    string `json:"topic_key"`
	Grade       string `json:"grade"`
	Description string `json:"description,omitempty"`
	Position    int    `json:"position"`
}

func (p skillPayload) toDomain() skills.Skill {
	return skills.Skill{
		ID:          p.ID,
		Name:        p.Name,
		TopicKey:    p.TopicKey,
		Grade:       p.Grade,
		Description: p.Description,
		Position:    p.Position,
	}
}

func (p questionPayload) toDomain() *question.Question {
	return &question.Question{
		ID:          p.ID,
		Prompt:      p.Prompt,
		Options:     p.Options,
		Answer:      p.Answer,
		Difficulty:  engine.Difficulty(p.Difficulty),
		Explanation: p.Explanation,
		TemplateID:  p.TemplateID,
		SkillID:     p.SkillID,
	}
}
