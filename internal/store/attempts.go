package store

import (
	"context"
	"fmt"

	"github.com/amehta/practik/internal/question"
	"github.com/amehta/practik/internal/session"
)

// AppendAttempt records one graded attempt under a session id. The
// session id may be a local fallback id when the remote create failed.
func (s *Store) AppendAttempt(ctx context.Context, sessionID string, att *question.Attempt) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO attempts (id, session_id, skill_id, question_id, difficulty, submitted, correct, time_spent_secs)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		att.ID, sessionID, att.SkillID, att.QuestionID, string(att.Difficulty),
		att.Submitted, att.Correct, int(att.TimeSpent.Seconds()),
	)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

// SaveSummary records the end-of-session aggregates.
func (s *Store) SaveSummary(ctx context.Context, localID string, sum *session.Summary) error {
	id := sum.SessionID
	if id == "" {
		id = localID
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO sessions (id, user_id, skill_id, grade, correct, wrong, score_percent, duration_secs)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, sum.UserID, sum.SkillID, sum.Grade, sum.Correct, sum.Wrong,
		sum.ScorePercent(), int(sum.Duration.Seconds()),
	)
	if err != nil {
		return fmt.Errorf("save session summary: %w", err)
	}
	return nil
}

// SkillStats summarizes the local attempt history for one skill.
type SkillStats struct {
	SkillID     string
	Attempts    int
	Correct     int
	AvgTimeSecs float64
}

// Accuracy returns correct/attempts, 0 for an empty history.
func (st SkillStats) Accuracy() float64 {
	if st.Attempts == 0 {
		return 0
	}
	return float64(st.Correct) / float64(st.Attempts)
}

// StatsBySkill aggregates the local attempt log per skill, ordered by
// attempt count descending.
func (s *Store) StatsBySkill(ctx context.Context) ([]SkillStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT skill_id,
		       COUNT(*),
		       SUM(correct),
		       AVG(time_spent_secs)
		FROM attempts
		GROUP BY skill_id
		ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []SkillStats
	for rows.Next() {
		var st SkillStats
		if err := rows.Scan(&st.SkillID, &st.Attempts, &st.Correct, &st.AvgTimeSecs); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// SkillAccuracy returns the historical accuracy for one skill from the
// local log, 0 when no attempts exist.
func (s *Store) SkillAccuracy(ctx context.Context, skillID string) (float64, error) {
	var attempts, correct int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(correct), 0) FROM attempts WHERE skill_id = ?`,
		skillID,
	).Scan(&attempts, &correct)
	if err != nil {
		return 0, fmt.Errorf("query skill accuracy: %w", err)
	}
	if attempts == 0 {
		return 0, nil
	}
	return float64(correct) / float64(attempts), nil
}
