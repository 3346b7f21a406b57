package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amehta/practik/internal/engine"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 0)
}

func TestCreateSession(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/practice-sessions", r.URL.Path)

		var req createSessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "u-1", req.UserID)
		assert.Equal(t, "frac-2", req.SkillKey)

		_ = json.NewEncoder(w).Encode(createSessionResponse{SessionID: "sess-9"})
	})

	id, err := c.CreateSession(context.Background(), "u-1", "frac-2")
	require.NoError(t, err)
	assert.Equal(t, "sess-9", id)
}

func TestCreateSession_EmptyID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(createSessionResponse{})
	})

	_, err := c.CreateSession(context.Background(), "u-1", "frac-2")
	require.Error(t, err)
}

func TestQuestionsBySkill(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/skills/frac-2/questions", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("count"))
		assert.Equal(t, "Medium", r.URL.Query().Get("difficulty"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"questions": []map[string]any{{
				"id":          "q-1",
				"prompt":      "What is 1/2 + 1/4?",
				"options":     []string{"3/4", "2/6", "1/8", "2/4"},
				"answer":      "3/4",
				"difficulty":  "Medium",
				"explanation": "Convert to quarters first.",
				"skill_id":    "frac-2",
			}},
		})
	})

	qs, err := c.QuestionsBySkill(context.Background(), "frac-2", 1, engine.Medium)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "q-1", qs[0].ID)
	assert.Equal(t, engine.Medium, qs[0].Difficulty)
	assert.Len(t, qs[0].Options, 4)
	assert.False(t, qs[0].FreeText())
}

func TestQuestionsBySkill_Empty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"questions": []any{}})
	})

	_, err := c.QuestionsBySkill(context.Background(), "frac-2", 1, engine.Easy)
	require.ErrorIs(t, err, ErrNoQuestions)
}

func TestQuestionsBySkill_SchemaViolation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Missing required "prompt" and an unknown difficulty label.
		_ = json.NewEncoder(w).Encode(map[string]any{
			"questions": []map[string]any{{
				"id":         "q-1",
				"answer":     "42",
				"difficulty": "Impossible",
			}},
		})
	})

	_, err := c.QuestionsBySkill(context.Background(), "frac-2", 1, engine.Easy)
	require.Error(t, err)

	var invalid *ErrInvalidResponse
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "practice-questions", invalid.Schema)
}

func TestQuestionsBySkill_FillsSkillID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"questions": []map[string]any{{
				"id":         "q-1",
				"prompt":     "2+2?",
				"answer":     "4",
				"difficulty": "Easy",
			}},
		})
	})

	qs, err := c.QuestionsBySkill(context.Background(), "add-1", 1, engine.Easy)
	require.NoError(t, err)
	assert.Equal(t, "add-1", qs[0].SkillID)
}

func TestRecordAttemptAndFinish(t *testing.T) {
	var gotPaths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.RecordAttempt(context.Background(), AttemptPayload{
		UserID: "u-1", SessionID: "sess-9", SkillID: "frac-2",
		DifficultyLevel: "Easy", IsCorrect: true,
	}))
	require.NoError(t, c.FinishSession(context.Background(), "sess-9"))
	require.NoError(t, c.CreateReport(context.Background(), ReportPayload{
		Title: "Practice report", Type: "practice", Score: 70, UserID: "u-1",
	}))

	assert.Equal(t, []string{
		"/v1/attempts",
		"/v1/practice-sessions/sess-9/finish",
		"/v1/reports",
	}, gotPaths)
}

func TestSkills(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/skills", r.URL.Path)
		assert.Equal(t, "junior", r.URL.Query().Get("grade"))
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "frac-1", "name": "Naming fractions", "topic_key": "fractions", "grade": "junior", "position": 1},
			{"id": "frac-2", "name": "Equivalent fractions", "topic_key": "fractions", "grade": "junior", "position": 2},
		})
	})

	out, err := c.Skills(context.Background(), "junior")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "frac-1", out[0].ID)
	assert.Equal(t, 2, out[1].Position)
}

func TestSkillByID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/skills/frac-2", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "frac-2", "name": "Equivalent fractions", "topic_key": "fractions",
			"grade": "junior", "position": 2,
		})
	})

	s, err := c.SkillByID(context.Background(), "frac-2")
	require.NoError(t, err)
	assert.Equal(t, "Equivalent fractions", s.Name)
}

func TestServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.CreateSession(context.Background(), "u-1", "frac-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}
