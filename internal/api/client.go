package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/amehta/practik/internal/engine"
	"github.com/amehta/practik/internal/question"
	"github.com/amehta/practik/internal/skills"
)

// ErrNoQuestions is returned when the service has no questions for a
// skill. This is the one fatal-to-the-flow condition; everything else
// the client logs and moves past.
var ErrNoQuestions = errors.New("no questions found for skill")

// DefaultTimeout bounds a single request to the practice service.
const DefaultTimeout = 15 * time.Second

// Client talks to the remote practice service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: trimSlash(baseURL),
		http:    &http.Client{Timeout: timeout},
	}
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// CreateSession creates a remote practice session and returns its id.
func (c *Client) CreateSession(ctx context.Context, userID, skillKey string) (string, error) {
	body, err := c.post(ctx, "/v1/practice-sessions", createSessionRequest{
		UserID:   userID,
		SkillKey: skillKey,
	})
	if err != nil {
		return "", fmt.Errorf("create practice session: %w", err)
	}

	var resp createSessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode session response: %w", err)
	}
	if resp.SessionID == "" {
		return "", errors.New("service returned an empty session id")
	}
	return resp.SessionID, nil
}

// QuestionsBySkill fetches up to count questions for a skill at the
// given difficulty. The payload is schema-validated before conversion;
// an empty question list maps to ErrNoQuestions.
func (c *Client) QuestionsBySkill(ctx context.Context, skillID string, count int, difficulty engine.Difficulty) ([]*question.Question, error) {
	q := url.Values{}
	q.Set("count", strconv.Itoa(count))
	if difficulty != "" {
		q.Set("difficulty", string(difficulty))
	}

	body, err := c.get(ctx, "/v1/skills/"+url.PathEscape(skillID)+"/questions?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}

	if err := validateResponse(questionsSchema, body); err != nil {
		return nil, err
	}

	var resp questionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	if len(resp.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	out := make([]*question.Question, 0, len(resp.Questions))
	for _, p := range resp.Questions {
		qd := p.toDomain()
		if qd.SkillID == "" {
			qd.SkillID = skillID
		}
		out = append(out, qd)
	}
	return out, nil
}

// RecordAttempt reports one graded attempt. Callers treat failures as
// log-and-continue; this method just does the call.
func (c *Client) RecordAttempt(ctx context.Context, att AttemptPayload) error {
	if _, err := c.post(ctx, "/v1/attempts", att); err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// FinishSession finalizes a remote session.
func (c *Client) FinishSession(ctx context.Context, sessionID string) error {
	if _, err := c.post(ctx, "/v1/practice-sessions/"+url.PathEscape(sessionID)+"/finish", nil); err != nil {
		return fmt.Errorf("finish session: %w", err)
	}
	return nil
}

// CreateReport files the end-of-session report.
func (c *Client) CreateReport(ctx context.Context, rep ReportPayload) error {
	if _, err := c.post(ctx, "/v1/reports", rep); err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

// Skills lists the skill catalog for a grade.
func (c *Client) Skills(ctx context.Context, grade string) ([]skills.Skill, error) {
	q := url.Values{}
	q.Set("grade", grade)

	body, err := c.get(ctx, "/v1/skills?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	var payload []skillPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}

	out := make([]skills.Skill, 0, len(payload))
	for _, p := range payload {
		out = append(out, p.toDomain())
	}
	return out, nil
}

// SkillByID fetches one skill.
func (c *Client) SkillByID(ctx context.Context, skillID string) (*skills.Skill, error) {
	body, err := c.get(ctx, "/v1/skills/"+url.PathEscape(skillID))
	if err != nil {
		return nil, fmt.Errorf("get skill: %w", err)
	}

	var payload skillPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode skill: %w", err)
	}
	s := payload.toDomain()
	return &s, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, req.URL.Path)
	}
	return io.ReadAll(resp.Body)
}
