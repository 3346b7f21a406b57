package results

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/amehta/practik/internal/engine"
	"github.com/amehta/practik/internal/session"
)

func testScreen() *ResultsScreen {
	sum := &session.Summary{
		SessionID: "sess-1",
		UserID:    "learner-1",
		SkillID:   "sk-1",
		Grade:     "junior",
		Correct:   8,
		Wrong:     2,
		Total:     10,
		Duration:  7 * time.Minute,
	}
	breakdown := []DifficultyLine{
		{Level: engine.Easy, Correct: 3, Total: 3},
		{Level: engine.Medium, Correct: 4, Total: 5},
		{Level: engine.Hard, Correct: 1, Total: 2},
	}
	return New(sum, breakdown, "Next up: Addition to 100")
}

func TestResultsScreen_Title(t *testing.T) {
	r := testScreen()
	if r.Title() != "Results" {
		t.Errorf("Title = %q, want %q", r.Title(), "Results")
	}
}

func TestResultsScreen_Display(t *testing.T) {
	r := testScreen()
	view := r.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty results view")
	}
	if !strings.Contains(view, "80%") {
		t.Error("expected the score percent in the view")
	}
	if !strings.Contains(view, "Next up: Addition to 100") {
		t.Error("expected the next-practice hint in the view")
	}
}

func TestResultsScreen_NilSummary(t *testing.T) {
	r := New(nil, nil, "")
	if r.View(80, 24) != "" {
		t.Error("expected empty view without a summary")
	}
}

func TestResultsScreen_Navigation(t *testing.T) {
	r := testScreen()
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
	_, cmd = r.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}
