package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amehta/practik/internal/engine"
	"github.com/amehta/practik/internal/router"
	"github.com/amehta/practik/internal/screen"
	"github.com/amehta/practik/internal/session"
	"github.com/amehta/practik/internal/ui/layout"
	"github.com/amehta/practik/internal/ui/theme"
)

// DifficultyLine is one row of the per-level breakdown.
type DifficultyLine struct {
	Level   engine.Difficulty
	Correct int
	Total   int
}

// ResultsScreen displays the session summary.
type ResultsScreen struct {
	summary   *session.Summary
	breakdown []DifficultyLine
	nextHint  string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for a finished session. breakdown rows
// with zero attempts are skipped; nextHint may be empty.
func New(summary *session.Summary, breakdown []DifficultyLine, nextHint string) *ResultsScreen {
	return &ResultsScreen{
		summary:   summary,
		breakdown: breakdown,
		nextHint:  nextHint,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	sum := r.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	score := fmt.Sprintf("%d%%", sum.ScorePercent())
	scoreStyle := theme.Correct
	if sum.ScorePercent() < 50 {
		scoreStyle = theme.Incorrect
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(scoreStyle.Render(score)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Wrong: %d        Time: %d:%02d",
		sum.Total, sum.Correct, sum.Wrong, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	if lines := r.renderBreakdown(); lines != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, lines))
		b.WriteString("\n")
	}

	if r.nextHint != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(r.nextHint))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Hint.Render("Press Enter to return home")))

	return b.String()
}

func (r *ResultsScreen) renderBreakdown() string {
	var b strings.Builder
	for _, line := range r.breakdown {
		if line.Total == 0 {
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%-8s", line.Level)))
		b.WriteString(theme.Body.Render(fmt.Sprintf("%d/%d correct", line.Correct, line.Total)))
		b.WriteString("\n")
	}
	return b.String()
}
