package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/amehta/practik/internal/engine"
	"github.com/amehta/practik/internal/question"
	sess "github.com/amehta/practik/internal/session"
	"github.com/amehta/practik/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	switch {
	case p.errMsg != "":
		return p.renderError(width)
	case p.confirmQuit:
		return renderQuitConfirm(width)
	case p.suggestion != nil:
		return p.renderSuggestion(width)
	case p.life == nil:
		return p.renderLoading(width)
	}
	return p.renderQuestion(width)
}

func (p *PracticeScreen) renderError(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Incorrect.Render("Something went wrong")))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Body.Render(p.errMsg)))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Hint.Render("Press any key to go back.")))
	return b.String()
}

var spinFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (p *PracticeScreen) renderLoading(width int) string {
	frame := spinFrames[p.spinFrame%len(spinFrames)]
	return "\n\n" + centered(width,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(frame+" Fetching question..."))
}

func (p *PracticeScreen) renderQuestion(width int) string {
	q := p.life.Question()

	var b strings.Builder

	b.WriteString(p.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(prompt.Render(q.Prompt))
	b.WriteString("\n\n")

	if q.FreeText() {
		b.WriteString(centered(width, "Answer: "+p.input.View()))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.opts.View()))
	}

	if p.life.Phase() == question.Graded {
		b.WriteString("\n")
		b.WriteString(p.renderFeedback(width))
	}

	return b.String()
}

func (p *PracticeScreen) renderStatusLine(width int) string {
	mins := int(p.ctrl.Clock().Total().Minutes())
	secs := int(p.ctrl.Clock().Total().Seconds()) % 60

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + p.Title())

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  Q %d/%d  ✓ %d  %d:%02d",
			p.diff.Difficulty,
			min(p.ctrl.Total()+1, sess.QuestionBudget),
			sess.QuestionBudget,
			p.ctrl.Correct(),
			mins, secs,
		))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (p *PracticeScreen) renderFeedback(width int) string {
	q := p.life.Question()

	var b strings.Builder

	if p.life.Correct() {
		b.WriteString(centered(width, theme.Correct.Render("Correct!")))
	} else {
		b.WriteString(centered(width, theme.Incorrect.Render("Not quite")))
		b.WriteString("\n")
		b.WriteString(centered(width, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Correct answer: "+q.Answer)))
	}
	b.WriteString("\n")

	if p.life.ExplanationOpen() && q.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(exp)))
		b.WriteString("\n")
	} else if q.Explanation != "" {
		b.WriteString(centered(width, theme.Hint.Render("Press E for the explanation.")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centered(width, theme.Hint.Render("Press Enter to continue...")))
	return b.String()
}

func (p *PracticeScreen) renderSuggestion(width int) string {
	var title, body string

	switch p.suggestion.Kind {
	case engine.SuggestNextSkill:
		title = "Nice streak!"
		name := ""
		if next := p.nav.Next(); next != nil {
			name = next.Name
		}
		body = fmt.Sprintf("You are doing great at the hardest level.\nReady to try \"%s\"?", name)
	case engine.SuggestPrevSkill:
		title = "Let's step back"
		name := ""
		if prev := p.nav.Prev(); prev != nil {
			name = prev.Name
		}
		body = fmt.Sprintf("This one is tricky.\nWant to revisit \"%s\" first?", name)
	case engine.SuggestMentor:
		title = "Ask for help"
		body = "This topic seems tough right now.\nConsider going through it with your mentor."
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width, theme.Title.Render(title)))
	b.WriteString("\n\n")
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(centered(width, theme.Body.Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if p.suggestion.Kind == engine.SuggestMentor {
		b.WriteString(centered(width, theme.Hint.Render("Press any key to continue")))
	} else {
		b.WriteString(centered(width, theme.Hint.Render("Y switch  ·  N stay")))
	}
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?")))
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Answered questions are already recorded.")))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Hint.Render("Y end  ·  N keep going")))
	return b.String()
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s)
}
