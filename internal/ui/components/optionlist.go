package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amehta/practik/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// OptionList is a selector over a question's answer options. Grading is
// done elsewhere against the canonical answer; the list only records
// which option was chosen and, once graded, colors the correct and the
// chosen lines.
type OptionList struct {
	Options []string
	Cursor  int

	graded       bool
	chosenIndex  int
	correctIndex int
}

// NewOptionList creates a list with the cursor on the first option.
func NewOptionList(options []string) OptionList {
	return OptionList{
		Options:      options,
		chosenIndex:  -1,
		correctIndex: -1,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Navigation stops once graded.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.graded {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}

	return o, nil
}

// Selected returns the option text under the cursor.
func (o OptionList) Selected() string {
	if o.Cursor < 0 || o.Cursor >= len(o.Options) {
		return ""
	}
	return o.Options[o.Cursor]
}

// Grade freezes the list, recording the chosen index and the index of
// the canonical answer (-1 if the answer is not among the options).
func (o *OptionList) Grade(correctIndex int) {
	o.graded = true
	o.chosenIndex = o.Cursor
	o.correctIndex = correctIndex
}

// Reset clears grading state for the next question.
func (o *OptionList) Reset(options []string) {
	o.Options = options
	o.Cursor = 0
	o.graded = false
	o.chosenIndex = -1
	o.correctIndex = -1
}

// View renders the option list.
func (o OptionList) View() string {
	var s string

	for i, opt := range o.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "  "
		if i == o.Cursor && !o.graded {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case o.graded && i == o.correctIndex:
			s += theme.Correct.Render(line) + "\n"
		case o.graded && i == o.chosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case o.graded:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Body.Render(line) + "\n"
		}
	}

	return s
}
