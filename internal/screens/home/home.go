package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amehta/practik/internal/api"
	"github.com/amehta/practik/internal/config"
	"github.com/amehta/practik/internal/router"
	"github.com/amehta/practik/internal/screen"
	"github.com/amehta/practik/internal/screens/practice"
	"github.com/amehta/practik/internal/skills"
	"github.com/amehta/practik/internal/store"
	"github.com/amehta/practik/internal/ui/components"
	"github.com/amehta/practik/internal/ui/layout"
	"github.com/amehta/practik/internal/ui/theme"
)

// Deps bundles what the screens need to reach the outside world.
type Deps struct {
	Config config.Config
	API    *api.Client
	Store  *store.Store
}

// skillsLoadedMsg is sent when the skill catalog fetch completes.
type skillsLoadedMsg struct {
	Grade  string
	Skills []skills.Skill
	Err    error
}

// HomeScreen lists the skills of the selected grade and starts a
// practice run for the chosen one.
type HomeScreen struct {
	deps Deps

	grade   string
	skills  []skills.Skill
	menu    components.Menu
	loading bool
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen for the configured grade.
func New(deps Deps) *HomeScreen {
	return &HomeScreen{
		deps:    deps,
		grade:   deps.Config.Grade,
		loading: true,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadSkills(h.grade)
}

func (h *HomeScreen) Title() string {
	return "Choose a skill"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Practice"},
		{Key: "G", Description: "Switch grade"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) loadSkills(grade string) tea.Cmd {
	client := h.deps.API
	timeout := h.deps.Config.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		list, err := client.Skills(ctx, grade)
		return skillsLoadedMsg{Grade: grade, Skills: list, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case skillsLoadedMsg:
		if msg.Grade != h.grade {
			// A grade switch raced the fetch; keep the newer one.
			return h, nil
		}
		h.loading = false
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.errMsg = ""
		h.skills = msg.Skills
		h.menu = components.NewMenu(h.menuItems())
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "g", "G":
			h.grade = skills.OtherGrade(h.grade)
			h.loading = true
			h.errMsg = ""
			return h, h.loadSkills(h.grade)
		case "r", "R":
			if h.errMsg != "" {
				h.loading = true
				h.errMsg = ""
				return h, h.loadSkills(h.grade)
			}
		}
	}

	if h.loading || h.errMsg != "" {
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(h.skills)+1)
	for _, sk := range h.skills {
		sk := sk
		items = append(items, components.MenuItem{
			Label: sk.Name,
			Hint:  sk.TopicKey,
			Action: func() tea.Cmd {
				return h.startPractice(sk)
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Exit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})
	return items
}

// startPractice builds the sibling navigation context for the chosen
// skill and pushes the practice screen.
func (h *HomeScreen) startPractice(sk skills.Skill) tea.Cmd {
	var siblings []skills.Skill
	for _, s := range h.skills {
		if s.TopicKey == sk.TopicKey {
			siblings = append(siblings, s)
		}
	}
	nav := skills.NewNavContext(siblings, sk.ID)

	deps := h.deps
	grade := h.grade
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: practice.New(practice.Deps{
				Config: deps.Config,
				API:    deps.API,
				Store:  deps.Store,
				Grade:  grade,
				Nav:    nav,
			}),
		}
	}
}

func (h *HomeScreen) View(width, height int) string {
	var body string
	switch {
	case h.loading:
		body = theme.Hint.Render("Loading skills for grade " + h.grade + "...")
	case h.errMsg != "":
		body = theme.Incorrect.Render("Could not load skills: "+h.errMsg) + "\n\n" +
			theme.Hint.Render("Press R to retry.")
	case len(h.skills) == 0:
		body = theme.Hint.Render("No skills available for grade " + h.grade + ".")
	default:
		body = h.menu.View()
	}

	gradeLine := theme.Subtitle.Render(fmt.Sprintf("Grade: %s", h.grade))

	content := strings.Join([]string{gradeLine, "", body}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
