package practice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/amehta/practik/internal/api"
	"github.com/amehta/practik/internal/config"
	"github.com/amehta/practik/internal/engine"
	"github.com/amehta/practik/internal/question"
	"github.com/amehta/practik/internal/router"
	"github.com/amehta/practik/internal/screen"
	"github.com/amehta/practik/internal/screens/results"
	"github.com/amehta/practik/internal/session"
	"github.com/amehta/practik/internal/skills"
	"github.com/amehta/practik/internal/store"
	"github.com/amehta/practik/internal/ui/components"
	"github.com/amehta/practik/internal/ui/layout"
)

// Deps bundles what a practice run needs.
type Deps struct {
	Config config.Config
	API    *api.Client
	Store  *store.Store
	Grade  string
	Nav    *skills.NavContext
}

// PracticeScreen runs one practice session: it drives the difficulty
// state machine, fetches questions at the current level, grades
// answers and reports attempts. All remote calls run as commands; the
// screen itself only applies their results.
type PracticeScreen struct {
	deps Deps
	nav  *skills.NavContext

	// localID keys the local attempt log when no remote session id
	// exists, so a run's attempts and summary still correlate.
	localID string

	ctrl *session.Controller
	diff engine.State
	life *question.Lifecycle

	// seq numbers question fetches so that a reply arriving after a
	// skill switch or advancement cannot clobber the current question.
	seq int

	input components.AnswerInput
	opts  components.OptionList

	// pending holds a suggestion emitted at grading time; it becomes
	// the active modal when the learner advances past the feedback.
	pending    *engine.Suggestion
	suggestion *engine.Suggestion

	confirmQuit bool
	errMsg      string

	// byDiff counts graded answers per level for the results screen.
	byDiff map[engine.Difficulty]*results.DifficultyLine

	spinFrame int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.EscInterceptor = (*PracticeScreen)(nil)

// New creates a practice screen positioned on the navigation context's
// current skill.
func New(deps Deps) *PracticeScreen {
	ctx := session.Context{
		UserID: deps.Config.UserID,
		Grade:  deps.Grade,
	}
	if cur := deps.Nav.Current(); cur != nil {
		ctx.SkillID = cur.ID
	}

	return &PracticeScreen{
		deps:    deps,
		nav:     deps.Nav,
		localID: uuid.New().String(),
		ctrl:    session.NewController(ctx),
		diff:    engine.NewState(),
		byDiff:  make(map[engine.Difficulty]*results.DifficultyLine),
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	if err := p.ctrl.Begin(); err != nil {
		// Re-used screen instance; nothing to start.
		return nil
	}
	return tea.Batch(
		p.createSession(),
		p.fetchQuestion(),
		tickCmd(),
		spinCmd(),
	)
}

func (p *PracticeScreen) Title() string {
	if cur := p.nav.Current(); cur != nil {
		return cur.Name
	}
	return "Practice"
}

// InterceptEsc keeps Esc inside the screen while a run is live so it
// can show the quit confirmation instead of popping.
func (p *PracticeScreen) InterceptEsc() bool {
	return p.errMsg == ""
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case p.suggestion != nil:
		if p.suggestion.Kind == engine.SuggestMentor {
			return []layout.KeyHint{
				{Key: "any key", Description: "Continue"},
			}
		}
		return []layout.KeyHint{
			{Key: "Y", Description: "Switch"},
			{Key: "N", Description: "Stay"},
		}
	case p.life != nil && p.life.Phase() == question.Graded:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "E", Description: "Explanation"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.Err != nil {
			fmt.Fprintln(os.Stderr, "session create failed:", msg.Err)
		}
		p.ctrl.Started(msg.SessionID)
		return p, nil

	case questionReadyMsg:
		return p.handleQuestionReady(msg)

	case attemptSavedMsg:
		if msg.Err != nil {
			fmt.Fprintln(os.Stderr, "attempt report failed:", msg.Err)
		}
		return p, nil

	case finishSavedMsg:
		if msg.Err != nil {
			fmt.Fprintln(os.Stderr, "session report failed:", msg.Err)
		}
		return p, nil

	case timerTickMsg:
		if p.ctrl.Phase() == session.Completed {
			return p, nil
		}
		p.ctrl.Clock().Tick(time.Second)
		return p, tickCmd()

	case spinnerTickMsg:
		if p.life != nil || p.errMsg != "" {
			// Not loading; stop the animation until the next fetch.
			return p, nil
		}
		p.spinFrame++
		return p, spinCmd()

	case tea.FocusMsg:
		p.ctrl.Clock().Focus()
		return p, nil

	case tea.BlurMsg:
		p.ctrl.Clock().Blur()
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	// Anything else goes to the free-text input while answering.
	if p.answering() && p.life.Question().FreeText() {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	return p, nil
}

// answering reports whether the learner is on an ungraded question
// with no modal in the way.
func (p *PracticeScreen) answering() bool {
	return p.life != nil &&
		p.life.Phase() == question.Unanswered &&
		p.suggestion == nil &&
		!p.confirmQuit &&
		p.errMsg == ""
}

func (p *PracticeScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != p.seq {
		// Stale reply from before a skill switch or re-fetch.
		return p, nil
	}

	if msg.Err != nil {
		if errors.Is(msg.Err, api.ErrNoQuestions) {
			p.errMsg = "No questions available for this skill."
		} else {
			p.errMsg = msg.Err.Error()
		}
		return p, nil
	}

	p.life = question.NewLifecycle(msg.Question)
	p.ctrl.Clock().StartQuestion()

	if msg.Question.FreeText() {
		p.input = components.NewAnswerInput("Type your answer...", 40)
		return p, p.input.Init()
	}
	p.opts = components.NewOptionList(msg.Question.Options)
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.errMsg != "" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if p.confirmQuit {
		switch key {
		case "y", "Y":
			p.confirmQuit = false
			return p, p.finishRun()
		case "n", "N", "esc":
			p.confirmQuit = false
		}
		return p, nil
	}

	if p.suggestion != nil {
		return p.handleSuggestionKey(key)
	}

	if p.life == nil {
		if key == "esc" {
			p.confirmQuit = true
		}
		return p, nil
	}

	switch p.life.Phase() {
	case question.Unanswered:
		return p.handleAnswerKey(msg)
	case question.Graded:
		return p.handleFeedbackKey(key)
	}

	return p, nil
}

func (p *PracticeScreen) handleAnswerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc":
		p.confirmQuit = true
		return p, nil
	case "enter":
		return p, p.submitAnswer()
	}

	q := p.life.Question()
	if q.FreeText() {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	// Option shortcuts: 1-4 pick and submit immediately.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(q.Options) {
			p.opts.Cursor = idx
			return p, p.submitAnswer()
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.opts, cmd = p.opts.Update(msg)
	return p, cmd
}

func (p *PracticeScreen) handleFeedbackKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		p.confirmQuit = true
		return p, nil
	case "e", "E":
		p.life.ToggleExplanation()
		return p, nil
	case "enter":
		if err := p.life.Advance(); err != nil {
			return p, nil
		}
		if p.pending != nil {
			p.suggestion = p.pending
			p.pending = nil
			return p, nil
		}
		return p, p.proceed()
	}
	return p, nil
}

func (p *PracticeScreen) handleSuggestionKey(key string) (screen.Screen, tea.Cmd) {
	if p.suggestion.Kind == engine.SuggestMentor {
		// Informational only; any key continues on the same skill.
		p.suggestion = nil
		return p, p.proceed()
	}

	switch key {
	case "y", "Y", "enter":
		return p, p.acceptSuggestion()
	case "n", "N", "esc":
		p.suggestion = nil
		return p, p.proceed()
	}
	return p, nil
}

// submitAnswer grades the current answer, folds the outcome into the
// session and the difficulty state, and reports the attempt.
func (p *PracticeScreen) submitAnswer() tea.Cmd {
	q := p.life.Question()

	var answer string
	if q.FreeText() {
		answer = p.input.Value()
		if answer == "" {
			return nil
		}
	} else {
		answer = p.opts.Selected()
	}

	att, err := p.life.Submit(answer, p.ctrl.Clock().QuestionElapsed())
	if err != nil {
		return nil
	}

	p.ctrl.RecordOutcome(att.Correct)

	line := p.byDiff[att.Difficulty]
	if line == nil {
		line = &results.DifficultyLine{Level: att.Difficulty}
		p.byDiff[att.Difficulty] = line
	}
	line.Total++
	if att.Correct {
		line.Correct++
	}

	res := engine.Transition(p.diff, att.Correct, p.nav.HasNext(), p.nav.HasPrev())
	p.diff = res.State
	p.pending = res.Suggestion

	if q.FreeText() {
		p.input.Grade(att.Correct)
	} else {
		p.opts.Grade(correctOptionIndex(q))
	}

	return p.reportAttempt(att)
}

// correctOptionIndex finds which option matches the canonical answer.
func correctOptionIndex(q *question.Question) int {
	for i, opt := range q.Options {
		if question.Grade(opt, q.Answer) {
			return i
		}
	}
	return -1
}

// proceed moves to the next question, or ends the run when the
// question budget is spent.
func (p *PracticeScreen) proceed() tea.Cmd {
	if p.ctrl.BudgetExhausted() {
		return p.finishRun()
	}
	p.life = nil
	return tea.Batch(p.fetchQuestion(), spinCmd())
}

// acceptSuggestion switches to the suggested sibling skill and resets
// the difficulty state for it.
func (p *PracticeScreen) acceptSuggestion() tea.Cmd {
	switch p.suggestion.Kind {
	case engine.SuggestNextSkill:
		p.nav = p.nav.MoveNext()
	case engine.SuggestPrevSkill:
		p.nav = p.nav.MovePrev()
	}
	p.suggestion = nil
	p.diff = engine.NewState()
	return p.proceed()
}

// finishRun finalizes the session once and replaces this screen with
// the results. Remote finish and report calls are fire-and-forget.
func (p *PracticeScreen) finishRun() tea.Cmd {
	sum, ok := p.ctrl.Finish()
	if !ok {
		return nil
	}

	breakdown := p.breakdown()
	hint := p.nextHint(sum)
	cmds := []tea.Cmd{
		func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(sum, breakdown, hint)}
		},
	}
	if p.deps.Store != nil {
		cmds = append(cmds, p.saveSummary(sum))
	}
	if p.ctrl.CanReport() {
		cmds = append(cmds, p.reportFinish(sum))
	}
	return tea.Batch(cmds...)
}

// breakdown flattens the per-level tallies in level order.
func (p *PracticeScreen) breakdown() []results.DifficultyLine {
	var lines []results.DifficultyLine
	for _, level := range []engine.Difficulty{engine.Easy, engine.Medium, engine.Hard} {
		if line := p.byDiff[level]; line != nil {
			lines = append(lines, *line)
		}
	}
	return lines
}

// nextHint proposes what to practice next based on the score.
func (p *PracticeScreen) nextHint(sum *session.Summary) string {
	switch {
	case sum.Total == 0:
		return ""
	case sum.ScorePercent() >= 80 && p.nav.HasNext():
		return fmt.Sprintf("Next up: %s", p.nav.Next().Name)
	case sum.ScorePercent() < 50 && p.nav.HasPrev():
		return fmt.Sprintf("Worth revisiting: %s", p.nav.Prev().Name)
	}
	return ""
}

func (p *PracticeScreen) createSession() tea.Cmd {
	client := p.deps.API
	sctx := p.ctrl.Ctx()
	timeout := p.deps.Config.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		id, err := client.CreateSession(ctx, sctx.UserID, sctx.SkillID)
		return sessionStartedMsg{SessionID: id, Err: err}
	}
}

func (p *PracticeScreen) fetchQuestion() tea.Cmd {
	p.seq++

	seq := p.seq
	client := p.deps.API
	timeout := p.deps.Config.RequestTimeout
	difficulty := p.diff.Difficulty

	var skillID string
	if cur := p.nav.Current(); cur != nil {
		skillID = cur.ID
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		qs, err := client.QuestionsBySkill(ctx, skillID, 1, difficulty)
		if err != nil {
			return questionReadyMsg{Seq: seq, Err: err}
		}
		return questionReadyMsg{Seq: seq, Question: qs[0]}
	}
}

func (p *PracticeScreen) reportAttempt(att *question.Attempt) tea.Cmd {
	client := p.deps.API
	st := p.deps.Store
	sctx := p.ctrl.Ctx()
	sessionID := p.ctrl.SessionID()
	localID := sessionID
	if localID == "" {
		localID = p.localID
	}
	canReport := p.ctrl.CanReport()
	timeout := p.deps.Config.RequestTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if st != nil {
			if err := st.AppendAttempt(ctx, localID, att); err != nil {
				fmt.Fprintln(os.Stderr, "local attempt log failed:", err)
			}
		}
		if !canReport {
			return attemptSavedMsg{}
		}
		err := client.RecordAttempt(ctx, api.NewAttemptPayload(sctx.UserID, sessionID, att))
		return attemptSavedMsg{Err: err}
	}
}

func (p *PracticeScreen) saveSummary(sum *session.Summary) tea.Cmd {
	st := p.deps.Store
	localID := p.localID
	timeout := p.deps.Config.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := st.SaveSummary(ctx, localID, sum); err != nil {
			fmt.Fprintln(os.Stderr, "local summary save failed:", err)
		}
		return nil
	}
}

func (p *PracticeScreen) reportFinish(sum *session.Summary) tea.Cmd {
	client := p.deps.API
	timeout := p.deps.Config.RequestTimeout

	var skillName string
	if cur := p.nav.Current(); cur != nil {
		skillName = cur.Name
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := client.FinishSession(ctx, sum.SessionID); err != nil {
			return finishSavedMsg{Err: err}
		}

		err := client.CreateReport(ctx, api.ReportPayload{
			Title:  fmt.Sprintf("Practice: %s", skillName),
			Type:   "practice-session",
			Score:  sum.ScorePercent(),
			UserID: sum.UserID,
			Parameters: map[string]string{
				"skill_id": sum.SkillID,
				"grade":    sum.Grade,
				"correct":  fmt.Sprintf("%d", sum.Correct),
				"total":    fmt.Sprintf("%d", sum.Total),
			},
		})
		return finishSavedMsg{Err: err}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// spinCmd drives the fetch spinner animation.
func spinCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
