package engine

// PromoteStreak is the number of consecutive correct answers required to
// move up a level (or, at Hard, to suggest the next skill).
const PromoteStreak = 3

// EscalateStreak is the number of consecutive wrong answers at Easy that
// triggers a prev-skill or mentor suggestion. At Medium and Hard a single
// wrong answer steps the level down instead.
const EscalateStreak = 2

// SuggestionKind identifies what the engine is recommending.
type SuggestionKind string

const (
	SuggestNextSkill SuggestionKind = "next-skill"
	SuggestPrevSkill SuggestionKind = "prev-skill"
	SuggestMentor    SuggestionKind = "mentor-escalation"
)

// Suggestion is an engine-emitted recommendation to leave the current
// skill. The caller resolves the target skill from its navigation
// context and must pause automatic advancement until the learner
// accepts or dismisses it.
type Suggestion struct {
	Kind SuggestionKind
}

// Result is the outcome of one Transition call. The caller applies
// State and, if Suggestion is non-nil, interrupts the question flow.
type Result struct {
	State      State
	Suggestion *Suggestion
}

// Transition computes the next difficulty state after a graded answer.
// It is a pure function: no fetching, no session mutation.
//
// Promotion requires PromoteStreak consecutive correct answers; a single
// wrong answer at Medium or Hard demotes immediately. The asymmetry is
// deliberate: stepping a struggling learner down fast costs little, while
// promoting early produces frustration.
//
// hasNext and hasPrev gate which suggestions may be emitted: next-skill
// only when a next sibling skill exists, and the Easy escalation falls
// back to mentor-escalation when there is no previous skill to retreat
// to. Whenever a suggestion fires, the streak that triggered it is reset
// so a dismissal cannot re-trigger it on the very next question.
func Transition(s State, correct, hasNext, hasPrev bool) Result {
	if !s.Difficulty.Valid() {
		s.Difficulty = Easy
	}

	if correct {
		s.CorrectStreak++
		s.WrongStreak = 0

		if s.CorrectStreak < PromoteStreak {
			return Result{State: s}
		}
		s.CorrectStreak = 0

		if s.Difficulty == Hard {
			if hasNext {
				return Result{State: s, Suggestion: &Suggestion{Kind: SuggestNextSkill}}
			}
			// Nothing further to suggest; keep practicing at Hard.
			return Result{State: s}
		}

		s.Difficulty = stepUp(s.Difficulty)
		return Result{State: s}
	}

	s.WrongStreak++
	s.CorrectStreak = 0

	if s.Difficulty != Easy {
		// One miss is enough to step down at Medium and Hard.
		s.Difficulty = stepDown(s.Difficulty)
		s.WrongStreak = 0
		return Result{State: s}
	}

	if s.WrongStreak < EscalateStreak {
		return Result{State: s}
	}
	s.WrongStreak = 0

	kind := SuggestMentor
	if hasPrev {
		kind = SuggestPrevSkill
	}
	return Result{State: s, Suggestion: &Suggestion{Kind: kind}}
}
