package engine

import "testing"

func TestTransition_PromoteEasyToMedium(t *testing.T) {
	s := NewState()

	for i := 0; i < 2; i++ {
		r := Transition(s, true, true, true)
		if r.Suggestion != nil {
			t.Fatalf("unexpected suggestion after %d correct", i+1)
		}
		if r.State.Difficulty != Easy {
			t.Fatalf("Difficulty = %s after %d correct, want Easy", r.State.Difficulty, i+1)
		}
		s = r.State
	}

	r := Transition(s, true, true, true)
	if r.State.Difficulty != Medium {
		t.Errorf("Difficulty = %s, want Medium", r.State.Difficulty)
	}
	if r.State.CorrectStreak != 0 {
		t.Errorf("CorrectStreak = %d, want 0 after promotion", r.State.CorrectStreak)
	}
	if r.Suggestion != nil {
		t.Error("promotion should not emit a suggestion")
	}
}

func TestTransition_PromoteMediumToHard(t *testing.T) {
	s := State{Difficulty: Medium, CorrectStreak: 2}

	r := Transition(s, true, true, true)
	if r.State.Difficulty != Hard {
		t.Errorf("Difficulty = %s, want Hard", r.State.Difficulty)
	}
	if r.State.CorrectStreak != 0 {
		t.Errorf("CorrectStreak = %d, want 0", r.State.CorrectStreak)
	}
}

func TestTransition_HardStreakSuggestsNextSkill(t *testing.T) {
	s := State{Difficulty: Hard, CorrectStreak: 2}

	r := Transition(s, true, true, false)
	if r.Suggestion == nil {
		t.Fatal("expected next-skill suggestion")
	}
	if r.Suggestion.Kind != SuggestNextSkill {
		t.Errorf("Kind = %s, want %s", r.Suggestion.Kind, SuggestNextSkill)
	}
	if r.State.Difficulty != Hard {
		t.Errorf("Difficulty = %s, want Hard", r.State.Difficulty)
	}
	if r.State.CorrectStreak != 0 {
		t.Errorf("CorrectStreak = %d, want 0", r.State.CorrectStreak)
	}
}

func TestTransition_HardStreakWithoutNextSkill(t *testing.T) {
	s := State{Difficulty: Hard, CorrectStreak: 2}

	r := Transition(s, true, false, true)
	if r.Suggestion != nil {
		t.Error("no next skill: expected silent streak reset, got suggestion")
	}
	if r.State.CorrectStreak != 0 {
		t.Errorf("CorrectStreak = %d, want 0 (silent reset)", r.State.CorrectStreak)
	}
	if r.State.Difficulty != Hard {
		t.Errorf("Difficulty = %s, want Hard", r.State.Difficulty)
	}
}

func TestTransition_DemotionIsImmediate(t *testing.T) {
	tests := []struct {
		name  string
		start State
		want  Difficulty
	}{
		{"hard drops to medium", State{Difficulty: Hard}, Medium},
		{"medium drops to easy", State{Difficulty: Medium}, Easy},
		{"hard with prior wrong streak", State{Difficulty: Hard, WrongStreak: 5}, Medium},
		{"hard mid correct streak", State{Difficulty: Hard, CorrectStreak: 2}, Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Transition(tt.start, false, true, true)
			if r.State.Difficulty != tt.want {
				t.Errorf("Difficulty = %s, want %s", r.State.Difficulty, tt.want)
			}
			if r.State.WrongStreak != 0 {
				t.Errorf("WrongStreak = %d, want 0 after demotion", r.State.WrongStreak)
			}
			if r.State.CorrectStreak != 0 {
				t.Errorf("CorrectStreak = %d, want 0", r.State.CorrectStreak)
			}
			if r.Suggestion != nil {
				t.Error("demotion should not emit a suggestion")
			}
		})
	}
}

func TestTransition_EasyEscalation(t *testing.T) {
	s := NewState()

	r := Transition(s, false, true, true)
	if r.Suggestion != nil {
		t.Fatal("one wrong at Easy should not suggest yet")
	}
	if r.State.WrongStreak != 1 {
		t.Fatalf("WrongStreak = %d, want 1", r.State.WrongStreak)
	}

	r = Transition(r.State, false, true, true)
	if r.Suggestion == nil {
		t.Fatal("two wrong at Easy should emit a suggestion")
	}
	if r.Suggestion.Kind != SuggestPrevSkill {
		t.Errorf("Kind = %s, want %s (prev skill exists)", r.Suggestion.Kind, SuggestPrevSkill)
	}
	if r.State.WrongStreak != 0 {
		t.Errorf("WrongStreak = %d, want 0 after suggestion", r.State.WrongStreak)
	}
	if r.State.Difficulty != Easy {
		t.Errorf("Difficulty = %s, want Easy", r.State.Difficulty)
	}
}

func TestTransition_EasyEscalationWithoutPrevSkill(t *testing.T) {
	s := State{Difficulty: Easy, WrongStreak: 1}

	r := Transition(s, false, true, false)
	if r.Suggestion == nil {
		t.Fatal("expected mentor escalation")
	}
	if r.Suggestion.Kind != SuggestMentor {
		t.Errorf("Kind = %s, want %s", r.Suggestion.Kind, SuggestMentor)
	}
}

func TestTransition_CorrectZeroesWrongStreak(t *testing.T) {
	s := State{Difficulty: Easy, WrongStreak: 1}

	r := Transition(s, true, true, true)
	if r.State.WrongStreak != 0 {
		t.Errorf("WrongStreak = %d, want 0", r.State.WrongStreak)
	}
	if r.State.CorrectStreak != 1 {
		t.Errorf("CorrectStreak = %d, want 1", r.State.CorrectStreak)
	}
}

// Walks the scenario from the design discussion end to end: three correct
// at Easy, one wrong at Medium, then two wrong at Easy with no previous
// skill available.
func TestTransition_FullScenario(t *testing.T) {
	s := NewState()

	for i := 0; i < 3; i++ {
		s = Transition(s, true, false, false).State
	}
	if s.Difficulty != Medium || s.CorrectStreak != 0 || s.WrongStreak != 0 {
		t.Fatalf("after 3 correct: %+v, want Medium/0/0", s)
	}

	s = Transition(s, false, false, false).State
	if s.Difficulty != Easy || s.CorrectStreak != 0 || s.WrongStreak != 0 {
		t.Fatalf("after demotion: %+v, want Easy/0/0", s)
	}

	s = Transition(s, false, false, false).State
	r := Transition(s, false, false, false)
	if r.Suggestion == nil || r.Suggestion.Kind != SuggestMentor {
		t.Fatalf("expected mentor escalation, got %+v", r.Suggestion)
	}
	if r.State.WrongStreak != 0 {
		t.Errorf("WrongStreak = %d, want 0", r.State.WrongStreak)
	}
}

func TestTransition_InvalidDifficultyNormalized(t *testing.T) {
	r := Transition(State{Difficulty: "bogus"}, true, false, false)
	if !r.State.Difficulty.Valid() {
		t.Errorf("Difficulty = %q, want a valid level", r.State.Difficulty)
	}
}
