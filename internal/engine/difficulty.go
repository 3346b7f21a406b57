package engine

// Difficulty is a question difficulty level.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Valid reports whether d is one of the three known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// stepDown returns the level one below d. Easy stays Easy.
func stepDown(d Difficulty) Difficulty {
	switch d {
	case Hard:
		return Medium
	case Medium:
		return Easy
	}
	return Easy
}

// stepUp returns the level one above d. Hard stays Hard.
func stepUp(d Difficulty) Difficulty {
	switch d {
	case Easy:
		return Medium
	case Medium:
		return Hard
	}
	return Hard
}

// State is the mutable control state of the difficulty engine:
// the current level plus the two streak counters. The counters are
// mutually exclusive: a correct answer zeroes WrongStreak and an
// incorrect answer zeroes CorrectStreak.
type State struct {
	Difficulty    Difficulty
	CorrectStreak int
	WrongStreak   int
}

// NewState returns the starting state for a fresh session.
func NewState() State {
	return State{Difficulty: Easy}
}
