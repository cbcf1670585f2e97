package question

// Difficulty is the declared difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the accepted difficulty values in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether the difficulty is one of the accepted values.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// Rank orders difficulties for asking. Unknown values rank as medium.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 2
	}
}

// Question is a single question/answer record.
type Question struct {
	ID          string     `json:"id" yaml:"id"`
	Text        string     `json:"text" yaml:"text"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Topic       string     `json:"topic" yaml:"topic"`
	IdealAnswer string     `json:"ideal_answer" yaml:"ideal_answer"`
}

// Filter selects records by exact field match. Empty fields match everything.
type Filter struct {
	Difficulty Difficulty
	Topic      string
}

func (f Filter) matches(q Question) bool {
	if f.Difficulty != "" && q.Difficulty != f.Difficulty {
		return false
	}
	if f.Topic != "" && q.Topic != f.Topic {
		return false
	}
	return true
}
