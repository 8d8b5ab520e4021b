package interview

import "time"

// TurnState tracks the lifecycle of a single question.
type TurnState string

const (
	// TurnOpen means the question was asked and no answer is recorded yet.
	TurnOpen TurnState = "open"
	// TurnAnswered means the answer is recorded and awaits evaluation.
	TurnAnswered TurnState = "answered"
	// TurnScored is terminal: score and feedback are final.
	TurnScored TurnState = "scored"
)

// Turn is one question/answer/score unit of an interview.
type Turn struct {
	Index      int       `json:"index"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer,omitempty"`
	Score      int       `json:"score"`
	Feedback   string    `json:"feedback,omitempty"`
	State      TurnState `json:"state"`
	Skipped    bool      `json:"skipped,omitempty"`
	EvalFailed bool      `json:"evalFailed,omitempty"`
	AskedAt    time.Time `json:"askedAt"`
	ScoredAt   time.Time `json:"scoredAt,omitzero"`
}
