package interview

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrTurnAlreadyOpen = errors.New("a turn is already awaiting an answer")
	ErrNoOpenTurn      = errors.New("no open turn to answer")
	ErrNoAnsweredTurn  = errors.New("no answered turn to score")
	ErrSessionComplete = errors.New("session already has its full set of turns")
	ErrEmptyQuestion   = errors.New("question text is empty")
	ErrScoreOutOfRange = errors.New("score must be between 0 and 5")
	ErrInvalidMaxTurns = errors.New("max turns must be positive")
)

// Session captures one interview run. All mutation goes through the guarded
// methods below so the controller cannot corrupt state even when it retries:
// at most one turn is ever open, indexes are monotonic, and the turn count
// never exceeds MaxTurns.
type Session struct {
	ID            string    `json:"id"`
	CandidateName string    `json:"candidateName,omitempty"`
	TrackID       string    `json:"trackId"`
	MaxTurns      int       `json:"maxTurns"`
	StartedAt     time.Time `json:"startedAt"`
	Turns         []Turn    `json:"turns"`
}

// NewSession validates the configuration and returns an empty session.
func NewSession(id, candidateName, trackID string, maxTurns int) (*Session, error) {
	if maxTurns <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidMaxTurns, maxTurns)
	}
	return &Session{
		ID:            id,
		CandidateName: candidateName,
		TrackID:       trackID,
		MaxTurns:      maxTurns,
		StartedAt:     time.Now().UTC(),
		Turns:         make([]Turn, 0, maxTurns),
	}, nil
}

// OpenTurn returns the turn currently awaiting an answer or evaluation.
func (s *Session) OpenTurn() (*Turn, bool) {
	if len(s.Turns) == 0 {
		return nil, false
	}
	last := &s.Turns[len(s.Turns)-1]
	if last.State == TurnScored {
		return nil, false
	}
	return last, true
}

// AppendTurn opens a new turn with the generated question.
func (s *Session) AppendTurn(question string) (*Turn, error) {
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	if _, ok := s.OpenTurn(); ok {
		return nil, ErrTurnAlreadyOpen
	}
	if len(s.Turns) >= s.MaxTurns {
		return nil, ErrSessionComplete
	}

	s.Turns = append(s.Turns, Turn{
		Index:    len(s.Turns),
		Question: question,
		State:    TurnOpen,
		AskedAt:  time.Now().UTC(),
	})
	return &s.Turns[len(s.Turns)-1], nil
}

// AnswerTurn records the candidate's answer on the open turn.
func (s *Session) AnswerTurn(answer string) (*Turn, error) {
	turn, ok := s.OpenTurn()
	if !ok || turn.State != TurnOpen {
		return nil, ErrNoOpenTurn
	}

	turn.Answer = answer
	turn.State = TurnAnswered
	return turn, nil
}

// CloseTurn finalizes the answered turn with its score and feedback.
func (s *Session) CloseTurn(score int, feedback string, evalFailed bool) (*Turn, error) {
	turn, ok := s.OpenTurn()
	if !ok || turn.State != TurnAnswered {
		return nil, ErrNoAnsweredTurn
	}
	if score < 0 || score > 5 {
		return nil, fmt.Errorf("%w, got %d", ErrScoreOutOfRange, score)
	}

	turn.Score = score
	turn.Feedback = feedback
	turn.EvalFailed = evalFailed
	turn.State = TurnScored
	turn.ScoredAt = time.Now().UTC()
	return turn, nil
}

// SkipTurn closes the open turn without an evaluation. The turn scores zero
// and is flagged so the summary can separate it from answered questions.
func (s *Session) SkipTurn() (*Turn, error) {
	turn, ok := s.OpenTurn()
	if !ok || turn.State != TurnOpen {
		return nil, ErrNoOpenTurn
	}

	turn.Answer = "[question skipped]"
	turn.Score = 0
	turn.Skipped = true
	turn.State = TurnScored
	turn.ScoredAt = time.Now().UTC()
	return turn, nil
}

// Complete reports whether the interview has run its full course.
func (s *Session) Complete() bool {
	if len(s.Turns) < s.MaxTurns {
		return false
	}
	return s.Turns[len(s.Turns)-1].State == TurnScored
}

// ScoredTurns returns the terminal turns in ask order.
func (s *Session) ScoredTurns() []Turn {
	scored := make([]Turn, 0, len(s.Turns))
	for _, turn := range s.Turns {
		if turn.State == TurnScored {
			scored = append(scored, turn)
		}
	}
	return scored
}
