package interview

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownTrack    = errors.New("unknown difficulty track")
)

// GenerationError reports that question generation failed even after the
// single retry. The session is left untouched.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "question generation failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// EvaluationError reports that the gateway could not evaluate an answer
// after the single retry. The turn stays answered so the candidate can
// trigger another attempt.
type EvaluationError struct {
	Err error
}

func (e *EvaluationError) Error() string {
	return "answer evaluation failed: " + e.Err.Error()
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
