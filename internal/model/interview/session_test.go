package interview

import (
	"errors"
	"testing"
)

func newTestSession(t *testing.T, maxTurns int) *Session {
	t.Helper()
	session, err := NewSession("session-1", "Asha", "intermediate", maxTurns)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return session
}

func TestNewSessionRejectsNonPositiveMaxTurns(t *testing.T) {
	for _, maxTurns := range []int{0, -1, -5} {
		if _, err := NewSession("id", "", "beginner", maxTurns); !errors.Is(err, ErrInvalidMaxTurns) {
			t.Fatalf("maxTurns=%d: expected ErrInvalidMaxTurns, got %v", maxTurns, err)
		}
	}
}

func TestTurnLifecycle(t *testing.T) {
	session := newTestSession(t, 2)

	turn, err := session.AppendTurn("What does VLOOKUP do?")
	if err != nil {
		t.Fatalf("AppendTurn: %v", err)
	}
	if turn.Index != 0 || turn.State != TurnOpen {
		t.Fatalf("unexpected turn after append: %+v", turn)
	}

	if _, err := session.AnswerTurn("It looks up a value in the first column."); err != nil {
		t.Fatalf("AnswerTurn: %v", err)
	}
	if _, err := session.CloseTurn(4, "Solid answer.", false); err != nil {
		t.Fatalf("CloseTurn: %v", err)
	}

	if session.Turns[0].State != TurnScored || session.Turns[0].Score != 4 {
		t.Fatalf("turn not finalized: %+v", session.Turns[0])
	}
}

func TestAnswerBeforeQuestionFails(t *testing.T) {
	session := newTestSession(t, 3)

	if _, err := session.AnswerTurn("premature"); !errors.Is(err, ErrNoOpenTurn) {
		t.Fatalf("expected ErrNoOpenTurn, got %v", err)
	}
}

func TestSingleOpenTurnInvariant(t *testing.T) {
	session := newTestSession(t, 3)

	if _, err := session.AppendTurn("Q1"); err != nil {
		t.Fatalf("AppendTurn: %v", err)
	}
	if _, err := session.AppendTurn("Q2"); !errors.Is(err, ErrTurnAlreadyOpen) {
		t.Fatalf("expected ErrTurnAlreadyOpen, got %v", err)
	}

	// Still open after answering: evaluation has not happened yet.
	if _, err := session.AnswerTurn("A1"); err != nil {
		t.Fatalf("AnswerTurn: %v", err)
	}
	if _, err := session.AppendTurn("Q2"); !errors.Is(err, ErrTurnAlreadyOpen) {
		t.Fatalf("expected ErrTurnAlreadyOpen for answered turn, got %v", err)
	}
}

func TestMaxTurnsBound(t *testing.T) {
	session := newTestSession(t, 1)

	if _, err := session.AppendTurn("Q1"); err != nil {
		t.Fatalf("AppendTurn: %v", err)
	}
	if _, err := session.AnswerTurn("A1"); err != nil {
		t.Fatalf("AnswerTurn: %v", err)
	}
	if _, err := session.CloseTurn(5, "Perfect.", false); err != nil {
		t.Fatalf("CloseTurn: %v", err)
	}

	if _, err := session.AppendTurn("Q2"); !errors.Is(err, ErrSessionComplete) {
		t.Fatalf("expected ErrSessionComplete, got %v", err)
	}
	if len(session.Turns) != 1 {
		t.Fatalf("turn count changed on rejected append: %d", len(session.Turns))
	}
	if !session.Complete() {
		t.Fatal("expected session to be complete")
	}
}

func TestCloseTurnValidatesScoreRange(t *testing.T) {
	session := newTestSession(t, 1)
	if _, err := session.AppendTurn("Q1"); err != nil {
		t.Fatalf("AppendTurn: %v", err)
	}
	if _, err := session.AnswerTurn("A1"); err != nil {
		t.Fatalf("AnswerTurn: %v", err)
	}

	for _, score := range []int{-1, 6, 42} {
		if _, err := session.CloseTurn(score, "bad", false); !errors.Is(err, ErrScoreOutOfRange) {
			t.Fatalf("score=%d: expected ErrScoreOutOfRange, got %v", score, err)
		}
	}

	// The turn must still be answerable after a rejected close.
	if _, err := session.CloseTurn(0, "ok", false); err != nil {
		t.Fatalf("CloseTurn after rejections: %v", err)
	}
}

func TestSkipTurn(t *testing.T) {
	session := newTestSession(t, 2)
	if _, err := session.AppendTurn("Q1"); err != nil {
		t.Fatalf("AppendTurn: %v", err)
	}

	turn, err := session.SkipTurn()
	if err != nil {
		t.Fatalf("SkipTurn: %v", err)
	}
	if !turn.Skipped || turn.Score != 0 || turn.State != TurnScored {
		t.Fatalf("unexpected skipped turn: %+v", turn)
	}

	// Skipping with no open turn is a contract violation.
	if _, err := session.SkipTurn(); !errors.Is(err, ErrNoOpenTurn) {
		t.Fatalf("expected ErrNoOpenTurn, got %v", err)
	}
}

func TestCompleteRequiresScoredLastTurn(t *testing.T) {
	session := newTestSession(t, 1)
	if _, err := session.AppendTurn("Q1"); err != nil {
		t.Fatalf("AppendTurn: %v", err)
	}
	if session.Complete() {
		t.Fatal("session with an open turn must not be complete")
	}
	if _, err := session.AnswerTurn("A1"); err != nil {
		t.Fatalf("AnswerTurn: %v", err)
	}
	if session.Complete() {
		t.Fatal("session with an answered turn must not be complete")
	}
}
