package interview

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akshtaaaaa/excel-mock-interviewer/internal/logbook"
	"github.com/akshtaaaaa/excel-mock-interviewer/internal/model/interview"
	"github.com/akshtaaaaa/excel-mock-interviewer/internal/model/track"
	"github.com/akshtaaaaa/excel-mock-interviewer/internal/service/ai"
)

// evaluationFailedFeedback is stored verbatim when the model's evaluation
// cannot be parsed; the summary and the UI look for this marker.
const evaluationFailedFeedback = "[evaluation failed] The answer could not be scored automatically; a default score of 0 was recorded."

// Service orchestrates interview turns: it asks the gateway for questions,
// records answers, requests evaluations and keeps per-session state. All
// session mutation happens under the registry lock; the gateway is never
// called while holding it.
type Service struct {
	mu         sync.RWMutex
	sessions   map[string]*interview.Session
	summarized map[string]bool

	tracks          track.Store
	generator       ai.Generator
	recorder        *logbook.Recorder
	defaultMaxTurns int
}

// NewService wires the controller.
func NewService(tracks track.Store, generator ai.Generator, recorder *logbook.Recorder, defaultMaxTurns int) *Service {
	return &Service{
		sessions:        make(map[string]*interview.Session),
		summarized:      make(map[string]bool),
		tracks:          tracks,
		generator:       generator,
		recorder:        recorder,
		defaultMaxTurns: defaultMaxTurns,
	}
}

// StartSession provisions a new interview. maxTurns zero means "use the
// configured default"; negative values are rejected.
func (s *Service) StartSession(candidateName, trackID string, maxTurns int) (interview.Session, error) {
	if _, ok := s.tracks.FindByID(trackID); !ok {
		return interview.Session{}, fmt.Errorf("%w: %q", ErrUnknownTrack, trackID)
	}
	if maxTurns == 0 {
		maxTurns = s.defaultMaxTurns
	}

	session, err := interview.NewSession(uuid.NewString(), candidateName, trackID, maxTurns)
	if err != nil {
		return interview.Session{}, err
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.recorder.RecordEvent("session_started", map[string]string{
		"session":   session.ID,
		"track":     trackID,
		"max_turns": fmt.Sprintf("%d", maxTurns),
	})
	log.Printf("[interview] session=%s started track=%s turns=%d", session.ID, trackID, maxTurns)
	return *cloneSession(session), nil
}

// GetSession returns a copy of the session state.
func (s *Service) GetSession(sessionID string) (interview.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return interview.Session{}, ErrSessionNotFound
	}
	return *cloneSession(session), nil
}

// NextQuestion asks the gateway for the next question and opens a turn with
// it. A gateway failure is retried exactly once; after that the session is
// left unchanged and a *GenerationError is returned.
func (s *Service) NextQuestion(ctx context.Context, sessionID string) (interview.Turn, error) {
	req, err := s.questionRequest(sessionID)
	if err != nil {
		return interview.Turn{}, err
	}

	question, err := s.generateQuestion(ctx, req)
	if err != nil {
		s.recorder.RecordError("question_generation", err)
		return interview.Turn{}, &GenerationError{Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return interview.Turn{}, ErrSessionNotFound
	}
	turn, err := session.AppendTurn(question)
	if err != nil {
		return interview.Turn{}, err
	}

	s.recorder.RecordEvent("question_asked", map[string]string{
		"session": sessionID,
		"index":   fmt.Sprintf("%d", turn.Index),
	})
	log.Printf("[interview] session=%s question %d/%d asked", sessionID, turn.Index+1, session.MaxTurns)
	return *turn, nil
}

// SubmitAnswer records the answer on the open turn and closes it with the
// gateway's evaluation. An unparsable score closes the turn with the
// documented zero-score fallback; a gateway failure after the retry leaves
// the turn answered and returns a *EvaluationError so the candidate can try
// again.
func (s *Service) SubmitAnswer(ctx context.Context, sessionID, answer string) (interview.Turn, error) {
	tr, question, err := s.recordAnswer(sessionID, answer)
	if err != nil {
		return interview.Turn{}, err
	}

	reply, err := s.generateWithRetry(ctx, "evaluation", ai.EvaluationRequest(tr, question, answer))
	if err != nil {
		s.recorder.RecordError("answer_evaluation", err)
		return interview.Turn{}, &EvaluationError{Err: err}
	}

	score, parseErr := ai.ParseScore(reply.Content)
	feedback := reply.Content
	evalFailed := false
	if parseErr != nil {
		s.recorder.RecordError("score_parsing", parseErr)
		score = 0
		feedback = evaluationFailedFeedback
		evalFailed = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return interview.Turn{}, ErrSessionNotFound
	}
	turn, err := session.CloseTurn(score, feedback, evalFailed)
	if err != nil {
		return interview.Turn{}, err
	}

	s.recorder.RecordEvent("turn_scored", map[string]string{
		"session": sessionID,
		"index":   fmt.Sprintf("%d", turn.Index),
		"score":   fmt.Sprintf("%d", turn.Score),
	})
	log.Printf("[interview] session=%s turn=%d scored=%d evalFailed=%t", sessionID, turn.Index, turn.Score, evalFailed)

	s.maybeRecordSummaryLocked(session)
	return *turn, nil
}

// SkipTurn closes the open turn without calling the gateway.
func (s *Service) SkipTurn(sessionID string) (interview.Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return interview.Turn{}, ErrSessionNotFound
	}

	turn, err := session.SkipTurn()
	if err != nil {
		return interview.Turn{}, err
	}

	s.recorder.RecordEvent("turn_skipped", map[string]string{
		"session": sessionID,
		"index":   fmt.Sprintf("%d", turn.Index),
	})
	log.Printf("[interview] session=%s turn=%d skipped", sessionID, turn.Index)

	s.maybeRecordSummaryLocked(session)
	return *turn, nil
}

// IsComplete reports whether the interview has finished.
func (s *Service) IsComplete(sessionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return false, ErrSessionNotFound
	}
	return session.Complete(), nil
}

// Tracks exposes the difficulty tracks for the HTTP layer.
func (s *Service) Tracks() []track.Track {
	return s.tracks.List()
}

// QuestionRequest builds the gateway request for the session's next
// question; the SSE handler uses it to stream generation.
func (s *Service) QuestionRequest(sessionID string) (ai.Request, error) {
	return s.questionRequest(sessionID)
}

// AcceptQuestion opens a turn with externally generated question text. The
// SSE handler calls this after a streamed generation finishes.
func (s *Service) AcceptQuestion(sessionID, question string) (interview.Turn, error) {
	question = ai.ExtractQuestion(question)
	if question == "" {
		return interview.Turn{}, interview.ErrEmptyQuestion
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return interview.Turn{}, ErrSessionNotFound
	}
	turn, err := session.AppendTurn(question)
	if err != nil {
		return interview.Turn{}, err
	}

	s.recorder.RecordEvent("question_asked", map[string]string{
		"session": sessionID,
		"index":   fmt.Sprintf("%d", turn.Index),
	})
	return *turn, nil
}

// questionRequest snapshots the prompt input without holding the lock
// during the gateway call.
func (s *Service) questionRequest(sessionID string) (ai.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return ai.Request{}, ErrSessionNotFound
	}
	if _, open := session.OpenTurn(); open {
		return ai.Request{}, interview.ErrTurnAlreadyOpen
	}
	if len(session.Turns) >= session.MaxTurns {
		return ai.Request{}, interview.ErrSessionComplete
	}

	tr, ok := s.tracks.FindByID(session.TrackID)
	if !ok {
		return ai.Request{}, fmt.Errorf("%w: %q", ErrUnknownTrack, session.TrackID)
	}
	return ai.QuestionRequest(tr, session.ScoredTurns()), nil
}

func (s *Service) recordAnswer(sessionID, answer string) (track.Track, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return track.Track{}, "", ErrSessionNotFound
	}

	turn, open := session.OpenTurn()
	if !open {
		return track.Track{}, "", interview.ErrNoOpenTurn
	}
	if turn.State == interview.TurnOpen {
		if _, err := session.AnswerTurn(answer); err != nil {
			return track.Track{}, "", err
		}
	}
	// An already answered turn means the previous evaluation failed; keep
	// the recorded answer and evaluate again.

	tr, ok := s.tracks.FindByID(session.TrackID)
	if !ok {
		return track.Track{}, "", fmt.Errorf("%w: %q", ErrUnknownTrack, session.TrackID)
	}
	return tr, turn.Question, nil
}

func (s *Service) generateQuestion(ctx context.Context, req ai.Request) (string, error) {
	reply, err := s.generateWithRetry(ctx, "question", req)
	if err != nil {
		return "", err
	}

	question := ai.ExtractQuestion(reply.Content)
	if question == "" {
		return "", fmt.Errorf("model returned empty question text")
	}
	return question, nil
}

// generateWithRetry calls the gateway, retrying exactly once on failure.
func (s *Service) generateWithRetry(ctx context.Context, call string, req ai.Request) (ai.Reply, error) {
	reply, err := s.generateOnce(ctx, call, req)
	if err == nil {
		return reply, nil
	}

	log.Printf("[interview] %s call failed, retrying once: %v", call, err)
	return s.generateOnce(ctx, call, req)
}

func (s *Service) generateOnce(ctx context.Context, call string, req ai.Request) (ai.Reply, error) {
	started := time.Now()
	reply, err := s.generator.Generate(ctx, req)
	if err != nil {
		return ai.Reply{}, err
	}

	s.recorder.RecordAPICall(call, reply.PromptTokens, reply.CompletionTokens, time.Since(started))
	return reply, nil
}

// maybeRecordSummaryLocked writes the summary record the first time the
// session reaches completion. Callers hold the write lock.
func (s *Service) maybeRecordSummaryLocked(session *interview.Session) {
	if !session.Complete() || s.summarized[session.ID] {
		return
	}
	s.summarized[session.ID] = true

	summary := buildSummary(session)
	s.recorder.RecordSummary(session.ID, session.CandidateName, session.TrackID,
		summary.MeanScore, summary.OverallScore, summary.Answered, summary.Skipped)
	log.Printf("[interview] session=%s completed mean=%.2f overall=%.2f", session.ID, summary.MeanScore, summary.OverallScore)
}

func cloneSession(session *interview.Session) *interview.Session {
	copied := *session
	copied.Turns = append([]interview.Turn(nil), session.Turns...)
	return &copied
}
