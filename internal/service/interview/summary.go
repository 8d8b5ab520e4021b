package interview

import (
	"math"

	"github.com/akshtaaaaa/excel-mock-interviewer/internal/analysis/performance"
	"github.com/akshtaaaaa/excel-mock-interviewer/internal/model/interview"
)

// SummaryRow is one turn's final record.
type SummaryRow struct {
	Index      int    `json:"index"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
	Skipped    bool   `json:"skipped"`
	EvalFailed bool   `json:"evalFailed"`
}

// Summary aggregates a session. MeanScore averages answered (non-skipped)
// scored turns; OverallScore divides the same total by MaxTurns so skipped
// and unanswered questions count as zero. Both are rounded half away from
// zero to two decimals; an empty session yields 0.
type Summary struct {
	SessionID     string                `json:"sessionId"`
	CandidateName string                `json:"candidateName,omitempty"`
	TrackID       string                `json:"trackId"`
	MaxTurns      int                   `json:"maxTurns"`
	Answered      int                   `json:"answered"`
	Skipped       int                   `json:"skipped"`
	MeanScore     float64               `json:"meanScore"`
	OverallScore  float64               `json:"overallScore"`
	Complete      bool                  `json:"complete"`
	Breakdown     performance.Breakdown `json:"breakdown"`
	Assessment    string                `json:"assessment"`
	Rows          []SummaryRow          `json:"rows"`
}

// Summary computes the aggregate view of a session.
func (s *Service) Summary(sessionID string) (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return Summary{}, ErrSessionNotFound
	}
	return buildSummary(session), nil
}

func buildSummary(session *interview.Session) Summary {
	summary := Summary{
		SessionID:     session.ID,
		CandidateName: session.CandidateName,
		TrackID:       session.TrackID,
		MaxTurns:      session.MaxTurns,
		Complete:      session.Complete(),
		Rows:          make([]SummaryRow, 0, len(session.Turns)),
	}

	total := 0
	var answeredScores []int
	for _, turn := range session.ScoredTurns() {
		summary.Rows = append(summary.Rows, SummaryRow{
			Index:      turn.Index,
			Question:   turn.Question,
			Answer:     turn.Answer,
			Score:      turn.Score,
			Feedback:   turn.Feedback,
			Skipped:    turn.Skipped,
			EvalFailed: turn.EvalFailed,
		})

		if turn.Skipped {
			summary.Skipped++
			continue
		}
		summary.Answered++
		total += turn.Score
		answeredScores = append(answeredScores, turn.Score)
	}

	if summary.Answered > 0 {
		summary.MeanScore = round2(float64(total) / float64(summary.Answered))
	}
	if session.MaxTurns > 0 {
		summary.OverallScore = round2(float64(total) / float64(session.MaxTurns))
	}
	summary.Breakdown = performance.Analyze(answeredScores)
	summary.Assessment = performance.Assessment(session.TrackID, summary.OverallScore)
	return summary
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
