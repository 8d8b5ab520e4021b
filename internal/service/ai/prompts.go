package ai

import (
	"fmt"
	"strings"

	"github.com/akshtaaaaa/excel-mock-interviewer/internal/model/interview"
	"github.com/akshtaaaaa/excel-mock-interviewer/internal/model/track"
)

// QuestionRequest builds the prompt for the next interview question. Prior
// turns become model history, most recent last, so the model avoids
// repeating itself.
func QuestionRequest(tr track.Track, prior []interview.Turn) Request {
	history := make([]Exchange, 0, len(prior))
	for _, turn := range prior {
		answer := turn.Answer
		if answer == "" {
			answer = "[no answer]"
		}
		history = append(history, Exchange{Question: turn.Question, Answer: answer})
	}

	query := "Ask the first Excel interview question."
	if len(history) > 0 {
		query = "Now ask the next Excel question."
	}

	return Request{
		System:  tr.SystemPrompt,
		History: history,
		Query:   query,
	}
}

// EvaluationRequest builds the scoring rubric prompt for one answer.
func EvaluationRequest(tr track.Track, question, answer string) Request {
	query := fmt.Sprintf(
		"Evaluate this Excel answer on a scale of 0-5 and provide brief feedback.\n\n"+
			"%s\n\nQuestion: %s\nAnswer: %s\n\n"+
			"Reply with \"Score: N/5\" on the first line, then the feedback.",
		tr.EvalContext, question, answer,
	)

	return Request{
		System: "You are a strict but fair Excel interview evaluator.",
		Query:  query,
	}
}

// ExtractQuestion keeps only the first question from the model output. The
// model is told to return a single question but occasionally appends a
// second one or an evaluation section anyway.
func ExtractQuestion(text string) string {
	var kept []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if hasSecondQuestionMarker(line) {
			break
		}
		if hasEvaluationMarker(line) {
			break
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func hasSecondQuestionMarker(line string) bool {
	for _, prefix := range []string{"Q2:", "Question 2:", "**Question 2:"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func hasEvaluationMarker(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range []string{"evaluation:", "feedback:", "score:", "mark:"} {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
