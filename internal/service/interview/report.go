package interview

import (
	"fmt"
	"strings"
	"time"
)

// BuildReport renders the downloadable plain-text result sheet.
func BuildReport(summary Summary, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("Excel Interview Results\n")
	b.WriteString("========================\n\n")

	b.WriteString("INTERVIEW INFORMATION:\n")
	fmt.Fprintf(&b, "Candidate: %s\n", orNA(summary.CandidateName))
	fmt.Fprintf(&b, "Difficulty Level: %s\n", orNA(summary.TrackID))
	fmt.Fprintf(&b, "Questions: %d\n\n", summary.MaxTurns)

	b.WriteString("PERFORMANCE SUMMARY:\n")
	fmt.Fprintf(&b, "Overall Score: %.1f/5\n", summary.OverallScore)
	fmt.Fprintf(&b, "Mean Score (answered): %.2f/5\n", summary.MeanScore)
	fmt.Fprintf(&b, "Questions Answered: %d/%d\n", summary.Answered, summary.MaxTurns)
	fmt.Fprintf(&b, "Questions Skipped: %d/%d\n\n", summary.Skipped, summary.MaxTurns)

	b.WriteString("ASSESSMENT:\n")
	b.WriteString(summary.Assessment)
	b.WriteString("\n\n")

	b.WriteString("DETAILED RESULTS:\n")
	for _, row := range summary.Rows {
		if row.Skipped {
			fmt.Fprintf(&b, "\nQ%d: Skipped\nAnswer: [question skipped]\n---\n", row.Index+1)
			continue
		}
		fmt.Fprintf(&b, "\nQ%d: %d/5\nQuestion: %s\nAnswer: %s\n", row.Index+1, row.Score, row.Question, row.Answer)
		if row.EvalFailed {
			b.WriteString("Note: automatic evaluation failed, default score recorded\n")
		}
		b.WriteString("---\n")
	}

	b.WriteString("\nPerformance Breakdown:\n")
	fmt.Fprintf(&b, "- Excellent (4-5): %d/%d\n", summary.Breakdown.Excellent, summary.Answered)
	fmt.Fprintf(&b, "- Good (2-3): %d/%d\n", summary.Breakdown.Good, summary.Answered)
	fmt.Fprintf(&b, "- Needs Improvement (0-1): %d/%d\n", summary.Breakdown.NeedsImprovement, summary.Answered)
	fmt.Fprintf(&b, "- Skipped: %d/%d\n", summary.Skipped, summary.MaxTurns)

	fmt.Fprintf(&b, "\nGenerated on: %s\n", generatedAt.UTC().Format("2006-01-02 15:04:05"))
	return b.String()
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
