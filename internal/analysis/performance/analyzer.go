package performance

// Band labels a single 0-5 score.
type Band string

const (
	Excellent        Band = "excellent"
	Good             Band = "good"
	NeedsImprovement Band = "needs_improvement"
)

// Breakdown counts answered scores per band.
type Breakdown struct {
	Excellent        int `json:"excellent"`
	Good             int `json:"good"`
	NeedsImprovement int `json:"needsImprovement"`
}

// Classify maps one score to its band: 4-5 excellent, 2-3 good, 0-1 needs
// improvement.
func Classify(score int) Band {
	switch {
	case score >= 4:
		return Excellent
	case score >= 2:
		return Good
	default:
		return NeedsImprovement
	}
}

// Analyze buckets the answered scores.
func Analyze(scores []int) Breakdown {
	var b Breakdown
	for _, score := range scores {
		switch Classify(score) {
		case Excellent:
			b.Excellent++
		case Good:
			b.Good++
		default:
			b.NeedsImprovement++
		}
	}
	return b
}

// Assessment renders the difficulty-level verdict for the overall score.
func Assessment(trackID string, overall float64) string {
	switch trackID {
	case "beginner":
		switch {
		case overall >= 4:
			return "Excellent! You have strong fundamental Excel skills. Consider advancing to Intermediate level."
		case overall >= 2:
			return "Good progress! You understand basic Excel concepts. Practice more with formulas and formatting."
		default:
			return "Keep learning! Focus on basic Excel functions, formulas, and data entry."
		}
	case "advanced":
		switch {
		case overall >= 4:
			return "Exceptional! You have advanced Excel expertise. You're ready for complex business scenarios!"
		case overall >= 2:
			return "Strong skills! You handle advanced features well. Practice with complex case studies."
		default:
			return "Keep advancing! Focus on complex formulas, automation, and business problem-solving."
		}
	default:
		switch {
		case overall >= 4:
			return "Outstanding! You have solid intermediate Excel skills. Ready for Advanced challenges!"
		case overall >= 2:
			return "Good work! You're developing intermediate skills. Practice with pivot tables and data analysis."
		default:
			return "Keep practicing! Focus on intermediate formulas like VLOOKUP and data analysis features."
		}
	}
}
