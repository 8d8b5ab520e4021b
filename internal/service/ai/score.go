package ai

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	scoreFractionRe = regexp.MustCompile(`(\d+)\s*/\s*5`)
	integerTokenRe  = regexp.MustCompile(`-?\d+`)
)

// ParseScore extracts the 0-5 score from free-form evaluation text. It
// prefers an explicit "N/5" fraction and otherwise takes the first integer
// token. Anything outside [0,5] is an error; the caller decides the
// fallback, no clamping happens here.
func ParseScore(text string) (int, error) {
	var raw string
	if m := scoreFractionRe.FindStringSubmatch(text); m != nil {
		raw = m[1]
	} else if m := integerTokenRe.FindString(text); m != "" {
		raw = m
	} else {
		return 0, fmt.Errorf("no score found in evaluation text")
	}

	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid score token %q: %w", raw, err)
	}
	if score < 0 || score > 5 {
		return 0, fmt.Errorf("score %d out of range [0,5]", score)
	}
	return score, nil
}
