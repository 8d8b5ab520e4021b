package performance

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := map[int]Band{
		0: NeedsImprovement,
		1: NeedsImprovement,
		2: Good,
		3: Good,
		4: Excellent,
		5: Excellent,
	}
	for score, want := range cases {
		if got := Classify(score); got != want {
			t.Fatalf("score %d: expected %s, got %s", score, want, got)
		}
	}
}

func TestAnalyze(t *testing.T) {
	b := Analyze([]int{5, 4, 3, 2, 1, 0})
	if b.Excellent != 2 || b.Good != 2 || b.NeedsImprovement != 2 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}

	empty := Analyze(nil)
	if empty != (Breakdown{}) {
		t.Fatalf("expected zero breakdown, got %+v", empty)
	}
}

func TestAssessmentVariesWithTrackAndScore(t *testing.T) {
	if !strings.Contains(Assessment("beginner", 4.5), "Intermediate level") {
		t.Fatal("high beginner score should suggest moving up")
	}
	if !strings.Contains(Assessment("advanced", 1.0), "Keep advancing") {
		t.Fatal("low advanced score should encourage more practice")
	}
	// Unknown track falls back to the intermediate wording.
	if Assessment("unknown", 3) != Assessment("intermediate", 3) {
		t.Fatal("unknown track should use the intermediate assessment")
	}
}
