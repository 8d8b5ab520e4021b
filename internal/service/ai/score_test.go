package ai

import "testing"

func TestParseScore(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		want    int
		wantErr bool
	}{
		{name: "plain fraction", text: "Score: 4/5\nGood use of INDEX/MATCH.", want: 4},
		{name: "fraction with spaces", text: "I'd give this 3 / 5 overall.", want: 3},
		{name: "leading integer fallback", text: "2 - the answer misses pivot tables.", want: 2},
		{name: "zero", text: "Score: 0/5. No relevant content.", want: 0},
		{name: "full marks", text: "Score: 5/5", want: 5},
		{name: "non numeric", text: "Great effort, keep practicing!", wantErr: true},
		{name: "out of range fraction", text: "Score: 7/5", wantErr: true},
		{name: "negative integer", text: "-1 because the answer is wrong", wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseScore(tc.text)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got score %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScore: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestExtractQuestion(t *testing.T) {
	t.Run("single question passes through", func(t *testing.T) {
		in := "How would you combine INDEX and MATCH to replace VLOOKUP?"
		if got := ExtractQuestion(in); got != in {
			t.Fatalf("unexpected result: %q", got)
		}
	})

	t.Run("stops at second question", func(t *testing.T) {
		in := "Q1: What does SUMIF do?\nQ2: What about COUNTIF?"
		if got := ExtractQuestion(in); got != "Q1: What does SUMIF do?" {
			t.Fatalf("unexpected result: %q", got)
		}
	})

	t.Run("stops at evaluation section", func(t *testing.T) {
		in := "Explain conditional formatting.\nEvaluation: n/a"
		if got := ExtractQuestion(in); got != "Explain conditional formatting." {
			t.Fatalf("unexpected result: %q", got)
		}
	})

	t.Run("drops blank lines", func(t *testing.T) {
		in := "\n\nDescribe a pivot table.\n\n"
		if got := ExtractQuestion(in); got != "Describe a pivot table." {
			t.Fatalf("unexpected result: %q", got)
		}
	})
}
