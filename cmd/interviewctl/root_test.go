package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akshtaaaaa/excel-mock-interviewer/internal/logbook"
)

var errTest = errors.New("model unavailable")

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCleanupMissingDirFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := runCommand(t, "cleanup", "--log-dir", missing)
	if err == nil {
		t.Fatal("expected an error for a missing log directory")
	}
}

func TestTokensAggregatesUsage(t *testing.T) {
	dir := t.TempDir()
	recorder := logbook.NewRecorder(dir)
	recorder.RecordAPICall("question", 100, 40, 200*time.Millisecond)
	recorder.RecordAPICall("evaluation", 80, 30, 150*time.Millisecond)
	recorder.RecordSummary("s1", "Asha", "beginner", 4.0, 4.0, 5, 0)

	out, err := runCommand(t, "tokens", "--log-dir", dir)
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}
	for _, want := range []string{"API calls:          2", "Total tokens:       250", "Sessions completed: 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLogsSummarizesToday(t *testing.T) {
	dir := t.TempDir()
	recorder := logbook.NewRecorder(dir)
	recorder.RecordAPICall("question", 10, 10, time.Millisecond)
	recorder.RecordError("question_generation", errTest)

	out, err := runCommand(t, "logs", "--log-dir", dir)
	if err != nil {
		t.Fatalf("logs failed: %v", err)
	}
	for _, want := range []string{"API calls:          1", "Errors:             1", "Errors found:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLogsEmptyDay(t *testing.T) {
	out, err := runCommand(t, "logs", "--log-dir", t.TempDir())
	if err != nil {
		t.Fatalf("logs failed: %v", err)
	}
	if !strings.Contains(out, "No log records found for today.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
