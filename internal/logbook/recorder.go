// Package logbook appends one-line activity records to daily files so an
// offline admin tool can audit API usage, errors and session outcomes.
// Recording never fails the interview: write errors are swallowed and
// counted.
package logbook

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const (
	filePrefix = "excel_interview_"
	fileSuffix = ".log"
	dayLayout  = "20060102"
)

// Record kinds.
const (
	KindAPICall = "api_call"
	KindError   = "error"
	KindSummary = "summary"
	KindEvent   = "event"
)

// Recorder writes records to <dir>/excel_interview_YYYYMMDD.log. Every
// append opens the file with O_APPEND and writes a single line, which keeps
// concurrent sessions in separate processes from interleaving partial
// records.
type Recorder struct {
	dir     string
	dropped atomic.Int64
	now     func() time.Time
}

// NewRecorder creates the log directory if needed and returns a recorder.
// A directory that cannot be created is not fatal; subsequent appends will
// count as dropped.
func NewRecorder(dir string) *Recorder {
	_ = os.MkdirAll(dir, 0o755)
	return &Recorder{dir: dir, now: time.Now}
}

// RecordAPICall notes one gateway round trip.
func (r *Recorder) RecordAPICall(call string, promptTokens, completionTokens int, latency time.Duration) {
	r.append(KindAPICall, []field{
		{"call", call},
		{"prompt_tokens", strconv.Itoa(promptTokens)},
		{"completion_tokens", strconv.Itoa(completionTokens)},
		{"total_tokens", strconv.Itoa(promptTokens + completionTokens)},
		{"latency_ms", strconv.FormatInt(latency.Milliseconds(), 10)},
	})
}

// RecordError notes a failure with its context.
func (r *Recorder) RecordError(context string, err error) {
	message := ""
	if err != nil {
		message = err.Error()
	}
	r.append(KindError, []field{
		{"context", context},
		{"message", message},
	})
}

// RecordEvent notes a domain event such as a question being asked or a
// turn being skipped.
func (r *Recorder) RecordEvent(event string, fields map[string]string) {
	payload := []field{{"event", event}}
	for _, key := range sortedKeys(fields) {
		payload = append(payload, field{key, fields[key]})
	}
	r.append(KindEvent, payload)
}

// RecordSummary writes the final session aggregate. The controller calls it
// exactly once per completed session.
func (r *Recorder) RecordSummary(sessionID, candidate, trackID string, mean, overall float64, answered, skipped int) {
	r.append(KindSummary, []field{
		{"session", sessionID},
		{"candidate", candidate},
		{"track", trackID},
		{"mean_score", strconv.FormatFloat(mean, 'f', 2, 64)},
		{"overall_score", strconv.FormatFloat(overall, 'f', 2, 64)},
		{"answered", strconv.Itoa(answered)},
		{"skipped", strconv.Itoa(skipped)},
	})
}

// Dropped reports how many records could not be written.
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// Cleanup deletes daily files whose date is strictly older than
// retentionDays before today and returns the number of deletions. Files
// that cannot be inspected or removed are skipped.
func (r *Recorder) Cleanup(retentionDays int) int {
	if retentionDays < 0 {
		return 0
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return 0
	}

	cutoff := r.now().AddDate(0, 0, -retentionDays)
	cutoffDay := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, time.UTC)

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		day, ok := fileDay(entry.Name())
		if !ok {
			continue
		}
		if !day.Before(cutoffDay) {
			continue
		}
		if err := os.Remove(filepath.Join(r.dir, entry.Name())); err == nil {
			removed++
		}
	}
	return removed
}

type field struct {
	key   string
	value string
}

func (r *Recorder) append(kind string, payload []field) {
	now := r.now().UTC()

	var b strings.Builder
	b.WriteString(now.Format(time.RFC3339Nano))
	b.WriteByte('\t')
	b.WriteString(kind)
	b.WriteByte('\t')
	for i, f := range payload {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.key)
		b.WriteByte('=')
		b.WriteString(encodeValue(f.value))
	}
	b.WriteByte('\n')

	path := filepath.Join(r.dir, filePrefix+now.Format(dayLayout)+fileSuffix)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.dropped.Add(1)
		return
	}
	defer file.Close()

	if _, err := file.WriteString(b.String()); err != nil {
		r.dropped.Add(1)
	}
}

// encodeValue quotes values that would break the space-separated payload.
func encodeValue(value string) string {
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		return strconv.Quote(value)
	}
	return value
}

func fileDay(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return time.Time{}, false
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
	day, err := time.ParseInLocation(dayLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

func sortedKeys(fields map[string]string) []string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
