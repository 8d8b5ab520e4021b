package logbook

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Record is one parsed log line.
type Record struct {
	Timestamp time.Time
	Kind      string
	Payload   map[string]string
}

// Reader parses the daily files written by Recorder for the admin tool.
type Reader struct {
	dir string
}

// NewReader returns a reader over the given log directory.
func NewReader(dir string) *Reader {
	return &Reader{dir: dir}
}

// DayFile returns the path of the file for the given day.
func (r *Reader) DayFile(day time.Time) string {
	return filepath.Join(r.dir, filePrefix+day.UTC().Format(dayLayout)+fileSuffix)
}

// DayRecords parses every record of one day. A missing file yields an
// empty slice, not an error. Unparsable lines are skipped.
func (r *Reader) DayRecords(day time.Time) ([]Record, error) {
	file, err := os.Open(r.DayFile(day))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	var records []Record
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		record, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return records, nil
}

// TokenTotals aggregates API usage across every retained daily file.
type TokenTotals struct {
	Files            int
	Calls            int
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Sessions         int
}

// TokenTotals walks all daily files and sums api_call token counts plus
// completed-session summaries.
func (r *Reader) TokenTotals() (TokenTotals, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return TokenTotals{}, fmt.Errorf("read log dir: %w", err)
	}

	var totals TokenTotals
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		day, ok := fileDay(entry.Name())
		if !ok {
			continue
		}
		records, err := r.DayRecords(day)
		if err != nil {
			return TokenTotals{}, err
		}
		totals.Files++
		for _, record := range records {
			switch record.Kind {
			case KindAPICall:
				totals.Calls++
				totals.PromptTokens += payloadInt(record.Payload, "prompt_tokens")
				totals.CompletionTokens += payloadInt(record.Payload, "completion_tokens")
				totals.TotalTokens += payloadInt(record.Payload, "total_tokens")
			case KindSummary:
				totals.Sessions++
			}
		}
	}
	return totals, nil
}

func payloadInt(payload map[string]string, key string) int {
	value, err := strconv.Atoi(payload[key])
	if err != nil {
		return 0
	}
	return value
}

func parseLine(line string) (Record, bool) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) != 3 {
		return Record{}, false
	}

	timestamp, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return Record{}, false
	}

	return Record{
		Timestamp: timestamp,
		Kind:      parts[1],
		Payload:   parsePayload(parts[2]),
	}, true
}

// parsePayload decodes "k=v k2=v2" pairs; values with spaces are quoted by
// the recorder with strconv.Quote.
func parsePayload(raw string) map[string]string {
	payload := make(map[string]string)
	rest := raw
	for rest != "" {
		rest = strings.TrimLeft(rest, " ")
		if rest == "" {
			break
		}

		eq := strings.IndexByte(rest, '=')
		if eq < 0 {
			break
		}
		key := rest[:eq]
		rest = rest[eq+1:]

		var value string
		if strings.HasPrefix(rest, "\"") {
			quoted, err := strconv.QuotedPrefix(rest)
			if err != nil {
				break
			}
			value, _ = strconv.Unquote(quoted)
			rest = rest[len(quoted):]
		} else {
			end := strings.IndexByte(rest, ' ')
			if end < 0 {
				value, rest = rest, ""
			} else {
				value, rest = rest[:end], rest[end:]
			}
		}
		payload[key] = value
	}
	return payload
}
