package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/akshtaaaaa/excel-mock-interviewer/internal/logbook"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show a summary of today's log records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reader := logbook.NewReader(logDir)
		now := time.Now()

		records, err := reader.DayRecords(now)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No log records found for today.")
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Today's log file: %s\n\n", reader.DayFile(now))

		counts := map[string]int{}
		var errRecords []logbook.Record
		for _, record := range records {
			counts[record.Kind]++
			if record.Kind == logbook.KindError {
				errRecords = append(errRecords, record)
			}
		}

		fmt.Fprintln(out, "Summary:")
		fmt.Fprintf(out, "  API calls:          %d\n", counts[logbook.KindAPICall])
		fmt.Fprintf(out, "  Events:             %d\n", counts[logbook.KindEvent])
		fmt.Fprintf(out, "  Sessions completed: %d\n", counts[logbook.KindSummary])
		fmt.Fprintf(out, "  Errors:             %d\n", counts[logbook.KindError])

		fmt.Fprintln(out, "\nRecent activity (last 10 records):")
		start := len(records) - 10
		if start < 0 {
			start = 0
		}
		for _, record := range records[start:] {
			fmt.Fprintf(out, "  %s  %-8s  %v\n", record.Timestamp.Format(time.RFC3339), record.Kind, record.Payload)
		}

		if len(errRecords) > 0 {
			fmt.Fprintln(out, "\nErrors found:")
			for _, record := range errRecords {
				fmt.Fprintf(out, "  %s  [%s] %s\n", record.Timestamp.Format(time.RFC3339),
					record.Payload["context"], record.Payload["message"])
			}
		}
		return nil
	},
}
