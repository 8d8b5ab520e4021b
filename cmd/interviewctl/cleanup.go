package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akshtaaaaa/excel-mock-interviewer/internal/logbook"
)

var retentionDays int

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete log files older than the retention window",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := os.Stat(logDir); err != nil {
			return fmt.Errorf("log directory not accessible: %w", err)
		}

		removed := logbook.NewRecorder(logDir).Cleanup(retentionDays)
		fmt.Fprintf(cmd.OutOrStdout(), "Cleanup complete: removed %d old log file(s)\n", removed)
		return nil
	},
}

func init() {
	cleanupCmd.Flags().IntVar(&retentionDays, "days", 7, "retention window in days")
}
