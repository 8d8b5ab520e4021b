package main

import (
	"os"

	"github.com/spf13/cobra"
)

var logDir string

var rootCmd = &cobra.Command{
	Use:   "interviewctl",
	Short: "Admin tool for the Excel interviewer's activity logs",
	Long:  "interviewctl inspects and maintains the daily log files written by the interview backend.",
}

func init() {
	defaultDir := os.Getenv("LOG_DIR")
	if defaultDir == "" {
		defaultDir = "logs"
	}
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", defaultDir, "directory holding the daily log files")

	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(cleanupCmd)
}
