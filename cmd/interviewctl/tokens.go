package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akshtaaaaa/excel-mock-interviewer/internal/logbook"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Aggregate token usage across all retained log files",
	RunE: func(cmd *cobra.Command, _ []string) error {
		totals, err := logbook.NewReader(logDir).TokenTotals()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Token usage analysis")
		fmt.Fprintf(out, "  Log files:          %d\n", totals.Files)
		fmt.Fprintf(out, "  Sessions completed: %d\n", totals.Sessions)
		fmt.Fprintf(out, "  API calls:          %d\n", totals.Calls)
		fmt.Fprintf(out, "  Prompt tokens:      %d\n", totals.PromptTokens)
		fmt.Fprintf(out, "  Completion tokens:  %d\n", totals.CompletionTokens)
		fmt.Fprintf(out, "  Total tokens:       %d\n", totals.TotalTokens)

		if totals.Sessions > 0 {
			fmt.Fprintf(out, "  Avg tokens/session: %.0f\n", float64(totals.TotalTokens)/float64(totals.Sessions))
			fmt.Fprintf(out, "  Avg calls/session:  %.1f\n", float64(totals.Calls)/float64(totals.Sessions))
		}
		return nil
	},
}
