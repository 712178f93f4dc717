package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stagehand/internal/wire"
)

// HistoryCmd returns the history command listing past staging receipts.
func HistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past staging runs",
		Long: `List recorded staging runs: version, workflow URL, match tier, and the
archives produced. Useful for auditing which policy tier resolved each
release.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			receipts, err := wire.Receipts()
			if err != nil {
				return err
			}

			records, err := receipts.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No staging runs recorded yet.")
				return nil
			}

			for _, record := range records {
				header := fmt.Sprintf("%s  %s", record.CreatedAt, record.Version)
				fmt.Println(color.New(color.Bold).Sprint(header))
				if record.WorkflowURL != "" {
					fmt.Printf("  workflow: %s\n", record.WorkflowURL)
				}
				if record.MatchTier != "" {
					fmt.Printf("  matched:  %s", record.MatchTier)
					if record.Branch != "" {
						fmt.Printf(" (branch %s)", record.Branch)
					}
					fmt.Println()
				}
				if len(record.Archives) > 0 {
					fmt.Printf("  archives: %s\n", strings.Join(record.Archives, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")

	return cmd
}
