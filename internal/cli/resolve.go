package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stagehand/internal/wire"
)

// ResolveCmd returns the resolve command: workflow resolution without
// staging, for auditing the branch-matching heuristic.
func ResolveCmd() *cobra.Command {
	var releaseVersion string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the release workflow run for a version",
		Long: `Resolve which CI workflow run built the native artifacts for a version
without staging anything. Prints the run URL, commit, branch, and which
matching policy tier selected it (exact, suffix, or substring).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := wire.Resolver()
			if err != nil {
				return err
			}

			resolution, err := resolver.Resolve(cmd.Context(), releaseVersion, "")
			if err != nil {
				return err
			}

			fmt.Printf("url:      %s\n", resolution.URL)
			if resolution.CommitSHA != "" {
				fmt.Printf("commit:   %s\n", resolution.CommitSHA)
			}
			if resolution.Workflow != "" {
				fmt.Printf("workflow: %s\n", resolution.Workflow)
			}
			if resolution.Branch != "" {
				fmt.Printf("branch:   %s\n", resolution.Branch)
			}
			if resolution.MatchTier != "" {
				tier := resolution.MatchTier
				if tier == "substring" {
					tier = color.New(color.FgYellow).Sprintf("%s (verify this is the right run)", tier)
				}
				fmt.Printf("matched:  %s (candidate %s)\n", tier, resolution.Candidate)
			}
			fmt.Printf("source:   %s\n", resolution.Source)
			return nil
		},
	}

	cmd.Flags().StringVar(&releaseVersion, "release-version", "", "Version to resolve")
	cmd.MarkFlagRequired("release-version")

	return cmd
}
