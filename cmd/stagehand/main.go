package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/stagehand/internal/cli"
	"github.com/example/stagehand/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "stagehand",
		Short:   "stagehand - release staging for npm packages",
		Version: version.String(),
		Long: `stagehand stages npm packages for release: it resolves which CI workflow
run built the native artifacts for a version, installs them, and invokes
the package builder once per package.`,
	}

	rootCmd.AddCommand(cli.StageCmd())
	rootCmd.AddCommand(cli.ResolveCmd())
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
