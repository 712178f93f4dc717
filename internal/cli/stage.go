// Package cli contains the cobra command definitions.
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stagehand/internal/ports/primary"
	"github.com/example/stagehand/internal/wire"
)

// StageCmd returns the stage command, the main staging operation.
func StageCmd() *cobra.Command {
	var (
		releaseVersion  string
		packages        []string
		workflowURL     string
		outputDir       string
		keepStagingDirs bool
	)

	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Stage npm packages for release",
		Long: `Stage one or more npm packages for a release version.

Resolves the CI workflow run that built the native artifacts for the
version, installs them, and invokes the package builder once per package.
Packages without native components skip workflow resolution entirely.

Examples:
  stagehand stage --release-version 0.1.0 --package pkg-a
  stagehand stage --release-version 0.1.0 --package pkg-a --package pkg-b \
    --workflow-url https://github.com/acme/repo/actions/runs/123`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stager, err := wire.Stager()
			if err != nil {
				return err
			}

			result, err := stager.Stage(cmd.Context(), primary.StageRequest{
				Version:         releaseVersion,
				Packages:        packages,
				WorkflowURL:     workflowURL,
				OutputDir:       outputDir,
				KeepStagingDirs: keepStagingDirs,
			})
			if err != nil {
				return err
			}

			fmt.Println()
			if result.Resolution != nil {
				printResolution(result.Resolution)
			}
			for _, staged := range result.Packages {
				fmt.Printf("%s staged %s at %s\n",
					color.New(color.FgGreen).Sprint("✓"), staged.Package, staged.ArchivePath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&releaseVersion, "release-version", "", "Version to stage (e.g. 0.1.0 or 0.1.0-alpha.1)")
	cmd.Flags().StringArrayVar(&packages, "package", nil, "Package name to stage (repeatable)")
	cmd.Flags().StringVar(&workflowURL, "workflow-url", "", "Optional workflow URL to reuse for native artifacts")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory where npm tarballs are written (default: dist/npm)")
	cmd.Flags().BoolVar(&keepStagingDirs, "keep-staging-dirs", false, "Retain temporary staging directories instead of deleting them")
	cmd.MarkFlagRequired("release-version")
	cmd.MarkFlagRequired("package")

	return cmd
}

// printResolution shows which run was used and which policy tier matched so
// substring-fallback hits are visible to operators.
func printResolution(resolution *primary.Resolution) {
	switch resolution.Source {
	case primary.SourceOverride:
		fmt.Printf("workflow: %s (operator override)\n", resolution.URL)
	case primary.SourceFallback:
		fmt.Printf("workflow: %s %s\n", resolution.URL,
			color.New(color.FgYellow).Sprint("(fallback default)"))
	default:
		tier := color.New(color.FgGreen).Sprint(resolution.MatchTier)
		if resolution.MatchTier == "substring" {
			tier = color.New(color.FgYellow).Sprint(resolution.MatchTier)
		}
		fmt.Printf("workflow: %s (%s, branch %s, %s match)\n",
			resolution.URL, resolution.Workflow, resolution.Branch, tier)
	}
}
