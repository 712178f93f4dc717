package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/stagehand/internal/db"
	"github.com/example/stagehand/internal/gh"
	"github.com/example/stagehand/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the staging environment",
		Long: `Environment health check for stagehand.

Validates:
- gh binary on PATH (workflow queries)
- Installer and builder scripts present
- Config file parses
- Receipt database reachable

Examples:
  stagehand doctor          # Run full health check
  stagehand doctor --quiet  # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkGH(),
				checkScripts(),
				checkConfig(),
				checkReceiptDB(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}
			}

			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "Exit code only, no output")

	return cmd
}

func checkGH() CheckResult {
	result := CheckResult{Name: "gh binary"}
	if gh.NewClient("").Available() {
		result.Status = "✓"
	} else {
		result.Status = "✗"
		result.Details = "gh not found on PATH; workflow resolution needs the GitHub CLI"
	}
	return result
}

func checkScripts() CheckResult {
	result := CheckResult{Name: "packaging scripts", Status: "✓"}

	cfg, err := wire.Config()
	if err != nil {
		result.Status = "✗"
		result.Details = err.Error()
		return result
	}

	for _, script := range []string{cfg.InstallerScript, cfg.BuilderScript} {
		if _, err := os.Stat(script); err != nil {
			result.Status = "⚠"
			result.Details += fmt.Sprintf("%s not found (run from the repository root?)\n", script)
		}
	}
	return result
}

func checkConfig() CheckResult {
	result := CheckResult{Name: "config"}
	if _, err := wire.Config(); err != nil {
		result.Status = "✗"
		result.Details = err.Error()
	} else {
		result.Status = "✓"
	}
	return result
}

func checkReceiptDB() CheckResult {
	result := CheckResult{Name: "receipt db"}
	if _, err := db.GetDB(); err != nil {
		result.Status = "⚠"
		result.Details = fmt.Sprintf("receipts disabled: %v", err)
	} else {
		result.Status = "✓"
	}
	return result
}
