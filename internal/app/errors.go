package app

import (
	"fmt"
	"strings"
)

// CandidateExhaustedError means no branch/workflow combination matched the
// version and no fallback workflow URL is configured. It is fatal: staging
// cannot proceed without artifacts.
type CandidateExhaustedError struct {
	Version   string
	Workflows []string
}

func (e *CandidateExhaustedError) Error() string {
	return fmt.Sprintf(
		"unable to find a release workflow run for version %s (tried workflows: %s) and no fallback workflow URL is configured",
		e.Version, strings.Join(e.Workflows, ", "),
	)
}
