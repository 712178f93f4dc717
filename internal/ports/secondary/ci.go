// Package secondary defines the secondary ports (driven adapters) for the
// application.
package secondary

import (
	"context"

	"github.com/example/stagehand/internal/core/release"
)

// CIProvider defines the secondary port for querying the CI system for
// workflow runs. Queries are read-only.
type CIProvider interface {
	// ListRuns returns up to limit recent runs of the named workflow,
	// newest first.
	ListRuns(ctx context.Context, workflow string, limit int) ([]release.Run, error)
}
