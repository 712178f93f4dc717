// Package gh contains the GitHub CLI adapter implementation.
package gh

import (
	"context"

	"github.com/example/stagehand/internal/core/release"
	ghpkg "github.com/example/stagehand/internal/gh"
)

// Adapter implements secondary.CIProvider by wrapping the internal/gh
// package.
type Adapter struct {
	client *ghpkg.Client
}

// NewAdapter creates a new gh adapter.
func NewAdapter(client *ghpkg.Client) *Adapter {
	return &Adapter{client: client}
}

// ListRuns returns recent runs of the named workflow.
func (a *Adapter) ListRuns(ctx context.Context, workflow string, limit int) ([]release.Run, error) {
	return a.client.ListRuns(ctx, workflow, limit)
}
