// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"fmt"
	"os"

	"github.com/example/stagehand/internal/config"
)

// WorkspaceAdapter implements secondary.StagingWorkspace with temp
// directories under the runner temp root.
type WorkspaceAdapter struct {
	tempRoot string
}

// NewWorkspaceAdapter creates a workspace adapter. If tempRoot is empty it
// defaults to $RUNNER_TEMP, then the OS temp directory.
func NewWorkspaceAdapter(tempRoot string) *WorkspaceAdapter {
	if tempRoot == "" {
		tempRoot = os.Getenv(config.EnvRunnerTemp)
	}
	if tempRoot == "" {
		tempRoot = os.TempDir()
	}
	return &WorkspaceAdapter{tempRoot: tempRoot}
}

// CreateStagingDir creates a fresh temp directory under the temp root.
func (a *WorkspaceAdapter) CreateStagingDir(prefix string) (string, error) {
	dir, err := os.MkdirTemp(a.tempRoot, prefix+"*")
	if err != nil {
		return "", fmt.Errorf("failed to create staging dir: %w", err)
	}
	return dir, nil
}

// RemoveStagingDir deletes a staging directory, ignoring errors.
func (a *WorkspaceAdapter) RemoveStagingDir(path string) {
	if path == "" {
		return
	}
	_ = os.RemoveAll(path)
}

// TempRoot returns the root under which staging dirs are created.
func (a *WorkspaceAdapter) TempRoot() string {
	return a.tempRoot
}
