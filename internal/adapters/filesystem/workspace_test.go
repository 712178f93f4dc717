package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/stagehand/internal/config"
)

func TestWorkspaceAdapter_CreateAndRemove(t *testing.T) {
	root := t.TempDir()
	adapter := NewWorkspaceAdapter(root)

	dir, err := adapter.CreateStagingDir("npm-stage-pkg-a-")
	if err != nil {
		t.Fatalf("CreateStagingDir failed: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(dir), "npm-stage-pkg-a-") {
		t.Errorf("dir %q missing prefix", dir)
	}
	if filepath.Dir(dir) != root {
		t.Errorf("dir %q not under root %q", dir, root)
	}

	adapter.RemoveStagingDir(dir)
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("expected %q to be removed", dir)
	}

	// Removing a missing or empty path is a no-op.
	adapter.RemoveStagingDir(dir)
	adapter.RemoveStagingDir("")
}

func TestWorkspaceAdapter_UniqueDirs(t *testing.T) {
	adapter := NewWorkspaceAdapter(t.TempDir())

	first, err := adapter.CreateStagingDir("npm-native-")
	if err != nil {
		t.Fatal(err)
	}
	second, err := adapter.CreateStagingDir("npm-native-")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("expected distinct staging dirs, both %q", first)
	}
}

func TestWorkspaceAdapter_RunnerTempRoot(t *testing.T) {
	runnerTemp := t.TempDir()
	t.Setenv(config.EnvRunnerTemp, runnerTemp)

	adapter := NewWorkspaceAdapter("")
	if adapter.TempRoot() != runnerTemp {
		t.Errorf("TempRoot = %q, want $RUNNER_TEMP %q", adapter.TempRoot(), runnerTemp)
	}
}
