package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Workflows) != 3 {
		t.Fatalf("expected 3 workflows, got %d", len(cfg.Workflows))
	}
	if cfg.Workflows[0].Name != ".github/workflows/rust-release.yml" {
		t.Errorf("primary workflow = %q", cfg.Workflows[0].Name)
	}
	if cfg.QueryLimit != 200 {
		t.Errorf("QueryLimit = %d, want 200", cfg.QueryLimit)
	}
	if cfg.OutputDir != "dist/npm" {
		t.Errorf("OutputDir = %q, want dist/npm", cfg.OutputDir)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.WorkflowNames(), Default().WorkflowNames()) {
		t.Errorf("missing config file should yield defaults, got %v", cfg.WorkflowNames())
	}
}

func TestLoad_Overlay(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".stagehand"), 0755); err != nil {
		t.Fatal(err)
	}
	content := `
native_components:
  pkg-a:
    - native-cli
default_workflow_url: https://ci.example.com/runs/42
query_limit: 50
`
	if err := os.WriteFile(filepath.Join(dir, ".stagehand", "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := cfg.ComponentsFor([]string{"pkg-a"}); !reflect.DeepEqual(got, []string{"native-cli"}) {
		t.Errorf("ComponentsFor = %v", got)
	}
	if cfg.DefaultWorkflowURL != "https://ci.example.com/runs/42" {
		t.Errorf("DefaultWorkflowURL = %q", cfg.DefaultWorkflowURL)
	}
	if cfg.QueryLimit != 50 {
		t.Errorf("QueryLimit = %d, want 50", cfg.QueryLimit)
	}
	// Workflows not in the overlay stay at defaults.
	if len(cfg.Workflows) != 3 {
		t.Errorf("expected default workflows preserved, got %d", len(cfg.Workflows))
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".stagehand"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".stagehand", "config.yaml"), []byte("workflows: {not: [valid"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestComponentsFor_UnionSortedDeduped(t *testing.T) {
	cfg := Default()
	cfg.NativeComponents = map[string][]string{
		"pkg-a": {"zeta", "alpha"},
		"pkg-b": {"alpha", "beta"},
	}

	got := cfg.ComponentsFor([]string{"pkg-a", "pkg-b", "pkg-unknown"})
	want := []string{"alpha", "beta", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComponentsFor = %v, want %v", got, want)
	}

	if got := cfg.ComponentsFor([]string{"pkg-unknown"}); len(got) != 0 {
		t.Errorf("unknown package should need no components, got %v", got)
	}
}

func TestFallbackWorkflowURL_EnvWins(t *testing.T) {
	cfg := Default()
	cfg.DefaultWorkflowURL = "https://ci.example.com/compiled"

	t.Setenv(EnvDefaultWorkflowURL, "https://ci.example.com/env")
	if got := cfg.FallbackWorkflowURL(); got != "https://ci.example.com/env" {
		t.Errorf("FallbackWorkflowURL = %q, want env override", got)
	}

	t.Setenv(EnvDefaultWorkflowURL, "")
	if got := cfg.FallbackWorkflowURL(); got != "https://ci.example.com/compiled" {
		t.Errorf("FallbackWorkflowURL = %q, want compiled default", got)
	}
}
