package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/example/stagehand/internal/config"
	"github.com/example/stagehand/internal/core/release"
)

// fakeCIProvider serves canned runs per workflow and records queries.
type fakeCIProvider struct {
	runs    map[string][]release.Run
	errs    map[string]error
	queried []string
}

func (f *fakeCIProvider) ListRuns(ctx context.Context, workflow string, limit int) ([]release.Run, error) {
	f.queried = append(f.queried, workflow)
	if err := f.errs[workflow]; err != nil {
		return nil, err
	}
	return f.runs[workflow], nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.DefaultWorkflowURL = ""
	return cfg
}

func TestResolverService_OverrideBypassesProvider(t *testing.T) {
	ci := &fakeCIProvider{}
	svc := NewResolverService(ci, testConfig(), &bytes.Buffer{})

	resolution, err := svc.Resolve(context.Background(), "1.2.3", "https://ci.example.com/override")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolution.URL != "https://ci.example.com/override" {
		t.Errorf("URL = %q", resolution.URL)
	}
	if resolution.CommitSHA != "" {
		t.Errorf("override should carry no commit hash, got %q", resolution.CommitSHA)
	}
	if resolution.Source != "override" {
		t.Errorf("Source = %q, want override", resolution.Source)
	}
	if len(ci.queried) != 0 {
		t.Errorf("override must not query the provider, queried %v", ci.queried)
	}
}

func TestResolverService_ResolvesFromPrimaryWorkflow(t *testing.T) {
	ci := &fakeCIProvider{
		runs: map[string][]release.Run{
			".github/workflows/rust-release.yml": {
				{Branch: "refs/heads/rust-v1.2.3", CommitSHA: "abc1234", URL: "https://ci.example.com/run/1"},
			},
		},
	}
	svc := NewResolverService(ci, testConfig(), &bytes.Buffer{})

	resolution, err := svc.Resolve(context.Background(), "1.2.3", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolution.URL != "https://ci.example.com/run/1" {
		t.Errorf("URL = %q", resolution.URL)
	}
	if resolution.CommitSHA != "abc1234" {
		t.Errorf("CommitSHA = %q", resolution.CommitSHA)
	}
	if resolution.Workflow != ".github/workflows/rust-release.yml" {
		t.Errorf("Workflow = %q", resolution.Workflow)
	}
	if resolution.MatchTier != "exact" {
		t.Errorf("MatchTier = %q, want exact", resolution.MatchTier)
	}
	if resolution.Source != "resolved" {
		t.Errorf("Source = %q, want resolved", resolution.Source)
	}
}

func TestResolverService_QueryFailureContinuesToNextWorkflow(t *testing.T) {
	ci := &fakeCIProvider{
		errs: map[string]error{
			".github/workflows/rust-release.yml": fmt.Errorf("gh exited 1"),
		},
		runs: map[string][]release.Run{
			".github/workflows/rust-nse.yml": {
				{Branch: "rust-nse-v1.2.3", URL: "https://ci.example.com/run/2"},
			},
		},
	}
	var log bytes.Buffer
	svc := NewResolverService(ci, testConfig(), &log)

	resolution, err := svc.Resolve(context.Background(), "1.2.3", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolution.URL != "https://ci.example.com/run/2" {
		t.Errorf("URL = %q, want the second workflow's run", resolution.URL)
	}
	if !bytes.Contains(log.Bytes(), []byte("rust-release.yml")) {
		t.Errorf("expected the failed query to be logged, got %q", log.String())
	}
}

func TestResolverService_DescriptorTemplatesProbedFirst(t *testing.T) {
	cfg := testConfig()
	cfg.Workflows = []config.WorkflowDescriptor{
		{Name: "wf.yml", Branches: []string{"hotfix-{version}"}},
	}
	// Both branches exact-match a candidate; the template-derived candidate
	// must win over the generic one.
	ci := &fakeCIProvider{
		runs: map[string][]release.Run{
			"wf.yml": {
				{Branch: "1.2.3", URL: "https://ci.example.com/generic"},
				{Branch: "hotfix-1.2.3", URL: "https://ci.example.com/template"},
			},
		},
	}
	svc := NewResolverService(ci, cfg, &bytes.Buffer{})

	resolution, err := svc.Resolve(context.Background(), "1.2.3", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolution.URL != "https://ci.example.com/template" {
		t.Errorf("URL = %q, want template-derived match", resolution.URL)
	}
}

func TestResolverService_ExhaustionNamesAllWorkflows(t *testing.T) {
	t.Setenv(config.EnvDefaultWorkflowURL, "")

	ci := &fakeCIProvider{}
	cfg := testConfig()
	svc := NewResolverService(ci, cfg, &bytes.Buffer{})

	_, err := svc.Resolve(context.Background(), "9.9.9", "")
	if err == nil {
		t.Fatal("expected resolution to fail")
	}

	var exhausted *CandidateExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected CandidateExhaustedError, got %T: %v", err, err)
	}
	if !reflect.DeepEqual(exhausted.Workflows, cfg.WorkflowNames()) {
		t.Errorf("Workflows = %v, want %v", exhausted.Workflows, cfg.WorkflowNames())
	}
	if len(ci.queried) != len(cfg.Workflows) {
		t.Errorf("expected every workflow queried, got %v", ci.queried)
	}
}

func TestResolverService_FallbackURL(t *testing.T) {
	t.Setenv(config.EnvDefaultWorkflowURL, "https://ci.example.com/fallback")

	ci := &fakeCIProvider{}
	var log bytes.Buffer
	svc := NewResolverService(ci, testConfig(), &log)

	resolution, err := svc.Resolve(context.Background(), "9.9.9", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolution.URL != "https://ci.example.com/fallback" {
		t.Errorf("URL = %q", resolution.URL)
	}
	if resolution.Source != "fallback" {
		t.Errorf("Source = %q, want fallback", resolution.Source)
	}
	if resolution.CommitSHA != "" {
		t.Errorf("fallback should carry no commit hash")
	}
}

func TestResolverService_EmptyVersionFailsWithoutQuerying(t *testing.T) {
	t.Setenv(config.EnvDefaultWorkflowURL, "")

	ci := &fakeCIProvider{}
	svc := NewResolverService(ci, testConfig(), &bytes.Buffer{})

	if _, err := svc.Resolve(context.Background(), "", ""); err == nil {
		t.Fatal("expected resolution to fail for empty version")
	}
	if len(ci.queried) != 0 {
		t.Errorf("empty version must not query the provider, queried %v", ci.queried)
	}
}
