package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/example/stagehand/internal/config"
	"github.com/example/stagehand/internal/core/release"
	"github.com/example/stagehand/internal/ports/primary"
	"github.com/example/stagehand/internal/ports/secondary"
)

// defaultQueryTimeout bounds a single provider query. The gh CLI has no
// timeout of its own, and a hung query must not stall the whole search.
const defaultQueryTimeout = 60 * time.Second

// ResolverService implements primary.WorkflowResolver: it probes the
// configured workflows in order and selects the first run matching the
// candidate branch policy.
type ResolverService struct {
	ci           secondary.CIProvider
	cfg          *config.Config
	out          io.Writer
	queryTimeout time.Duration
}

// NewResolverService creates a new ResolverService. Diagnostics are written
// to out (os.Stderr when nil).
func NewResolverService(ci secondary.CIProvider, cfg *config.Config, out io.Writer) *ResolverService {
	if out == nil {
		out = os.Stderr
	}
	return &ResolverService{
		ci:           ci,
		cfg:          cfg,
		out:          out,
		queryTimeout: defaultQueryTimeout,
	}
}

// Resolve returns the workflow URL for version. A non-empty override is
// returned immediately without querying the provider: the operator assumes
// responsibility for its correctness, so no commit hash is reported.
func (s *ResolverService) Resolve(ctx context.Context, version, override string) (*primary.Resolution, error) {
	if override != "" {
		return &primary.Resolution{URL: override, Source: primary.SourceOverride}, nil
	}

	generic := release.CandidateBranches(version)
	if len(generic) > 0 {
		for _, workflow := range s.cfg.Workflows {
			resolution, ok := s.probe(ctx, workflow, version, generic)
			if ok {
				return resolution, nil
			}
		}
	}

	if fallback := s.cfg.FallbackWorkflowURL(); fallback != "" {
		fmt.Fprintf(s.out, "falling back to default workflow artifacts at %s\n", fallback)
		return &primary.Resolution{URL: fallback, Source: primary.SourceFallback}, nil
	}

	return nil, &CandidateExhaustedError{Version: version, Workflows: s.cfg.WorkflowNames()}
}

// probe queries one workflow and applies the matching policy. Descriptor
// branch templates are tried before the generic candidate list. A query
// failure is logged and reported as no-match so the search continues with
// the next workflow.
func (s *ResolverService) probe(ctx context.Context, workflow config.WorkflowDescriptor, version string, generic []string) (*primary.Resolution, bool) {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	runs, err := s.ci.ListRuns(qctx, workflow.Name, s.cfg.QueryLimit)
	if err != nil {
		fmt.Fprintf(s.out, "warning: workflow query failed for %s: %v\n", workflow.Name, err)
		return nil, false
	}

	candidates := append(release.ExpandTemplates(workflow.Branches, version), generic...)
	match, ok := release.FindMatch(runs, candidates, version)
	if !ok {
		return nil, false
	}

	fmt.Fprintf(s.out, "matched workflow %s via %s policy (branch %s, candidate %s)\n",
		workflow.Name, match.Tier, match.Run.Branch, match.Candidate)

	return &primary.Resolution{
		URL:       match.Run.URL,
		CommitSHA: match.Run.CommitSHA,
		Workflow:  workflow.Name,
		Branch:    match.Run.Branch,
		MatchTier: match.Tier.String(),
		Candidate: match.Candidate,
		Source:    primary.SourceResolved,
	}, true
}
