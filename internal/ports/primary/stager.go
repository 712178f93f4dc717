// Package primary defines the primary ports (driving interfaces) for the
// application.
package primary

import "context"

// ResolutionSource records how a workflow URL was obtained.
type ResolutionSource string

const (
	// SourceOverride means the operator supplied the URL explicitly.
	SourceOverride ResolutionSource = "override"
	// SourceResolved means a matching workflow run was found.
	SourceResolved ResolutionSource = "resolved"
	// SourceFallback means the configured default URL was used.
	SourceFallback ResolutionSource = "fallback"
)

// Resolution is the outcome of workflow URL resolution.
type Resolution struct {
	URL       string
	CommitSHA string // empty for override and fallback sources
	Workflow  string // workflow identifier that matched, when resolved
	Branch    string // run branch that matched, when resolved
	MatchTier string // exact, suffix, or substring, when resolved
	Candidate string // candidate string that matched, when resolved
	Source    ResolutionSource
}

// WorkflowResolver resolves the CI workflow run URL for a release version.
type WorkflowResolver interface {
	// Resolve returns the workflow URL for version. A non-empty override
	// is returned as-is without querying the provider.
	Resolve(ctx context.Context, version, override string) (*Resolution, error)
}

// StageRequest describes one staging operation.
type StageRequest struct {
	Version         string
	Packages        []string
	WorkflowURL     string // optional operator override
	OutputDir       string // empty means the configured default
	KeepStagingDirs bool
}

// StagedPackage is one produced archive.
type StagedPackage struct {
	Package     string
	ArchivePath string
}

// StageResult reports a completed staging operation.
type StageResult struct {
	Packages   []StagedPackage
	Resolution *Resolution // nil when no native components were required
}

// Stager stages release packages.
type Stager interface {
	Stage(ctx context.Context, req StageRequest) (*StageResult, error)
}
