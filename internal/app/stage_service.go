package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/example/stagehand/internal/config"
	"github.com/example/stagehand/internal/ports/primary"
	"github.com/example/stagehand/internal/ports/secondary"
)

// StageService implements primary.Stager: it orchestrates workflow
// resolution, native artifact installation, and the per-package builder.
type StageService struct {
	resolver  primary.WorkflowResolver
	installer secondary.NativeInstaller
	builder   secondary.PackageBuilder
	workspace secondary.StagingWorkspace
	receipts  secondary.ReceiptStore // optional; nil disables receipts
	cfg       *config.Config
	out       io.Writer
}

// NewStageService creates a new StageService. Progress output goes to out
// (os.Stdout when nil).
func NewStageService(
	resolver primary.WorkflowResolver,
	installer secondary.NativeInstaller,
	builder secondary.PackageBuilder,
	workspace secondary.StagingWorkspace,
	receipts secondary.ReceiptStore,
	cfg *config.Config,
	out io.Writer,
) *StageService {
	if out == nil {
		out = os.Stdout
	}
	return &StageService{
		resolver:  resolver,
		installer: installer,
		builder:   builder,
		workspace: workspace,
		receipts:  receipts,
		cfg:       cfg,
		out:       out,
	}
}

// Stage builds one archive per requested package. Native artifacts are
// installed first when any package needs them; workflow resolution is
// skipped entirely otherwise. Temp dirs are cleaned up on every exit path
// unless retention was requested.
func (s *StageService) Stage(ctx context.Context, req primary.StageRequest) (*primary.StageResult, error) {
	if req.Version == "" {
		return nil, fmt.Errorf("release version is required")
	}
	if len(req.Packages) == 0 {
		return nil, fmt.Errorf("at least one package is required")
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = s.cfg.OutputDir
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	components := s.cfg.ComponentsFor(req.Packages)

	var (
		resolution *primary.Resolution
		vendorRoot string
		vendorSrc  string
	)
	defer func() {
		if vendorRoot != "" && !req.KeepStagingDirs {
			s.workspace.RemoveStagingDir(vendorRoot)
		}
	}()

	if len(components) > 0 {
		var err error
		resolution, err = s.resolver.Resolve(ctx, req.Version, req.WorkflowURL)
		if err != nil {
			return nil, err
		}

		vendorRoot, err = s.workspace.CreateStagingDir("npm-native-")
		if err != nil {
			return nil, err
		}
		if err := s.installer.Install(ctx, resolution.URL, components, vendorRoot); err != nil {
			return nil, fmt.Errorf("native dependency install failed: %w", err)
		}
		vendorSrc = filepath.Join(vendorRoot, "vendor")

		if resolution.CommitSHA != "" {
			fmt.Fprintf(s.out, "artifacts were built at %s; consider `git checkout %s` so the packaged source matches\n",
				resolution.CommitSHA, resolution.CommitSHA)
		}
	}

	result := &primary.StageResult{Resolution: resolution}
	for _, pkg := range req.Packages {
		stagingDir, err := s.workspace.CreateStagingDir("npm-stage-" + pkg + "-")
		if err != nil {
			return nil, err
		}

		packOutput := filepath.Join(outputDir, fmt.Sprintf("%s-npm-%s.tgz", pkg, req.Version))
		buildErr := s.builder.Build(ctx, secondary.BuildSpec{
			Package:        pkg,
			ReleaseVersion: req.Version,
			StagingDir:     stagingDir,
			PackOutput:     packOutput,
			VendorSrc:      vendorSrc,
		})
		if !req.KeepStagingDirs {
			s.workspace.RemoveStagingDir(stagingDir)
		}
		if buildErr != nil {
			return nil, fmt.Errorf("failed to build package %s: %w", pkg, buildErr)
		}

		result.Packages = append(result.Packages, primary.StagedPackage{
			Package:     pkg,
			ArchivePath: packOutput,
		})
	}

	s.recordReceipt(ctx, req.Version, result)

	return result, nil
}

// recordReceipt persists the staging outcome for later audit. Receipt
// failures are logged, never fatal: the archives already exist.
func (s *StageService) recordReceipt(ctx context.Context, version string, result *primary.StageResult) {
	if s.receipts == nil {
		return
	}

	receipt := &secondary.ReceiptRecord{Version: version}
	if result.Resolution != nil {
		receipt.WorkflowURL = result.Resolution.URL
		receipt.Workflow = result.Resolution.Workflow
		receipt.Branch = result.Resolution.Branch
		receipt.CommitSHA = result.Resolution.CommitSHA
		receipt.MatchTier = result.Resolution.MatchTier
	}
	for _, staged := range result.Packages {
		receipt.Archives = append(receipt.Archives, staged.ArchivePath)
	}

	if err := s.receipts.Create(ctx, receipt); err != nil {
		fmt.Fprintf(s.out, "warning: failed to record staging receipt: %v\n", err)
	}
}
