package secondary

import "context"

// NativeInstaller defines the secondary port for the external
// native-dependency installer. It downloads artifacts from a workflow run
// and lays them out under destDir (with a vendor/ subpath).
type NativeInstaller interface {
	Install(ctx context.Context, workflowURL string, components []string, destDir string) error
}

// BuildSpec carries one package-builder invocation.
type BuildSpec struct {
	Package        string
	ReleaseVersion string
	StagingDir     string
	PackOutput     string
	VendorSrc      string // empty when no native components were installed
}

// PackageBuilder defines the secondary port for the external package-build
// script. It produces a single archive at spec.PackOutput.
type PackageBuilder interface {
	Build(ctx context.Context, spec BuildSpec) error
}
