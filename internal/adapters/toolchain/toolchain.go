// Package toolchain contains adapters for the external packaging commands:
// the native-dependency installer and the per-package builder. Both are
// opaque scripts invoked with documented flags; their internals are out of
// scope here.
package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/example/stagehand/internal/ports/secondary"
)

// Installer runs the native-dependency installer script.
type Installer struct {
	script string
	out    io.Writer
}

// NewInstaller creates an installer adapter for the given script path.
func NewInstaller(script string, out io.Writer) *Installer {
	if out == nil {
		out = os.Stdout
	}
	return &Installer{script: script, out: out}
}

// Install downloads native artifacts from a workflow run into destDir.
func (i *Installer) Install(ctx context.Context, workflowURL string, components []string, destDir string) error {
	if len(components) == 0 {
		return nil
	}

	args := []string{"--workflow-url", workflowURL}
	for _, component := range components {
		args = append(args, "--component", component)
	}
	args = append(args, destDir)

	return runCommand(ctx, i.out, i.script, args...)
}

// Builder runs the package-build script once per package.
type Builder struct {
	script string
	out    io.Writer
}

// NewBuilder creates a builder adapter for the given script path.
func NewBuilder(script string, out io.Writer) *Builder {
	if out == nil {
		out = os.Stdout
	}
	return &Builder{script: script, out: out}
}

// Build produces a single archive at spec.PackOutput.
func (b *Builder) Build(ctx context.Context, spec secondary.BuildSpec) error {
	args := []string{
		"--package", spec.Package,
		"--release-version", spec.ReleaseVersion,
		"--staging-dir", spec.StagingDir,
		"--pack-output", spec.PackOutput,
	}
	if spec.VendorSrc != "" {
		args = append(args, "--vendor-src", spec.VendorSrc)
	}

	return runCommand(ctx, b.out, b.script, args...)
}

// runCommand echoes and runs a command, inheriting stdout/stderr so script
// output stays visible in CI logs.
func runCommand(ctx context.Context, out io.Writer, name string, args ...string) error {
	fmt.Fprintf(out, "+ %s %s\n", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}
