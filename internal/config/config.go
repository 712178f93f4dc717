// Package config holds the shared staging configuration: the workflow
// search order, the package-to-native-component mapping, and the fallback
// workflow URL. Compiled-in defaults can be overlaid from a YAML file so
// operators can adjust the search policy without rebuilding.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Environment variables read at startup.
const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "STAGEHAND_CONFIG"
	// EnvDefaultWorkflowURL overrides the fallback workflow URL used when
	// resolution finds no run.
	EnvDefaultWorkflowURL = "STAGEHAND_DEFAULT_WORKFLOW_URL"
	// EnvRunnerTemp is the CI-runner-provided temp root (GitHub Actions
	// convention); staging dirs are created under it when set.
	EnvRunnerTemp = "RUNNER_TEMP"
)

// DefaultOutputDir is where package archives land unless overridden.
const DefaultOutputDir = "dist/npm"

// DefaultQueryLimit bounds how many recent runs a single provider query may
// return.
const DefaultQueryLimit = 200

// Default locations of the external packaging scripts, relative to the
// repository root.
const (
	DefaultInstallerScript = "scripts/install_native_deps.py"
	DefaultBuilderScript   = "scripts/build_npm_package.py"
)

// WorkflowDescriptor names a CI workflow definition and the ordered branch
// templates to probe first for it. Templates contain a {version}
// placeholder; descriptors with no templates rely on the generic candidate
// generator alone.
type WorkflowDescriptor struct {
	Name     string   `yaml:"name"`
	Branches []string `yaml:"branches"`
}

// Config is the full staging configuration.
type Config struct {
	// Workflows is the ordered search list: the primary release workflow
	// first, then historical ones.
	Workflows []WorkflowDescriptor `yaml:"workflows"`
	// NativeComponents maps a package name to the native components its
	// archive embeds. Packages absent from the map need no native install.
	NativeComponents map[string][]string `yaml:"native_components"`
	// DefaultWorkflowURL is the fallback when no run matches. Empty means
	// no fallback; EnvDefaultWorkflowURL takes precedence when set.
	DefaultWorkflowURL string `yaml:"default_workflow_url"`
	// QueryLimit bounds each provider query's result set.
	QueryLimit int `yaml:"query_limit"`
	// OutputDir is the default archive output directory.
	OutputDir string `yaml:"output_dir"`
	// InstallerScript is the native-dependency installer command.
	InstallerScript string `yaml:"installer_script"`
	// BuilderScript is the package-build command.
	BuilderScript string `yaml:"builder_script"`
}

// Default returns the compiled-in configuration: the historical workflow
// search order with no native-component mappings (operators declare those
// in the config file).
func Default() *Config {
	return &Config{
		Workflows: []WorkflowDescriptor{
			{
				Name: ".github/workflows/rust-release.yml",
				Branches: []string{
					"rust-v{version}",
					"rust-release-v{version}",
					"rust-release/{version}",
					"release/v{version}",
				},
			},
			{
				Name: ".github/workflows/rust-nse.yml",
				Branches: []string{
					"rust-nse-v{version}",
					"rust-nse/{version}",
					"nse-v{version}",
				},
			},
			{
				Name: ".github/workflows/first-release.yml",
				Branches: []string{
					"first-release-v{version}",
					"first-release/{version}",
				},
			},
		},
		NativeComponents: map[string][]string{},
		QueryLimit:       DefaultQueryLimit,
		OutputDir:        DefaultOutputDir,
		InstallerScript:  DefaultInstallerScript,
		BuilderScript:    DefaultBuilderScript,
	}
}

// Load returns the effective configuration: compiled defaults overlaid with
// the YAML file at $STAGEHAND_CONFIG or .stagehand/config.yaml under dir.
// A missing file is not an error; a malformed one is.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = filepath.Join(dir, ".stagehand", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.merge(&overlay)

	return cfg, nil
}

// merge overlays non-zero fields from other onto cfg.
func (c *Config) merge(other *Config) {
	if len(other.Workflows) > 0 {
		c.Workflows = other.Workflows
	}
	if len(other.NativeComponents) > 0 {
		c.NativeComponents = other.NativeComponents
	}
	if other.DefaultWorkflowURL != "" {
		c.DefaultWorkflowURL = other.DefaultWorkflowURL
	}
	if other.QueryLimit > 0 {
		c.QueryLimit = other.QueryLimit
	}
	if other.OutputDir != "" {
		c.OutputDir = other.OutputDir
	}
	if other.InstallerScript != "" {
		c.InstallerScript = other.InstallerScript
	}
	if other.BuilderScript != "" {
		c.BuilderScript = other.BuilderScript
	}
}

// ComponentsFor returns the sorted union of native components required by
// the given packages. An empty result means no workflow resolution or
// native install is needed.
func (c *Config) ComponentsFor(packages []string) []string {
	set := map[string]struct{}{}
	for _, pkg := range packages {
		for _, component := range c.NativeComponents[pkg] {
			set[component] = struct{}{}
		}
	}
	components := make([]string, 0, len(set))
	for component := range set {
		components = append(components, component)
	}
	sort.Strings(components)
	return components
}

// FallbackWorkflowURL returns the fallback URL, preferring the environment
// override.
func (c *Config) FallbackWorkflowURL() string {
	if url := os.Getenv(EnvDefaultWorkflowURL); url != "" {
		return url
	}
	return c.DefaultWorkflowURL
}

// WorkflowNames lists the configured workflow identifiers in search order.
func (c *Config) WorkflowNames() []string {
	names := make([]string, 0, len(c.Workflows))
	for _, wf := range c.Workflows {
		names = append(names, wf.Name)
	}
	return names
}
