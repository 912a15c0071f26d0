// Package config provides the configuration loader for cachet.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"go.cachet.dev/cachet/internal/core/domain"
	"go.cachet.dev/cachet/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// branchVars are checked in order when the config does not pin a branch.
// Covers GitHub Actions, GitLab CI, Bitrise and Jenkins.
var branchVars = []string{
	"GITHUB_REF_NAME",
	"CI_COMMIT_REF_NAME",
	"BITRISE_GIT_BRANCH",
	"BRANCH_NAME",
}

// Loader implements ports.ConfigLoader using a YAML file plus CI environment
// fallbacks.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration file at path and resolves it into a RunSpec.
func (l *Loader) Load(path string) (*domain.RunSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if len(file.Ecosystems) == 0 {
		return nil, domain.ErrNoEcosystems
	}

	workDir := filepath.Dir(path)
	if abs, err := filepath.Abs(workDir); err == nil {
		workDir = abs
	}

	spec := &domain.RunSpec{
		Platform:       file.Platform,
		Branch:         file.Branch,
		BustToken:      file.CacheBust,
		Ecosystems:     file.Ecosystems,
		Toolchain:      domain.ToolchainFingerprint(file.Toolchain),
		Manager:        file.PackageManager.Name,
		ManagerVersion: file.PackageManager.Version,
		ExtraManifests: file.Manifests,
		WorkDir:        workDir,
		StatePath:      file.StatePath,
		StoreDir:       file.StoreDir,
		ToolCacheDir:   file.ToolCacheDir,
	}

	applyDefaults(spec)
	return spec, nil
}

// applyDefaults fills unset fields from the environment and documented
// defaults.
func applyDefaults(spec *domain.RunSpec) {
	if spec.Platform == "" || spec.Platform == "auto" {
		spec.Platform = runtime.GOOS
	}

	if spec.Branch == "" {
		for _, v := range branchVars {
			if val := os.Getenv(v); val != "" {
				spec.Branch = val
				break
			}
		}
	}

	if spec.Manager == "" {
		// The first configured ecosystem is the primary package manager.
		spec.Manager = spec.Ecosystems[0]
	}

	home, _ := os.UserHomeDir()
	if spec.StatePath == "" {
		spec.StatePath = filepath.Join(spec.WorkDir, ".cachet", "state.json")
	}
	if spec.StoreDir == "" {
		spec.StoreDir = filepath.Join(home, ".cachet", "store")
	}
	if spec.ToolCacheDir == "" {
		spec.ToolCacheDir = filepath.Join(home, ".cachet", "tools")
	}
}
