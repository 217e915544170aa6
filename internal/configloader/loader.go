// Package configloader resolves the effective md2docx configuration from an
// explicit --config path or a config file discovered in the working
// directory, with CLI flags layered on top.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/md2docx/pkg/config"
)

// candidateNames are the config file names probed in the working directory,
// in priority order.
var candidateNames = []string{".md2docx.yml", ".md2docx.yaml"}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to probe for a project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, discovery is skipped and a missing file is an error.
	ExplicitPath string

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the effective configuration.
	Config *config.Config

	// LoadedFrom is the path of the config file used, empty when none was.
	LoadedFrom string
}

// Load resolves the effective configuration.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config: %w", ctx.Err())
	default:
	}

	result := &LoadResult{Config: config.Default()}

	path := opts.ExplicitPath
	if path == "" {
		path = discover(opts.WorkingDir)
	}

	if path != "" {
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			return nil, err
		}
		result.Config = fileCfg
		result.LoadedFrom = path
	}

	// CLI flags win over everything from the file.
	result.Config.Merge(opts.CLIConfig)

	return result, nil
}

// discover probes the working directory for a config file.
// Returns "" when none is present.
func discover(workingDir string) string {
	if workingDir == "" {
		workingDir = "."
	}
	for _, name := range candidateNames {
		candidate := filepath.Join(workingDir, name)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate
		}
	}
	return ""
}

func loadConfigFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}
