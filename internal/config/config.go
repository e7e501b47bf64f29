// Package config loads the CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-docgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// Field length limits keep a hostile config file from inflating names.
const (
	MaxDirLength   = 4096 // path limit on common filesystems
	MaxTitleLength = 200  // default document title
)

// Config holds all configuration for document generation.
type Config struct {
	Templates TemplatesConfig `yaml:"templates"`
	Output    OutputConfig    `yaml:"output"`
	Document  DocumentConfig  `yaml:"document"`
}

// TemplatesConfig locates the template catalog.
type TemplatesConfig struct {
	Dir string `yaml:"dir"` // Template directory (empty = "templates")
}

// OutputConfig defines where the CLI writes generated documents.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory (empty = current directory)
}

// DocumentConfig defines document defaults.
type DocumentConfig struct {
	DefaultTitle string `yaml:"defaultTitle"` // Title when none is given (empty = library default)
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the --config flag
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field length limits.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"templates.dir", c.Templates.Dir, MaxDirLength},
		{"output.dir", c.Output.Dir, MaxDirLength},
		{"document.defaultTitle", c.Document.DefaultTitle, MaxTitleLength},
	}
	for _, check := range checks {
		if len(check.value) > check.max {
			return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong, check.name, len(check.value), check.max)
		}
	}
	return nil
}
