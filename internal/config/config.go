package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aldehir/llm-analysis-index/internal/model"
	"github.com/aldehir/llm-analysis-index/internal/project"
	"github.com/aldehir/llm-analysis-index/internal/provenance"
	"github.com/aldehir/llm-analysis-index/internal/scan"
)

// Config holds the settings for one index build.
type Config struct {
	// Output is the file written into the target directory.
	Output string `yaml:"output"`
	// Marker is the file that identifies an analysis folder.
	Marker string `yaml:"marker"`
	// Provenance is the optional metadata file inside an analysis folder.
	Provenance string `yaml:"provenance"`
	// Parser selects the provenance extractor (pattern, dom).
	Parser string `yaml:"parser"`
	// DescriptionLimit caps the project description length in characters.
	DescriptionLimit int `yaml:"description_limit"`
	// DisplayNames are checked together with the built-in table.
	DisplayNames []model.DisplayName `yaml:"display_names"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output:           "index.html",
		Marker:           scan.DefaultMarker,
		Provenance:       scan.DefaultProvenance,
		Parser:           provenance.KindPattern,
		DescriptionLimit: project.DefaultLimit,
	}
}

// Load reads a YAML config on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can be used.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	if filepath.Base(c.Output) != c.Output || c.Output == "." || c.Output == ".." {
		return fmt.Errorf("output must be a file name, got %q", c.Output)
	}
	if c.Marker == "" {
		return fmt.Errorf("marker must not be empty")
	}
	if _, err := provenance.New(c.Parser); err != nil {
		return fmt.Errorf("parser: %w", err)
	}
	if c.DescriptionLimit <= 0 {
		return fmt.Errorf("description_limit must be positive, got %d", c.DescriptionLimit)
	}
	for i, dn := range c.DisplayNames {
		if dn.Key == "" || dn.Name == "" {
			return fmt.Errorf("display_names[%d]: key and name are required", i)
		}
	}
	return nil
}

// Table returns the built-in display names extended with the configured ones.
func (c *Config) Table() model.Table {
	return model.DefaultTable().With(c.DisplayNames...)
}

// ScanOptions returns the folder discovery settings.
func (c *Config) ScanOptions() scan.Options {
	return scan.Options{Marker: c.Marker, Provenance: c.Provenance}
}
