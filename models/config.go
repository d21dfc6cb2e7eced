// Package models defines data structures for configuration, parsing and records.
package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultURL       = "https://mcc-mnc.com/"
	DefaultSelector  = "#mncmccTable"
	DefaultFormat    = "csv"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "mcc-mnc-table/1.0"
	DefaultBaseName  = "mcc-mnc-table"
	DefaultConfig    = "mccmnc.yaml"

	SourceHTML = "html"
	SourceJS   = "js"
)

// Config holds runtime configuration. Values come from an optional YAML
// file and are overridden by CLI flags that were explicitly set.
type Config struct {
	URL       string        `yaml:"url"`
	Source    string        `yaml:"source"`
	Selector  string        `yaml:"selector"`
	Marker    string        `yaml:"marker"`
	Legacy    bool          `yaml:"legacy"`
	Format    string        `yaml:"format"`
	Output    string        `yaml:"output"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	CSV       CSVConfig     `yaml:"csv"`
}

type CSVConfig struct {
	Header *bool `yaml:"header"`
}

// WantHeader reports whether CSV output starts with a header row.
func (c CSVConfig) WantHeader() bool {
	return c.Header == nil || *c.Header
}

// ApplyDefaults fills zero values with defaults.
func (c *Config) ApplyDefaults() {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.Source == "" {
		c.Source = SourceHTML
	}
	if c.Selector == "" {
		c.Selector = DefaultSelector
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
}

// LoadConfig reads a YAML config file. A missing file is only an error
// when required is set; otherwise defaults are returned.
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !required:
		cfg.ApplyDefaults()
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
