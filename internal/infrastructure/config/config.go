// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file read when --config is not given.
const DefaultConfigFile = "bridgeit.yaml"

// Config holds static configuration (read-only after load).
type Config struct {
	Source    SourceConfig   `yaml:"source,omitempty"`
	Directory DirConfig      `yaml:"directory,omitempty"`
	Match     MatchConfig    `yaml:"match,omitempty"`
	Features  FeaturesConfig `yaml:"features,omitempty"`
	Server    ServerConfig   `yaml:"server,omitempty"`
}

// SourceConfig points at the published spreadsheet export.
type SourceConfig struct {
	// CSVURL is the public CSV export URL (Google Sheets: File →
	// Publish to the web → CSV).
	CSVURL string `yaml:"csv_url,omitempty"`
	// SiteBaseURL is the origin used to fetch site-relative profile
	// pages for embedding.
	SiteBaseURL string `yaml:"site_base_url,omitempty"`
}

// DirConfig holds directory page linkage.
type DirConfig struct {
	// DetailURL is the detail page path entries link to when they have
	// no dedicated profile URL.
	DetailURL string `yaml:"detail_url,omitempty"`
	// FormURL is the sign-up form linked from the directory.
	FormURL string `yaml:"form_url,omitempty"`
}

// MatchConfig holds the two ranking weights and the matched-tag display
// cap.
type MatchConfig struct {
	TematicaWeight float64 `yaml:"tematica_weight,omitempty"`
	ConvoWeight    float64 `yaml:"convo_weight,omitempty"`
	MaxMatchedTags int     `yaml:"max_matched_tags,omitempty"`
}

// FeaturesConfig toggles the differences between deployments. The
// historical deployments were near-identical copies with one feature
// added or removed; here that is a flag, not a fork.
type FeaturesConfig struct {
	// Pitch enables the short elevator-pitch field on cards.
	Pitch *bool `yaml:"pitch,omitempty"`
	// Matching enables the similarity ranking endpoints/commands.
	Matching *bool `yaml:"matching,omitempty"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	on := true
	return &Config{
		Directory: DirConfig{
			DetailURL: "/bridgeit/item/",
		},
		Match: MatchConfig{
			TematicaWeight: 0.7,
			ConvoWeight:    0.3,
			MaxMatchedTags: 8,
		},
		Features: FeaturesConfig{
			Pitch:    &on,
			Matching: &on,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads configuration from the given file, falling back to
// defaults when the file does not exist, and applies environment
// overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BRIDGEIT_CSV_URL"); v != "" {
		c.Source.CSVURL = v
	}
	if v := os.Getenv("BRIDGEIT_SITE_BASE_URL"); v != "" {
		c.Source.SiteBaseURL = v
	}
	if v := os.Getenv("BRIDGEIT_ADDR"); v != "" {
		c.Server.Addr = v
	}
}

// PitchEnabled reports whether the elevator-pitch field is shown.
func (c *Config) PitchEnabled() bool {
	return c.Features.Pitch == nil || *c.Features.Pitch
}

// MatchingEnabled reports whether the matching feature is available.
func (c *Config) MatchingEnabled() bool {
	return c.Features.Matching == nil || *c.Features.Matching
}
