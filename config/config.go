package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gregn610/siteconf/config/feeds"
	"github.com/gregn610/siteconf/config/links"
	"github.com/gregn610/siteconf/config/site"
	"github.com/gregn610/siteconf/config/theme"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	ENV_PREFIX = "SITECONF"
)

var (
	LogConfigEnv = ENV_PREFIX + "_LOG_CONFIG"
	SiteURLEnv   = ENV_PREFIX + "_SITEURL"
)

// Config is the full site-configuration record a generator consumes. It is
// built once at load time and never mutated afterwards.
type Config struct {
	Env     Environment `yaml:"-" json:"-"` // from SITECONF_ENV only
	BaseDir string      `yaml:"-" json:"-"` // directory of the loaded file

	Site       site.SiteConfig  `yaml:"site" json:"site"`
	Content    ContentConfig    `yaml:"content" json:"content"`
	Feeds      feeds.Config     `yaml:"feeds" json:"feeds"`
	Links      links.List       `yaml:"links" json:"links"`
	Social     links.List       `yaml:"social" json:"social"`
	Pagination PaginationConfig `yaml:"pagination" json:"pagination"`

	// RelativeURLs is tri-state: nil means the key is absent from the file
	// and stays absent on save.
	RelativeURLs *bool `yaml:"relative_urls,omitempty" json:"relative_urls,omitempty"`

	Theme theme.Config `yaml:"theme" json:"theme"`
}

type ContentConfig struct {
	Path         string `yaml:"path" json:"path"`
	Timezone     string `yaml:"timezone" json:"timezone"`
	ResolvedPath string `yaml:"-" json:"-"`

	location *time.Location
}

// Location returns the resolved timezone. Valid only after a successful
// load.
func (c *ContentConfig) Location() *time.Location {
	if c.location == nil {
		panic("timezone not resolved, config not loaded")
	}
	return c.location
}

type PaginationConfig struct {
	Default bool `yaml:"default" json:"default"`
}

// Load reads, transforms and validates a configuration file.
func Load(path string) (*Config, error) {
	log.Logger.Debug().Str("path", path).Msg("Configuration loading start")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, err
	}
	cfg.BaseDir = filepath.Dir(path)
	return finish(cfg)
}

// LoadWithOverlay reads a base configuration and applies a publish profile
// on top of it before validation. Keys set in the overlay win; everything
// else keeps the base value.
func LoadWithOverlay(basePath, overlayPath string) (*Config, error) {
	log.Logger.Debug().
		Str("path", basePath).
		Str("overlay", overlayPath).
		Msg("Configuration loading start")

	data, err := os.ReadFile(basePath)
	if err != nil {
		return nil, err
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, err
	}

	overlay, err := os.ReadFile(overlayPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyOverlay(overlay); err != nil {
		return nil, err
	}

	cfg.BaseDir = filepath.Dir(basePath)
	return finish(cfg)
}

// Parse runs the full lifecycle on an in-memory document, resolving paths
// against baseDir.
func Parse(data []byte, baseDir string) (*Config, error) {
	cfg, err := parse(data)
	if err != nil {
		return nil, err
	}
	cfg.BaseDir = baseDir
	return finish(cfg)
}

func parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// empty file, validation reports the missing keys
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func finish(cfg *Config) (*Config, error) {
	cfg.Env = LoadEnvironment()
	if err := cfg.TransformBeforeValidation(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.TransformAfterValidation(); err != nil {
		return nil, err
	}
	log.Logger.Info().Msg("Configuration loaded")
	return cfg, nil
}

// Marshal serializes the record. Loading the output again yields a
// field-for-field equal record.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Save writes the record to path.
func Save(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
