package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gregn610/siteconf/config/validate"
	"github.com/rs/zerolog/log"
)

func (c *Config) TransformBeforeValidation() error {
	if u := os.Getenv(SiteURLEnv); u != "" {
		log.Debug().
			Str("key", SiteURLEnv).
			Str("value", u).
			Str("source", "environment").
			Msg("using environment variable")
		c.Site.URL = u
	}

	_ = c.Site.TransformBeforeValidation()
	return nil
}

func (c *Config) TransformAfterValidation() error {
	if err := c.Content.TransformAfterValidation(c.BaseDir); err != nil {
		return err
	}
	return c.Theme.TransformAfterValidation(c.BaseDir)
}

// TransformAfterValidation resolves the content directory and caches the
// timezone. The directory may not exist yet in a config-only checkout, so
// absence only warns.
func (c *ContentConfig) TransformAfterValidation(baseDir string) error {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return err
	}
	c.location = loc

	if filepath.IsAbs(c.Path) {
		c.ResolvedPath = filepath.Clean(c.Path)
	} else {
		c.ResolvedPath = filepath.Join(baseDir, c.Path)
	}

	var warn validate.ValidationErrors
	validate.CheckDir("content/path", c.ResolvedPath, false, &warn)
	return nil
}
