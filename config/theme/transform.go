package theme

import (
	"path/filepath"

	"github.com/gregn610/siteconf/config/validate"
)

// TransformAfterValidation resolves the theme reference against the
// directory holding the configuration file and warns if the directory is
// not there yet.
func (c *Config) TransformAfterValidation(baseDir string) error {
	if c.Path == "" {
		return nil
	}
	if filepath.IsAbs(c.Path) {
		c.ResolvedPath = filepath.Clean(c.Path)
	} else {
		c.ResolvedPath = filepath.Join(baseDir, c.Path)
	}

	var warn validate.ValidationErrors
	validate.CheckDir("theme/path", c.ResolvedPath, false, &warn)
	return nil
}
