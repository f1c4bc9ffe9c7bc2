package theme

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregn610/siteconf/config/validate"
)

func TestValidateRequiresPath(t *testing.T) {
	var v validate.ValidationErrors
	Config{}.Validate(&v, "theme")
	require.True(t, v.HasErrors())
	assert.Contains(t, v.Error(), "theme/path")
}

func TestResolveRelative(t *testing.T) {
	c := Config{Path: "themes/pelican-sober"}
	require.NoError(t, c.TransformAfterValidation("/srv/site"))
	assert.Equal(t, filepath.Join("/srv/site", "themes", "pelican-sober"), c.ResolvedPath)
}

func TestResolveAbsolute(t *testing.T) {
	c := Config{Path: "/opt/themes/pelican-sober/"}
	require.NoError(t, c.TransformAfterValidation("/srv/site"))
	assert.Equal(t, filepath.Clean("/opt/themes/pelican-sober"), c.ResolvedPath)
}

func TestMissingThemeDirOnlyWarns(t *testing.T) {
	c := Config{Path: "themes/not-fetched-yet"}
	require.NoError(t, c.TransformAfterValidation(t.TempDir()))
	assert.NotEmpty(t, c.ResolvedPath)
}
