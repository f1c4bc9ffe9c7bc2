package theme

import (
	"github.com/gregn610/siteconf/config/validate"
)

// Validate only requires the reference itself. Whether the theme directory
// exists is checked after resolution; themes are often fetched separately,
// so a missing directory warns instead of failing the load.
func (c Config) Validate(v *validate.ValidationErrors, path string) {
	validate.RequireString(v, path+"/path", c.Path)
}
