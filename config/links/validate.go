package links

import (
	"fmt"

	"github.com/gregn610/siteconf/config/validate"
	"github.com/rs/zerolog/log"
)

// Validate checks every entry. An empty list is fine: a site without a
// blogroll is still a site.
func (ll List) Validate(v *validate.ValidationErrors, path string) {
	if len(ll) == 0 {
		log.Info().
			Str("config", path).
			Msg("no links defined")
		return
	}

	for i, l := range ll {
		base := fmt.Sprintf("%s[%d]", path, i)
		validate.RequireString(v, base+"/label", l.Label)
		validate.CheckURL(v, base+"/url", l.URL)
	}
}
