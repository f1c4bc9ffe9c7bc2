package feeds

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/gregn610/siteconf/config/validate"
	"github.com/rs/zerolog/log"
)

var placeholderRe = regexp.MustCompile(`\{([^{}]*)\}`)

// Validate checks each enabled toggle: the path must be a safe relative
// path and may only use the placeholders defined for that toggle.
func (c Config) Validate(v *validate.ValidationErrors, path string) {
	for _, out := range c.Outputs() {
		keyPath := path + "/" + out.Name

		if !out.Ref.Enabled() {
			log.Info().
				Str("config", keyPath).
				Msg("feed disabled")
			continue
		}

		if !validate.CheckRelPath(v, keyPath, out.Ref.Path()) {
			continue
		}

		for _, m := range placeholderRe.FindAllStringSubmatch(out.Ref.Path(), -1) {
			if !slices.Contains(out.Placeholders, m[1]) {
				err := fmt.Errorf("unknown placeholder {%s} (allowed: %v)", m[1], out.Placeholders)
				validate.LogConfigError(keyPath, out.Ref.Path(), err)
				v.Add(fmt.Errorf("%s: %w", keyPath, err))
			}
		}
	}
}
