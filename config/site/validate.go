package site

import (
	"github.com/gregn610/siteconf/config/validate"
	"github.com/rs/zerolog/log"
)

// Validate checks the site identity fields. The base URL is only required
// when urlRequired is set: during development the URL is conventionally left
// empty so generated documents link relative to the output root.
func (s SiteConfig) Validate(v *validate.ValidationErrors, path string, urlRequired bool) {
	validate.RequireString(v, path+"/author", s.Author)
	validate.RequireString(v, path+"/name", s.Name)
	validate.CheckLocale(v, path+"/default_lang", s.DefaultLang)

	if s.URL == "" {
		if urlRequired {
			err := validate.ErrRequired(path + "/url")
			validate.LogConfigError(path+"/url", s.URL, err)
			v.Add(err)
		} else {
			log.Info().
				Str("config", path+"/url").
				Msg("site url not set (development)")
		}
		return
	}
	validate.CheckURL(v, path+"/url", s.URL)
}
