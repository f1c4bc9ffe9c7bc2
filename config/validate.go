package config

import (
	"github.com/gregn610/siteconf/config/validate"
)

func (c *Config) Validate() error {
	var verr validate.ValidationErrors

	c.Site.Validate(&verr, "site", c.Env == EnvProduction)
	c.Content.validate(&verr, "content")
	c.Feeds.Validate(&verr, "feeds")
	c.Links.Validate(&verr, "links")
	c.Social.Validate(&verr, "social")
	c.Theme.Validate(&verr, "theme")

	// booleans cannot be invalid, logged for the audit trail
	validate.LogConfigOK("pagination/default", c.Pagination.Default)
	if c.RelativeURLs != nil {
		validate.LogConfigOK("relative_urls", *c.RelativeURLs)
	}

	if verr.HasErrors() {
		return &verr
	}
	return nil
}

func (c *ContentConfig) validate(v *validate.ValidationErrors, path string) {
	validate.RequireString(v, path+"/path", c.Path)
	validate.CheckTimezone(v, path+"/timezone", c.Timezone)
}
