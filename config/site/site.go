package site

// SiteConfig carries the identity of the generated site: who writes it,
// what it is called, and where it is published.
type SiteConfig struct {
	Author      string `yaml:"author" json:"author"`
	Name        string `yaml:"name" json:"name"`
	URL         string `yaml:"url" json:"url"`
	DefaultLang string `yaml:"default_lang" json:"default_lang"`
}
