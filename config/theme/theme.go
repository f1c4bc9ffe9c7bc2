package theme

// Config names the template set the generator renders with. The path is
// stored as written; ResolvedPath is filled in after validation, relative
// to the directory the configuration file lives in.
type Config struct {
	Path         string `yaml:"path" json:"path"`
	ResolvedPath string `yaml:"-" json:"-"`
}
