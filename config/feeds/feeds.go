package feeds

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Ref is a feed toggle: either disabled (the YAML null / Pelican None
// sentinel) or the relative output path the generator should write the
// syndication document to. The zero value is disabled.
type Ref struct {
	enabled bool
	path    string
}

// New returns an enabled Ref pointing at path.
func New(path string) Ref {
	return Ref{enabled: true, path: path}
}

// Disabled returns a disabled Ref.
func Disabled() Ref {
	return Ref{}
}

func (r Ref) Enabled() bool {
	return r.enabled
}

// Path returns the output path template, or "" when disabled.
func (r Ref) Path() string {
	if !r.enabled {
		return ""
	}
	return r.path
}

func (r Ref) String() string {
	if !r.enabled {
		return "disabled"
	}
	return r.path
}

func (r *Ref) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*r = Ref{}
		return nil
	}
	if value.Kind == yaml.ScalarNode {
		r.enabled = true
		return value.Decode(&r.path)
	}
	return fmt.Errorf("line %d: feed toggle must be a path or null", value.Line)
}

func (r Ref) MarshalYAML() (any, error) {
	if !r.enabled {
		return nil, nil
	}
	return r.path, nil
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ref{}
		return nil
	}
	r.enabled = true
	return json.Unmarshal(data, &r.path)
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if !r.enabled {
		return []byte("null"), nil
	}
	return json.Marshal(r.path)
}

// Config holds the five feed toggles. All default to disabled: feed
// generation is usually not desired while developing.
type Config struct {
	AllAtom         Ref `yaml:"all_atom" json:"all_atom"`
	CategoryAtom    Ref `yaml:"category_atom" json:"category_atom"`
	TranslationAtom Ref `yaml:"translation_atom" json:"translation_atom"`
	AuthorAtom      Ref `yaml:"author_atom" json:"author_atom"`
	AuthorRSS       Ref `yaml:"author_rss" json:"author_rss"`
}

// Defaults returns the stock output layout a publishing profile enables.
func Defaults() Config {
	return Config{
		AllAtom:         New("feeds/all.atom.xml"),
		CategoryAtom:    New("feeds/{slug}.atom.xml"),
		TranslationAtom: New("feeds/all-{lang}.atom.xml"),
		AuthorAtom:      New("feeds/{slug}.atom.xml"),
		AuthorRSS:       New("feeds/{slug}.rss.xml"),
	}
}

// ApplyOverlay merges a feeds mapping node: keys present in the overlay
// win, and an explicit null disables the toggle. A plain decode cannot
// switch a toggle off again because yaml leaves struct values untouched on
// null.
func (c *Config) ApplyOverlay(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: feeds must be a mapping", value.Line)
	}

	refs := map[string]*Ref{
		"all_atom":         &c.AllAtom,
		"category_atom":    &c.CategoryAtom,
		"translation_atom": &c.TranslationAtom,
		"author_atom":      &c.AuthorAtom,
		"author_rss":       &c.AuthorRSS,
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		val := value.Content[i+1]

		ref, ok := refs[key]
		if !ok {
			return fmt.Errorf("line %d: unknown feed toggle %q", value.Content[i].Line, key)
		}
		if val.Kind == yaml.ScalarNode && val.Tag == "!!null" {
			*ref = Ref{}
			continue
		}
		if err := val.Decode(ref); err != nil {
			return err
		}
	}
	return nil
}

// Output describes one toggle for display and for the consuming generator.
type Output struct {
	Name         string
	Ref          Ref
	Placeholders []string
}

// Outputs lists the toggles in declaration order with the placeholders each
// path template may use. Expanding the placeholders is the generator's job.
func (c Config) Outputs() []Output {
	return []Output{
		{Name: "all_atom", Ref: c.AllAtom},
		{Name: "category_atom", Ref: c.CategoryAtom, Placeholders: []string{"slug"}},
		{Name: "translation_atom", Ref: c.TranslationAtom, Placeholders: []string{"lang"}},
		{Name: "author_atom", Ref: c.AuthorAtom, Placeholders: []string{"slug"}},
		{Name: "author_rss", Ref: c.AuthorRSS, Placeholders: []string{"slug"}},
	}
}
