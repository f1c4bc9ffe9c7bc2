package links

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Link is one labelled URL in a blogroll or social widget.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// List is an ordered sequence of links. Display order is the file order,
// so the list is never sorted or deduplicated.
type List []Link

// UnmarshalYAML accepts a link either as a mapping
//
//   - label: Pelican
//     url: http://getpelican.com/
//
// or as a compact two-element sequence
//
//   - [Pelican, http://getpelican.com/]
//
// which mirrors the pair-tuple form the Pelican settings file used.
// Marshalling always emits the mapping form.
func (l *Link) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		// decoded key by key: a plain struct decode would ignore unknown
		// fields, and typo'd keys must surface at load
		for i := 0; i+1 < len(value.Content); i += 2 {
			keyNode := value.Content[i]
			valNode := value.Content[i+1]

			var err error
			switch keyNode.Value {
			case "label":
				err = valNode.Decode(&l.Label)
			case "url":
				err = valNode.Decode(&l.URL)
			default:
				return fmt.Errorf("line %d: unknown link key %q", keyNode.Line, keyNode.Value)
			}
			if err != nil {
				return err
			}
		}
		return nil

	case yaml.SequenceNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("line %d: link pair must have exactly 2 elements", value.Line)
		}
		if err := value.Content[0].Decode(&l.Label); err != nil {
			return err
		}
		return value.Content[1].Decode(&l.URL)

	default:
		return fmt.Errorf("line %d: link must be a mapping or a pair", value.Line)
	}
}
