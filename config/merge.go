package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// applyOverlay decodes a publish profile into the already-parsed base
// record. Decoding a YAML mapping into an existing struct only assigns the
// keys that are present, so the overlay wins key-by-key; link lists are
// replaced wholesale because a sequence always overwrites the slice.
func (c *Config) applyOverlay(data []byte) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return errors.New("overlay must be a mapping")
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		val := doc.Content[i+1]

		var err error
		switch key {
		case "site":
			err = strictDecodeNode(val, &c.Site)
		case "content":
			err = strictDecodeNode(val, &c.Content)
		case "feeds":
			err = c.Feeds.ApplyOverlay(val)
		case "links":
			err = val.Decode(&c.Links)
		case "social":
			err = val.Decode(&c.Social)
		case "pagination":
			err = strictDecodeNode(val, &c.Pagination)
		case "relative_urls":
			err = val.Decode(&c.RelativeURLs)
		case "theme":
			err = strictDecodeNode(val, &c.Theme)
		default:
			return fmt.Errorf("unknown overlay key %q", key)
		}
		if err != nil {
			return fmt.Errorf("overlay key %q: %w", key, err)
		}
	}
	return nil
}

// strictDecodeNode decodes a section node into an existing struct with
// unknown keys rejected. Node.Decode alone ignores unknown fields, which
// would let a typo'd key inside a known section silently no-op.
func strictDecodeNode(n *yaml.Node, out any) error {
	data, err := yaml.Marshal(n)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
