package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Link is a labelled URL shown as a button or document link
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Fact is a key/value row shown in the project detail view.
// On the wire it is an array: ["Role", "Manufacturing Engineer"].
// Items past the second are kept in Extra.
type Fact struct {
	Key   string
	Value string
	Extra []string
}

// Items returns the fact as the flat list of strings it was declared with
func (f Fact) Items() []string {
	return append([]string{f.Key, f.Value}, f.Extra...)
}

// Text is the displayed value: every item after the key, comma separated
func (f Fact) Text() string {
	return strings.Join(f.Items()[1:], ", ")
}

// MarshalJSON encodes the fact as an array
func (f Fact) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Items())
}

// UnmarshalJSON decodes a fact from an array of scalars. Numbers and booleans
// keep their JSON text and null becomes "".
func (f *Fact) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("fact must be an array: %w", err)
	}
	items := make([]string, 0, len(raw))
	for _, r := range raw {
		item, err := factItem(r)
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	*f = factFromItems(items)
	return nil
}

func factItem(r json.RawMessage) (string, error) {
	r = bytes.TrimSpace(r)
	if len(r) == 0 {
		return "", nil
	}
	switch r[0] {
	case '"':
		var s string
		if err := json.Unmarshal(r, &s); err != nil {
			return "", fmt.Errorf("fact item: %w", err)
		}
		return s, nil
	case '{', '[':
		return "", errors.New("fact items must be scalars")
	}
	if string(r) == "null" {
		return "", nil
	}
	return string(r), nil
}

// MarshalYAML encodes the fact as a sequence
func (f Fact) MarshalYAML() (interface{}, error) {
	return f.Items(), nil
}

// UnmarshalYAML decodes a fact from a sequence of scalars
func (f *Fact) UnmarshalYAML(node *yaml.Node) error {
	var items []string
	if err := node.Decode(&items); err != nil {
		return fmt.Errorf("fact must be a sequence of scalars: %w", err)
	}
	*f = factFromItems(items)
	return nil
}

func factFromItems(items []string) Fact {
	switch len(items) {
	case 0:
		return Fact{}
	case 1:
		return Fact{Key: items[0]}
	case 2:
		return Fact{Key: items[0], Value: items[1]}
	default:
		return Fact{Key: items[0], Value: items[1], Extra: items[2:]}
	}
}

// Project represents a portfolio project
type Project struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Tagline string   `json:"tagline" yaml:"tagline"`
	Model   string   `json:"model" yaml:"model"`
	Images  []string `json:"images" yaml:"images"`
	Links   []Link   `json:"links" yaml:"links"`
	Facts   []Fact   `json:"facts" yaml:"facts"`
	Tags    []string `json:"tags" yaml:"tags"`
	Summary string   `json:"summary" yaml:"summary"`
}

// HasTag reports whether the project carries the exact tag
func (p *Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
