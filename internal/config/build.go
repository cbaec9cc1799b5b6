package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vango-go/tagkit/internal/errors"
	"github.com/vango-go/tagkit/pkg/resolve"
	"gopkg.in/yaml.v3"
)

// BuildFile lists elements to construct.
type BuildFile struct {
	Elements []ElementSpec `yaml:"elements"`
}

// ElementSpec describes one element: its tag name, its ordered attribute
// entries and optional children.
type ElementSpec struct {
	Tag      string
	Attrs    resolve.Entries
	Children []ElementSpec
}

// UnmarshalYAML decodes attrs from the mapping node directly so that key
// order survives.
func (s *ElementSpec) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Tag      string        `yaml:"tag"`
		Attrs    yaml.Node     `yaml:"attrs"`
		Children []ElementSpec `yaml:"children"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	s.Tag = raw.Tag
	s.Children = raw.Children

	attrs, err := decodeEntries(&raw.Attrs)
	if err != nil {
		return err
	}
	s.Attrs = attrs
	return nil
}

func decodeEntries(node *yaml.Node) (resolve.Entries, error) {
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: attrs must be a mapping", node.Line)
	}

	entries := make(resolve.Entries, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		var value any
		if err := valNode.Decode(&value); err != nil {
			return nil, fmt.Errorf("line %d: attr %q: %w", valNode.Line, keyNode.Value, err)
		}
		entries = entries.Set(keyNode.Value, value)
	}
	return entries, nil
}

// LoadBuild reads and validates a build file.
func LoadBuild(path string) (*BuildFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CodeConfig).Wrap(err)
	}
	return ParseBuild(data, filepath.Base(path))
}

// ParseBuild decodes a build file's contents. name is used in messages.
func ParseBuild(data []byte, name string) (*BuildFile, error) {
	var bf BuildFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, errors.New(errors.CodeConfig).
			WithDetail("Failed to parse " + name + ": " + err.Error()).
			Wrap(err)
	}
	if err := bf.Validate(); err != nil {
		return nil, errors.New(errors.CodeConfig).Wrap(err)
	}
	return &bf, nil
}

// Validate checks that every element names a tag.
func (bf *BuildFile) Validate() error {
	if len(bf.Elements) == 0 {
		return fmt.Errorf("%w: no elements", errors.ErrConfig)
	}
	return validateSpecs(bf.Elements, "elements")
}

func validateSpecs(specs []ElementSpec, path string) error {
	for i, s := range specs {
		at := fmt.Sprintf("%s[%d]", path, i)
		if s.Tag == "" {
			return fmt.Errorf("%w: %s: missing tag", errors.ErrConfig, at)
		}
		if err := validateSpecs(s.Children, at+".children"); err != nil {
			return err
		}
	}
	return nil
}
