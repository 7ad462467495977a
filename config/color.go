package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color decodes "#rrggbb" YAML scalars into a colorful.Color
type Color struct {
	colorful.Color
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: colour must be a hex string", value.Line)
	}
	parsed, err := colorful.Hex(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	c.Color = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}
