package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a custom type for parsing duration from YAML
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler interface.
// Strings use time.ParseDuration syntax, bare integers are seconds.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("duration must be a scalar, line %d", node.Line)
	}

	if node.Tag == "!!int" {
		var seconds int64
		if err := node.Decode(&seconds); err != nil {
			return fmt.Errorf("failed to parse duration '%s': %w", node.Value, err)
		}
		d.Duration = time.Duration(seconds) * time.Second
		return nil
	}

	duration, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("failed to parse duration '%s': %w", node.Value, err)
	}

	d.Duration = duration
	return nil
}

// MarshalYAML implements yaml.Marshaler interface
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}
