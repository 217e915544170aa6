package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Template is the starter configuration written by `md2docx init`.
const Template = `# md2docx configuration
#
# All fields are optional; unset fields use the built-in defaults.

document:
  # Default body font and size.
  font_family: Calibri
  font_size: 11
  # Monospace font for code blocks and inline code.
  code_font_family: Courier New

# Fail the conversion when the input uses Markdown constructs the converter
# flattens (tables, links, images, emphasis, blockquotes, HTML).
strict: false

# Tag fenced code blocks with a detected language when the fence has no
# info string.
detect_languages: true
`
