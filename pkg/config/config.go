// Package config defines core configuration types for md2docx.
// These types are pure data structures; loading and discovery live in
// internal/configloader.
package config

// DocumentConfig holds the output document defaults.
type DocumentConfig struct {
	// FontFamily is the default body font. Empty means Calibri.
	FontFamily string `yaml:"font_family"`

	// FontSizePoints is the default body font size in points. Zero means 11.
	FontSizePoints int `yaml:"font_size"`

	// CodeFontFamily is the monospace font for code. Empty means Courier New.
	CodeFontFamily string `yaml:"code_font_family"`
}

// Config is the root configuration structure for md2docx.
type Config struct {
	// Document configures output document styling.
	Document DocumentConfig `yaml:"document"`

	// Strict fails the conversion when the input uses Markdown constructs
	// the converter flattens (tables, links, emphasis, ...).
	Strict bool `yaml:"strict"`

	// DetectLanguages toggles code-fence language detection.
	// Nil means enabled.
	DetectLanguages *bool `yaml:"detect_languages"`

	// CLI-level options (not persisted to config files).

	// Debug enables debug logging.
	Debug bool `yaml:"-"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{}
}

// DetectLanguagesEnabled resolves the three-valued DetectLanguages field.
func (c *Config) DetectLanguagesEnabled() bool {
	return c.DetectLanguages == nil || *c.DetectLanguages
}

// Merge overlays non-zero fields of other onto c and returns c.
// Used to layer CLI flags over a discovered config file.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}
	if other.Document.FontFamily != "" {
		c.Document.FontFamily = other.Document.FontFamily
	}
	if other.Document.FontSizePoints != 0 {
		c.Document.FontSizePoints = other.Document.FontSizePoints
	}
	if other.Document.CodeFontFamily != "" {
		c.Document.CodeFontFamily = other.Document.CodeFontFamily
	}
	if other.Strict {
		c.Strict = true
	}
	if other.DetectLanguages != nil {
		c.DetectLanguages = other.DetectLanguages
	}
	if other.Debug {
		c.Debug = true
	}
	return c
}
