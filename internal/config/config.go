// Package config manages application configuration.
package config

// Config represents the application configuration.
type Config struct {
	BaseURL   string `yaml:"base_url"`   // default Rise content base URL
	URLFormat string `yaml:"url_format"` // blocks, lessons or sections (IMSCC)
	SchemaDir string `yaml:"schema_dir"` // where the SCORM XSD files live
	OutputDir string `yaml:"output_dir"` // where generated packages are written
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   "${RISE_BASE_URL}",
		URLFormat: "lessons",
		SchemaDir: ".",
		OutputDir: ".",
	}
}
