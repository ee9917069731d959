package config

import (
	"fmt"

	"github.com/skillsenselab/webcore/database"
	"github.com/skillsenselab/webcore/logger"
)

// Config is the root configuration for the subsystem.
type Config struct {
	Logger   logger.Config   `yaml:"logger" mapstructure:"logger"`
	Database database.Config `yaml:"database" mapstructure:"database"`
	HTTP     HTTPConfig      `yaml:"http" mapstructure:"http"`
}

// HTTPConfig holds settings for the rendering boundary.
type HTTPConfig struct {
	// MaxBodyBytes caps request bodies; oversized requests get a
	// PayloadTooLargeError envelope.
	MaxBodyBytes int64 `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	c.Logger.ApplyDefaults()
	c.Database.ApplyDefaults()
	if c.HTTP.MaxBodyBytes <= 0 {
		c.HTTP.MaxBodyBytes = 10 * 1024 * 1024
	}
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}
