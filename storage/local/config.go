package local

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds local filesystem storage configuration.
type Config struct {
	// BasePath is the directory uploads are written to.
	// Defaults to a subdirectory of the system temp directory.
	BasePath string `mapstructure:"base_path" json:"base_path" yaml:"base_path"`
	// MaxAge is how long a saved file may linger before the sweeper
	// removes it. Zero disables sweeping.
	MaxAge time.Duration `mapstructure:"max_age" json:"max_age" yaml:"max_age"`
	// SweepInterval is how often the sweeper runs. Defaults to MaxAge.
	SweepInterval time.Duration `mapstructure:"sweep_interval" json:"sweep_interval" yaml:"sweep_interval"`
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.BasePath == "" {
		c.BasePath = filepath.Join(os.TempDir(), "shrutlekh-uploads")
	}
	if c.SweepInterval == 0 {
		c.SweepInterval = c.MaxAge
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.BasePath == "" {
		return fmt.Errorf("local: base_path is required")
	}
	if c.MaxAge < 0 {
		return fmt.Errorf("local: max_age must not be negative")
	}
	return nil
}
