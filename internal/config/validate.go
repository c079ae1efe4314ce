package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOrganize() error {
	if c.Organize.ReferencePrefix == "" {
		return errors.New("organize.reference_prefix must be set")
	}
	if strings.ContainsAny(c.Organize.ReferenceDir, "/\\") {
		return fmt.Errorf("organize.reference_dir %q must be a bare directory name", c.Organize.ReferenceDir)
	}
	for _, ext := range c.Organize.BinaryExtensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("organize.binary_extensions entry %q is not a file extension", ext)
		}
	}
	if c.Organize.MinFreeSpaceMiB < 0 {
		return errors.New("organize.min_free_space_mib must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
