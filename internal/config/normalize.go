package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOrganize()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOrganize() {
	exts := make([]string, 0, len(c.Organize.BinaryExtensions))
	for _, ext := range c.Organize.BinaryExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	c.Organize.BinaryExtensions = exts

	names := make([]string, 0, len(c.Organize.Exclude))
	for _, name := range c.Organize.Exclude {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	c.Organize.Exclude = names

	c.Organize.ReferencePrefix = strings.TrimSpace(c.Organize.ReferencePrefix)
	if c.Organize.ReferencePrefix == "" {
		c.Organize.ReferencePrefix = defaultReferencePrefix
	}
	c.Organize.ReferenceDir = strings.Trim(strings.TrimSpace(c.Organize.ReferenceDir), "/")
	if c.Organize.ReferenceDir == "" {
		c.Organize.ReferenceDir = defaultReferenceDir
	}
	c.Organize.SampleExtension = normalizeExtension(c.Organize.SampleExtension, defaultSampleExtension)
	c.Organize.ReferenceExtension = normalizeExtension(c.Organize.ReferenceExtension, defaultReferenceExtension)
	if c.Organize.MinFreeSpaceMiB == 0 {
		c.Organize.MinFreeSpaceMiB = defaultMinFreeSpaceMiB
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func normalizeExtension(ext, fallback string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return fallback
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
