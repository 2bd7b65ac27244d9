package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-assetkit/internal/dateutil"
	"github.com/alnah/go-assetkit/internal/fileutil"
	"github.com/alnah/go-assetkit/internal/logging"
	"github.com/alnah/go-assetkit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory under the user config dir searched for named configs.
const AppDir = "go-assetkit"

// Field limits.
const (
	MaxCollectionNameLength = 50
	MaxPathLength           = 4096
	MaxTitleLength          = 200
	MaxStyleNameLength      = 50
	MaxColumns              = 12
	MaxWorkers              = 64
)

// Config holds all configuration of the CLI.
type Config struct {
	Logging     LoggingConfig               `yaml:"logging"`
	Collections map[string]CollectionConfig `yaml:"collections"`
	Gallery     GalleryConfig               `yaml:"gallery"`
	Verify      VerifyConfig                `yaml:"verify"`
}

// LoggingConfig defines log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error (default: warn)
	Format string `yaml:"format"` // "console" or "json" (default: console)
}

// CollectionConfig defines per-collection overrides.
type CollectionConfig struct {
	Dir string `yaml:"dir"` // Directory layered over the embedded files
}

// GalleryConfig defines gallery export defaults.
type GalleryConfig struct {
	Title      string `yaml:"title"`      // Empty = collection name
	Date       string `yaml:"date"`       // "auto", "auto:FORMAT" or literal text
	Columns    int    `yaml:"columns"`    // 1-12 (default: 4)
	ShowSource bool   `yaml:"showSource"` // Append highlighted SVG sources
	Style      string `yaml:"style"`      // chroma style for sources (default: github)
	Theme      string `yaml:"theme"`      // Embedded stylesheet (default: default)
}

// VerifyConfig defines verify command defaults.
type VerifyConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// Validate checks field lengths, enums and ranges.
// Called automatically by LoadConfig, but available for configs built in code.
func (c *Config) Validate() error {
	if c.Logging.Level != "" {
		if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("%w: logging.level: %v", ErrInvalidValue, err)
		}
	}
	if c.Logging.Format != "" {
		if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
			return fmt.Errorf("%w: logging.format: %v", ErrInvalidValue, err)
		}
	}

	for name, col := range c.Collections {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: collections: empty collection name", ErrInvalidValue)
		}
		if err := validateFieldLength("collections name", name, MaxCollectionNameLength); err != nil {
			return err
		}
		if err := validateFieldLength("collections."+name+".dir", col.Dir, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("gallery.title", c.Gallery.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("gallery.date", c.Gallery.Date, MaxTitleLength); err != nil {
		return err
	}
	if _, err := dateutil.Stamp(c.Gallery.Date, time.Now()); err != nil {
		return fmt.Errorf("%w: gallery.date: %v", ErrInvalidValue, err)
	}
	if err := validateFieldLength("gallery.style", c.Gallery.Style, MaxStyleNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("gallery.theme", c.Gallery.Theme, MaxStyleNameLength); err != nil {
		return err
	}
	if c.Gallery.Columns != 0 && (c.Gallery.Columns < 1 || c.Gallery.Columns > MaxColumns) {
		return fmt.Errorf("%w: gallery.columns: must be between 1 and %d, got %d", ErrInvalidValue, MaxColumns, c.Gallery.Columns)
	}

	if c.Verify.Workers < 0 || c.Verify.Workers > MaxWorkers {
		return fmt.Errorf("%w: verify.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Verify.Workers)
	}

	return nil
}

// CollectionDir returns the configured directory of a collection, or "".
func (c *Config) CollectionDir(name string) string {
	return c.Collections[name].Dir
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Logging:     LoggingConfig{Level: "warn", Format: logging.FormatConsole},
		Collections: map[string]CollectionConfig{},
		Gallery:     GalleryConfig{Columns: 4},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched as name.yaml or name.yml in the working directory,
// then in the user config directory under go-assetkit/.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in search order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
