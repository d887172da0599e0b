package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mchmarny/qfair/pkg/fairness"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"
	dirMode        = 0700
	fileMode       = 0600

	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents app config object.
type Config struct {
	UpperLimit int    `json:"upper_limit" yaml:"upper_limit"`
	Format     string `json:"format" yaml:"format"`
	LogLevel   string `json:"log_level" yaml:"log_level"`
}

// Default returns the config used when none was saved yet.
func Default() *Config {
	return &Config{
		UpperLimit: fairness.DefaultUpperLimit,
		Format:     FormatJSON,
		LogLevel:   "info",
	}
}

// Scale returns the quality score scale described by the config.
func (c *Config) Scale() fairness.Scale {
	return fairness.Scale{UpperLimit: c.UpperLimit}
}

// Validate checks the config values.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config required")
	}
	if err := c.Scale().Validate(); err != nil {
		return errors.Wrap(err, "invalid upper_limit")
	}
	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		return errors.Errorf("invalid format: %s (expected %s or %s)", c.Format, FormatJSON, FormatYAML)
	}
	return nil
}

// NormalizeFormat maps format aliases onto the supported output formats.
func NormalizeFormat(f string) string {
	switch strings.ToLower(strings.TrimSpace(f)) {
	case "yaml", "yml":
		return FormatYAML
	case "json", "":
		return FormatJSON
	default:
		return f
	}
}

// Save writes config into the config file in dirPath.
func Save(dirPath string, c *Config) error {
	if dirPath == "" {
		return errors.New("config directory required")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	path := filepath.Join(dirPath, configFileName)
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file: %s", configFileName)
	}
	return nil
}

// ReadOrCreate reads app config from directory or creates a new one.
func ReadOrCreate(dirPath string) (*Config, error) {
	if dirPath == "" {
		return nil, errors.New("config directory required")
	}

	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dirPath, dirMode); err != nil {
			return nil, errors.Wrapf(err, "failed to create dir: %s", dirPath)
		}
	}

	path := filepath.Join(dirPath, configFileName)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating default config", "path", path)
		if err := Save(dirPath, Default()); err != nil {
			return nil, errors.Wrap(err, "failed to create default config")
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file: %s", path)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling config file: %s", path)
	}
	c.Format = NormalizeFormat(c.Format)

	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file: %s", path)
	}
	return c, nil
}

// GetOrCreateHomeDir returns the app directory in the home directory of the
// current user. The created flag is set to true if the directory was created.
func GetOrCreateHomeDir(name string) (path string, created bool, err error) {
	if name == "" {
		return "", false, errors.New("name cannot be empty")
	}

	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, errors.Wrap(err, "failed to get user home dir")
	}
	slog.Debug("home dir", "path", home)

	dir := filepath.Join(home, name)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating dir", "path", dir)
		if err := os.Mkdir(dir, dirMode); err != nil {
			return "", false, errors.Wrapf(err, "failed to create dir: %s", dir)
		}
		created = true
	}
	return dir, created, nil
}
