// Package config loads pagenav settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagenav/internal/pagination"
)

// Environment variables that override file settings.
const (
	EnvConfigPath = "PAGENAV_CONFIG"
	EnvPerPage    = "PAGENAV_PER_PAGE"
	EnvMaxVisible = "PAGENAV_MAX_VISIBLE"
	EnvVariant    = "PAGENAV_VARIANT"
	EnvLogLevel   = "PAGENAV_LOG_LEVEL"
	EnvLogFormat  = "PAGENAV_LOG_FORMAT"
)

// CurrentSchemaVersion is written by config files this build creates.
const CurrentSchemaVersion = "1.0.0"

// supportedSchema is the range of schema versions this build can read.
const supportedSchema = "^1"

// DefaultVariant names the style variant used when none is configured.
const DefaultVariant = "default"

// Config validation errors.
var (
	ErrUnsupportedSchema = errors.New("unsupported config schema_version")
	ErrInvalidSchema     = errors.New("invalid config schema_version")
	ErrInvalidPagination = errors.New("invalid pagination config")
	ErrInvalidEnvValue   = errors.New("invalid environment override")
)

// Config is the root of the pagenav configuration file.
type Config struct {
	SchemaVersion string           `json:"schema_version" yaml:"schema_version"`
	Pagination    PaginationConfig `json:"pagination"     yaml:"pagination"`
	Logging       LoggingConfig    `json:"logging"        yaml:"logging"`
}

// PaginationConfig holds defaults for page-list rendering.
type PaginationConfig struct {
	PerPage         int    `json:"per_page"          yaml:"per_page"`
	MaxVisiblePages int    `json:"max_visible_pages" yaml:"max_visible_pages"`
	Variant         string `json:"variant"           yaml:"variant"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		Pagination: PaginationConfig{
			PerPage:         pagination.DefaultPerPage,
			MaxVisiblePages: pagination.DefaultMaxVisiblePages,
			Variant:         DefaultVariant,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPathFromEnv returns $PAGENAV_CONFIG, read through lookupEnv, or
// ~/.pagenav/config.yaml.
func DefaultPathFromEnv(lookupEnv func(string) (string, bool)) string {
	if p, ok := lookupEnv(EnvConfigPath); ok && p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".pagenav", "config.yaml")
	}
	return filepath.Join(home, ".pagenav", "config.yaml")
}

// Load reads path on top of the defaults, then applies environment overrides.
// A missing file is not an error. An empty path means DefaultPathFromEnv.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with environment variables read through lookupEnv.
func LoadWithEnv(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	if path == "" {
		path = DefaultPathFromEnv(lookupEnv)
	}

	cfg := New()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err = cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment, looked up via lookupEnv.
// An empty or blank value counts as unset.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	env := func(key string) (string, bool) {
		v, ok := lookupEnv(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := env(EnvPerPage); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnvValue, EnvPerPage, v)
		}
		c.Pagination.PerPage = n
	}
	if v, ok := env(EnvMaxVisible); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnvValue, EnvMaxVisible, v)
		}
		c.Pagination.MaxVisiblePages = n
	}
	if v, ok := env(EnvVariant); ok {
		c.Pagination.Variant = strings.ToLower(v)
	}
	if v, ok := env(EnvLogLevel); ok {
		c.Logging.Level = v
	}
	if v, ok := env(EnvLogFormat); ok {
		c.Logging.Format = v
	}
	return nil
}

// Validate checks the schema version and pagination bounds.
func (c *Config) Validate() error {
	if c.SchemaVersion != "" {
		v, err := semver.NewVersion(c.SchemaVersion)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidSchema, c.SchemaVersion, err)
		}
		constraint, err := semver.NewConstraint(supportedSchema)
		if err != nil {
			return fmt.Errorf("parsing schema constraint: %w", err)
		}
		if !constraint.Check(v) {
			return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, v, supportedSchema)
		}
	}

	p := c.Pagination
	if p.PerPage < pagination.MinPerPage || p.PerPage > pagination.MaxPerPage {
		return fmt.Errorf("%w: per_page %d out of range", ErrInvalidPagination, p.PerPage)
	}
	if p.MaxVisiblePages < pagination.MinMaxVisiblePages || p.MaxVisiblePages > pagination.MaxMaxVisiblePages {
		return fmt.Errorf("%w: max_visible_pages %d out of range", ErrInvalidPagination, p.MaxVisiblePages)
	}
	return nil
}

// Save writes c as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

//nolint:gochecknoglobals // Set once per CLI invocation, read by commands.
var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// SetGlobalConfig stores cfg for the rest of the invocation.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// GetGlobalConfig returns the stored config, or defaults if none was set.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	if globalConfig == nil {
		return New()
	}
	return globalConfig
}
