// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Site     SiteConfig     `toml:"site"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
	APIKey   string `toml:"api_key"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// SiteConfig points at the ClassicPress/WordPress site being exported.
type SiteConfig struct {
	URL             string       `toml:"url"`
	Name            string       `toml:"name"` // overrides the site title in file names
	Username        string       `toml:"username"`
	AppPassword     string       `toml:"app_password"`
	Timeout         Duration     `toml:"timeout"`
	Embed           *bool        `toml:"embed"`
	TermCacheTTL    Duration     `toml:"term_cache_ttl"`
	RefreshInterval Duration     `toml:"refresh_interval"` // 0 = discover custom types at start only
	CustomTypes     []CustomType `toml:"custom_types"`
}

// CustomType declares a post type that is not discovered automatically.
type CustomType struct {
	PostType string `toml:"post_type"`
	RESTBase string `toml:"rest_base"`
	Label    string `toml:"label"`
}

// Duration is a time.Duration read from strings like "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// EmbedEnabled reports whether records are fetched with _embed. Defaults to true.
func (s SiteConfig) EmbedEnabled() bool {
	return s.Embed == nil || *s.Embed
}

// Load reads, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, applying
// defaults but skipping validation and missing-variable checks.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8585
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/cpexport.db"
	}
	if c.Site.Timeout.Duration == 0 {
		c.Site.Timeout.Duration = 30 * time.Second
	}
	if c.Site.TermCacheTTL.Duration == 0 {
		c.Site.TermCacheTTL.Duration = 10 * time.Minute
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:[-?][^}]*)?\}`)

// substituteEnvVars expands environment references and reports the ones
// that could not be resolved. Unresolved references are left in place.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, modifier := groups[1], groups[2]
		value, set := os.LookupEnv(name)

		switch {
		case strings.HasPrefix(modifier, ":-"):
			if value == "" {
				return modifier[2:]
			}
			return value
		case strings.HasPrefix(modifier, ":?"):
			if value == "" {
				missing = append(missing, name+": "+modifier[2:])
				return match
			}
			return value
		}

		if !set {
			missing = append(missing, name)
			return match
		}
		return value
	})
	return out, missing
}
