// Package config loads and validates the synthdocs YAML configuration.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/synthdocs/internal/foundation/errors"
)

// Config is the complete synthdocs configuration.
type Config struct {
	// Network selects the registry section (mainnet, kovan, ...).
	Network  string         `yaml:"network"`
	Registry RegistryConfig `yaml:"registry"`
	Output   OutputConfig   `yaml:"output"`
	Build    BuildConfig    `yaml:"build"`
	Links    LinksConfig    `yaml:"links"`
	Oracle   OracleConfig   `yaml:"oracle"`
	// Notices render a suspension warning under the section of the named asset.
	Notices []Notice      `yaml:"notices"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// RegistryConfig locates the token/synth registry file.
type RegistryConfig struct {
	Path string `yaml:"path"`
	// OracleRole is the user role whose address operates the centralized oracle.
	OracleRole string `yaml:"oracle_role"`
}

// OutputConfig controls where and how the document is written.
type OutputConfig struct {
	Path        string `yaml:"path"`
	Frontmatter bool   `yaml:"frontmatter"`
	Title       string `yaml:"title,omitempty"`
}

// BuildConfig tunes pipeline behavior.
type BuildConfig struct {
	StableSymbol        string     `yaml:"stable_symbol"`
	SkipUnmatchedTokens bool       `yaml:"skip_unmatched_tokens"`
	VerifyAnchors       VerifyMode `yaml:"verify_anchors"`
}

// LinksConfig holds the external link bases used in rendered sections.
type LinksConfig struct {
	// Explorer is the block explorer base URL; derived from Network when empty.
	Explorer string `yaml:"explorer"`
	// Price is a link template; {symbol} is replaced with the token symbol.
	Price       string `yaml:"price"`
	FeedBrowser string `yaml:"feed_browser"`
}

// OracleConfig customizes decentralized feed links.
type OracleConfig struct {
	SlugOverrides map[string]string `yaml:"slug_overrides"`
}

// Notice is a suspension warning for one asset ticker.
type Notice struct {
	Asset   string `yaml:"asset"`
	Message string `yaml:"message"`
}

// MetricsConfig enables Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// NoticeTable returns the notices keyed by asset ticker.
func (c *Config) NoticeTable() map[string]string {
	out := make(map[string]string, len(c.Notices))
	for _, n := range c.Notices {
		out[n.Asset] = n.Message
	}
	return out
}

// Load reads the configuration file at configPath. Variables from .env files
// are loaded first, ${VAR} references are expanded, defaults applied and the
// result validated. Relative registry and output paths resolve against the
// directory of configPath.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.resolvePaths(filepath.Dir(configPath))
	return cfg, nil
}

// Parse decodes, defaults and validates raw YAML configuration.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse config").
			Fatal().
			Build()
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) resolvePaths(base string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	c.Registry.Path = resolve(c.Registry.Path)
	c.Output.Path = resolve(c.Output.Path)
	c.Metrics.Textfile = resolve(c.Metrics.Textfile)
}
