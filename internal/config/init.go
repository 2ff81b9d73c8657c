package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/synthdocs/internal/foundation/errors"
)

// Example returns the configuration written by Init.
func Example() *Config {
	return &Config{
		Network: DefaultNetwork,
		Registry: RegistryConfig{
			Path:       DefaultRegistryPath,
			OracleRole: DefaultOracleRole,
		},
		Output: OutputConfig{
			Path:        DefaultOutputPath,
			Frontmatter: true,
			Title:       DefaultTitle,
		},
		Build: BuildConfig{
			StableSymbol:  DefaultStableSymbol,
			VerifyAnchors: VerifyWarn,
		},
		Links: LinksConfig{
			Price:       DefaultPriceURL,
			FeedBrowser: DefaultFeedBrowser,
		},
		Oracle:  OracleConfig{SlugOverrides: DefaultSlugOverrides()},
		Notices: DefaultNotices(),
	}
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	data, err := yaml.Marshal(Example())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Fatal().Build()
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}
	return nil
}
