package config

import "fmt"

const (
	DefaultNetwork      = "mainnet"
	DefaultRegistryPath = "registry.yaml"
	DefaultOracleRole   = "oracle"
	DefaultOutputPath   = "content/tokens.md"
	DefaultTitle        = "Tokens"
	DefaultStableSymbol = "sUSD"
	DefaultPriceURL     = "https://synthetix.exchange/#/synths/{symbol}"
	DefaultFeedBrowser  = "https://feeds.chain.link"
)

// DefaultSlugOverrides maps asset tickers whose feed pages are not <asset>-usd.
func DefaultSlugOverrides() map[string]string {
	return map[string]string{
		"FTSE":   "ftse-gbp",
		"NIKKEI": "n225-jpy",
	}
}

// DefaultNotices is used when the notices key is absent.
func DefaultNotices() []Notice {
	return []Notice{{
		Asset:   "XTZ",
		Message: "Trading of sXTZ and iXTZ is currently suspended.",
	}}
}

// ExplorerFor returns the Etherscan base URL for network.
func ExplorerFor(network string) string {
	if network == "" || network == DefaultNetwork {
		return "https://etherscan.io"
	}
	return fmt.Sprintf("https://%s.etherscan.io", network)
}

func applyDefaults(c *Config) {
	if c.Network == "" {
		c.Network = DefaultNetwork
	}
	if c.Registry.Path == "" {
		c.Registry.Path = DefaultRegistryPath
	}
	if c.Registry.OracleRole == "" {
		c.Registry.OracleRole = DefaultOracleRole
	}
	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}
	if c.Output.Title == "" {
		c.Output.Title = DefaultTitle
	}
	if c.Build.StableSymbol == "" {
		c.Build.StableSymbol = DefaultStableSymbol
	}
	if c.Build.VerifyAnchors == "" {
		c.Build.VerifyAnchors = VerifyWarn
	} else if m := NormalizeVerifyMode(string(c.Build.VerifyAnchors)); m != "" {
		c.Build.VerifyAnchors = m
	}
	if c.Links.Explorer == "" {
		c.Links.Explorer = ExplorerFor(c.Network)
	}
	if c.Links.Price == "" {
		c.Links.Price = DefaultPriceURL
	}
	if c.Links.FeedBrowser == "" {
		c.Links.FeedBrowser = DefaultFeedBrowser
	}
	if c.Oracle.SlugOverrides == nil {
		c.Oracle.SlugOverrides = DefaultSlugOverrides()
	}
	if c.Notices == nil {
		c.Notices = DefaultNotices()
	}
}
