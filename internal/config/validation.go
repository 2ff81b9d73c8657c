package config

import (
	"net/url"
	"strings"

	"git.home.luguber.info/inful/synthdocs/internal/foundation/errors"
)

// Validate checks the defaulted configuration.
func (c *Config) Validate() error {
	if NormalizeVerifyMode(string(c.Build.VerifyAnchors)) == "" {
		return invalid("build.verify_anchors must be one of off, warn, error", string(c.Build.VerifyAnchors))
	}
	if strings.ContainsAny(c.Network, " /") {
		return invalid("network must be a single name", c.Network)
	}
	for _, f := range []struct{ field, raw string }{
		{"links.explorer", c.Links.Explorer},
		{"links.feed_browser", c.Links.FeedBrowser},
		{"links.price", c.Links.Price},
	} {
		if err := validateURL(f.field, f.raw); err != nil {
			return err
		}
	}
	if !strings.Contains(c.Links.Price, "{symbol}") {
		return invalid("links.price must contain the {symbol} placeholder", c.Links.Price)
	}
	seen := make(map[string]bool, len(c.Notices))
	for _, n := range c.Notices {
		if strings.TrimSpace(n.Asset) == "" || strings.TrimSpace(n.Message) == "" {
			return invalid("notices entries need both asset and message", n.Asset)
		}
		if seen[n.Asset] {
			return invalid("duplicate notice asset", n.Asset)
		}
		seen[n.Asset] = true
	}
	return nil
}

func validateURL(field, raw string) error {
	u, err := url.Parse(strings.ReplaceAll(raw, "{symbol}", "x"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.ConfigError(field+" must be an absolute URL").
			WithContext("value", raw).
			Build()
	}
	return nil
}

func invalid(msg, value string) error {
	return errors.ConfigError(msg).WithContext("value", value).Build()
}
