package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/synthdocs/internal/foundation/errors"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultNetwork, cfg.Network)
	assert.Equal(t, DefaultRegistryPath, cfg.Registry.Path)
	assert.Equal(t, DefaultOracleRole, cfg.Registry.OracleRole)
	assert.Equal(t, DefaultOutputPath, cfg.Output.Path)
	assert.False(t, cfg.Output.Frontmatter)
	assert.Equal(t, DefaultStableSymbol, cfg.Build.StableSymbol)
	assert.Equal(t, VerifyWarn, cfg.Build.VerifyAnchors)
	assert.Equal(t, "https://etherscan.io", cfg.Links.Explorer)
	assert.Equal(t, DefaultSlugOverrides(), cfg.Oracle.SlugOverrides)
	assert.Equal(t, map[string]string{"XTZ": DefaultNotices()[0].Message}, cfg.NoticeTable())
}

func TestParse_Overrides(t *testing.T) {
	raw := `
network: kovan
build:
  stable_symbol: sEUR
  skip_unmatched_tokens: true
  verify_anchors: ERROR
links:
  price: https://example.org/price/{symbol}
oracle:
  slug_overrides:
    JPY: jpy-usd-custom
notices:
  - asset: LINK
    message: Paused.
`
	cfg, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "kovan", cfg.Network)
	assert.Equal(t, "https://kovan.etherscan.io", cfg.Links.Explorer)
	assert.Equal(t, "sEUR", cfg.Build.StableSymbol)
	assert.True(t, cfg.Build.SkipUnmatchedTokens)
	assert.Equal(t, VerifyError, cfg.Build.VerifyAnchors)
	assert.Equal(t, map[string]string{"JPY": "jpy-usd-custom"}, cfg.Oracle.SlugOverrides)
	assert.Equal(t, map[string]string{"LINK": "Paused."}, cfg.NoticeTable())
}

func TestParse_ExpandsEnvironment(t *testing.T) {
	t.Setenv("SYNTHDOCS_TEST_NETWORK", "rinkeby")
	cfg, err := Parse([]byte("network: ${SYNTHDOCS_TEST_NETWORK}\n"))
	require.NoError(t, err)
	assert.Equal(t, "rinkeby", cfg.Network)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed yaml", "network: [\n"},
		{"unknown verify mode", "build:\n  verify_anchors: sometimes\n"},
		{"price without placeholder", "links:\n  price: https://example.org/price\n"},
		{"relative explorer", "links:\n  explorer: etherscan.io\n"},
		{"notice without message", "notices:\n  - asset: XTZ\n"},
		{"duplicate notice", "notices:\n  - {asset: XTZ, message: a}\n  - {asset: XTZ, message: b}\n"},
		{"network with slash", "network: main/net\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryConfig), "got %v", err)
		})
	}
}

func TestLoad_ResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "synthdocs.yaml")
	raw := "registry:\n  path: data/registry.yaml\noutput:\n  path: /abs/tokens.md\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "registry.yaml"), cfg.Registry.Path)
	assert.Equal(t, "/abs/tokens.md", cfg.Output.Path)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestExplorerFor(t *testing.T) {
	assert.Equal(t, "https://etherscan.io", ExplorerFor(""))
	assert.Equal(t, "https://etherscan.io", ExplorerFor("mainnet"))
	assert.Equal(t, "https://ropsten.etherscan.io", ExplorerFor("ropsten"))
}

func TestNormalizeVerifyMode(t *testing.T) {
	tests := []struct {
		input    string
		expected VerifyMode
	}{
		{"off", VerifyOff},
		{"WARN", VerifyWarn},
		{"  error ", VerifyError},
		{"strict", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeVerifyMode(tt.input), tt.input)
	}
}
