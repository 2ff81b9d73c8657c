package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractLinks_InlineLink(t *testing.T) {
	links := ExtractLinks([]byte("See [API](api.md) for details."), Options{})
	require.Len(t, links, 1)
	require.Equal(t, LinkKindInline, links[0].Kind)
	require.Equal(t, "api.md", links[0].Destination)
	require.Empty(t, links[0].Fragment())
}

func TestExtractLinks_FragmentLink(t *testing.T) {
	links := ExtractLinks([]byte("**Inverse of:** [sBTC](#bitcoin-sbtc)"), Options{})
	require.Len(t, links, 1)
	require.Equal(t, LinkKindFragment, links[0].Kind)
	require.Equal(t, "bitcoin-sbtc", links[0].Fragment())
}

func TestExtractLinks_AutoAndImage(t *testing.T) {
	links := ExtractLinks([]byte("<https://etherscan.io>\n\n![Logo](logo.png)"), Options{})
	require.Len(t, links, 2)
	require.Equal(t, LinkKindAuto, links[0].Kind)
	require.Equal(t, "https://etherscan.io", links[0].Destination)
	require.Equal(t, LinkKindImage, links[1].Kind)
}

func TestExtractLinks_SkipsCode(t *testing.T) {
	src := []byte("" +
		"Inline code: `[Link](#ignored)`\n" +
		"\n" +
		"```\n" +
		"[Link](#ignored-fence)\n" +
		"```\n" +
		"\n" +
		"Real: [OK](#real)\n")

	links := ExtractLinks(src, Options{})
	require.Len(t, links, 1)
	require.Equal(t, "#real", links[0].Destination)
}

func TestAnalyze_HeadingIDs(t *testing.T) {
	src := []byte("## Bitcoin (sBTC)\n\ntext\n\n## DeFi Index (sDEFI)\n\n## Bitcoin (sBTC)\n")
	outline := Analyze(src, Options{Tables: true})
	require.Equal(t, []string{"bitcoin-sbtc", "defi-index-sdefi", "bitcoin-sbtc-1"}, outline.HeadingIDs)
}
