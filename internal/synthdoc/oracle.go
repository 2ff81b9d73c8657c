package synthdoc

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// OracleOptions configure how price feed blocks are rendered.
type OracleOptions struct {
	// Operator is the address running the centralized oracle.
	Operator string
	// ExplorerURL is the block explorer base, e.g. https://etherscan.io.
	ExplorerURL string
	// FeedBrowserURL is the decentralized feed browser base.
	FeedBrowserURL string
	// SlugOverrides maps an asset ticker to a non-default feed slug.
	SlugOverrides map[string]string
}

// FeedSlug returns the feed browser path for asset.
func (o OracleOptions) FeedSlug(asset string) string {
	if slug, ok := o.SlugOverrides[asset]; ok {
		return slug
	}
	return strings.ToLower(asset) + "-usd"
}

// OracleBlock renders the price feed paragraph for an asset. An empty feed means
// the asset is priced by the centralized oracle.
func (o OracleOptions) OracleBlock(asset, feed string) string {
	var b strings.Builder
	if feed == "" {
		b.WriteString("**Price Feed:** Centralized oracle\n\n")
		fmt.Fprintf(&b, "This Synth is priced by the protocol's own oracle, operated by %s.\n",
			explorerLink(o.ExplorerURL, "address", o.Operator))
		return b.String()
	}
	feedURL := strings.TrimRight(o.FeedBrowserURL, "/") + "/" + o.FeedSlug(asset)
	fmt.Fprintf(&b, "**Price Feed:** Decentralized oracle ([%s / USD](%s))\n\n", asset, feedURL)
	fmt.Fprintf(&b, "Aggregator contract: %s\n", explorerLink(o.ExplorerURL, "address", feed))
	return b.String()
}

// explorerLink renders a checksummed address linked to the explorer page of the given kind.
func explorerLink(explorer, kind, address string) string {
	shown := address
	if common.IsHexAddress(address) {
		shown = common.HexToAddress(address).Hex()
	}
	return fmt.Sprintf("[%s](%s/%s/%s)", shown, strings.TrimRight(explorer, "/"), kind, shown)
}
