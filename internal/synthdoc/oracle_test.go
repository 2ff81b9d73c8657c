package synthdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testOracle() OracleOptions {
	return OracleOptions{
		Operator:       "0xac1e8b385230970319906c03a1d8567e3996d1d5",
		ExplorerURL:    "https://etherscan.io",
		FeedBrowserURL: "https://feeds.chain.link/",
		SlugOverrides:  map[string]string{"FTSE": "ftse-gbp", "NIKKEI": "n225-jpy"},
	}
}

func TestFeedSlug(t *testing.T) {
	o := testOracle()
	assert.Equal(t, "ftse-gbp", o.FeedSlug("FTSE"))
	assert.Equal(t, "n225-jpy", o.FeedSlug("NIKKEI"))
	assert.Equal(t, "btc-usd", o.FeedSlug("BTC"))
	assert.Equal(t, "xau-usd", o.FeedSlug("XAU"))
}

func TestOracleBlock_Centralized(t *testing.T) {
	got := testOracle().OracleBlock("XTZ", "")
	want := "**Price Feed:** Centralized oracle\n\n" +
		"This Synth is priced by the protocol's own oracle, operated by " +
		"[0xac1e8B385230970319906C03A1d8567e3996d1d5](https://etherscan.io/address/0xac1e8B385230970319906C03A1d8567e3996d1d5).\n"
	assert.Equal(t, want, got)
}

func TestOracleBlock_Decentralized(t *testing.T) {
	got := testOracle().OracleBlock("FTSE", "0xf4030086522a5beea4988f8ca5b36dbc97bee88c")
	want := "**Price Feed:** Decentralized oracle ([FTSE / USD](https://feeds.chain.link/ftse-gbp))\n\n" +
		"Aggregator contract: [0xF4030086522a5bEEa4988F8cA5B36dbC97BeE88c](https://etherscan.io/address/0xF4030086522a5bEEa4988F8cA5B36dbC97BeE88c)\n"
	assert.Equal(t, want, got)
}
