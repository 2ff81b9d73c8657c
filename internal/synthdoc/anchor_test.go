package synthdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnchor(t *testing.T) {
	tests := []struct {
		name  string
		asset string
		want  string
	}{
		{name: "Inverse Bitcoin", asset: "BTC", want: "bitcoin-sbtc"},
		{name: "Inverse DeFi Index", asset: "DEFI", want: "defi-index-sdefi"},
		{name: "Synth Ether", asset: "ETH", want: "ether-seth"},
		{name: "iETH", asset: "ETH", want: "seth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Anchor(tt.name, tt.asset))
		})
	}
	assert.Equal(t, "sBTC", LongSymbol("BTC"))
}
