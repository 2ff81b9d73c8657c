// Package testutil holds registry fixtures and file assertions shared by package tests.
package testutil

import (
	"github.com/shopspring/decimal"

	"git.home.luguber.info/inful/synthdocs/internal/registry"
)

const (
	OracleAddress = "0xac1e8b385230970319906c03a1d8567e3996d1d5"
	SUSDAddress   = "0x57ab1ec28d129707052df4df418d58a2d46d5f51"
	SBTCAddress   = "0xfe18be6b3bd88a2d2a7f928d00292e7a9963cfc6"
	IBTCAddress   = "0xd6014ea05bde904448b743833ddf07c3c7837481"
	SDEFIAddress  = "0xe1afe1fd76fd88f78cbf599ea1846231b8ba3b6b"
	IDEFIAddress  = "0x5e74c9036fb86bd7ecdcb084a0673efc32ea31cb"
	SFTSEAddress  = "0x23348160d7f5aca21195df2b70f28fce2b0be9fc"
	SXTZAddress   = "0x2e59005c5c0f0a4d77cca82653d48b46322ee5cd"
	BTCFeed       = "0xf4030086522a5beea4988f8ca5b36dbc97bee88c"
	FTSEFeed      = "0xe23fa0e8dd05d6f66a6e8c98cab2d9ae82a7550c"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func defiIndex() []registry.IndexComponent {
	return []registry.IndexComponent{
		{Symbol: "COMP", Name: "Compound", Units: dec("1.25")},
		{Symbol: "SNX", Name: "Synthetix", Units: dec("2")},
		{Symbol: "UNI", Name: "UNI", Units: dec("10")},
	}
}

// Registry returns a mainnet registry covering every description variant.
// Tokens are deliberately listed out of display-name order.
func Registry() *registry.Static {
	return &registry.Static{
		Network: "mainnet",
		Users:   []registry.User{{Name: "oracle", Address: OracleAddress}},
		Tokens: []registry.Token{
			{Symbol: "sXTZ", Name: "Tezos", Address: SXTZAddress, Decimals: 18},
			{Symbol: "iBTC", Name: "Inverse Bitcoin", Address: IBTCAddress, Decimals: 18},
			{Symbol: "sUSD", Name: "US Dollars", Address: SUSDAddress, Decimals: 18},
			{Symbol: "sBTC", Name: "Bitcoin", Address: SBTCAddress, Decimals: 18},
			{Symbol: "iDEFI", Name: "Inverse DeFi Index", Address: IDEFIAddress, Decimals: 18},
			{Symbol: "sFTSE", Name: "FTSE 100", Address: SFTSEAddress, Decimals: 18},
			{Symbol: "sDEFI", Name: "DeFi Index", Address: SDEFIAddress, Decimals: 18},
		},
		Synths: []registry.Synth{
			{Name: "sUSD", Asset: "USD", Category: "forex", Desc: "US Dollars"},
			{Name: "sBTC", Asset: "BTC", Category: "crypto", Desc: "Bitcoin", Feed: BTCFeed},
			{Name: "iBTC", Asset: "BTC", Category: "crypto", Desc: "Inverted Bitcoin", Inverted: &registry.InversionParams{
				EntryPoint: dec("9000"),
				UpperLimit: dec("13500.0"),
				LowerLimit: dec("4500"),
			}},
			{Name: "sDEFI", Asset: "DEFI", Category: "index", Desc: "DeFi Index", Index: defiIndex()},
			{Name: "iDEFI", Asset: "DEFI", Category: "index", Desc: "Inverted DeFi Index", Index: defiIndex(), Inverted: &registry.InversionParams{
				EntryPoint: dec("2500"),
				UpperLimit: dec("3750"),
				LowerLimit: dec("1250"),
			}},
			{Name: "sFTSE", Asset: "FTSE", Category: "index", Desc: "FTSE 100 Index", Feed: FTSEFeed},
			{Name: "sXTZ", Asset: "XTZ", Category: "crypto", Desc: "Tezos"},
		},
	}
}

// RegistryYAML is the YAML form of Registry, for tests that read from disk.
const RegistryYAML = `networks:
  mainnet:
    users:
      - {name: oracle, address: "` + OracleAddress + `"}
    tokens:
      - {symbol: sXTZ, name: Tezos, address: "` + SXTZAddress + `", decimals: 18}
      - {symbol: iBTC, name: Inverse Bitcoin, address: "` + IBTCAddress + `", decimals: 18}
      - {symbol: sUSD, name: US Dollars, address: "` + SUSDAddress + `", decimals: 18}
      - {symbol: sBTC, name: Bitcoin, address: "` + SBTCAddress + `", decimals: 18}
      - {symbol: iDEFI, name: Inverse DeFi Index, address: "` + IDEFIAddress + `", decimals: 18}
      - {symbol: sFTSE, name: FTSE 100, address: "` + SFTSEAddress + `", decimals: 18}
      - {symbol: sDEFI, name: DeFi Index, address: "` + SDEFIAddress + `", decimals: 18}
    synths:
      - {name: sUSD, asset: USD, category: forex, desc: US Dollars}
      - {name: sBTC, asset: BTC, category: crypto, desc: Bitcoin, feed: "` + BTCFeed + `"}
      - name: iBTC
        asset: BTC
        category: crypto
        desc: Inverted Bitcoin
        inverted: {entryPoint: 9000, upperLimit: 13500.0, lowerLimit: 4500}
      - name: sDEFI
        asset: DEFI
        category: index
        desc: DeFi Index
        index:
          - {symbol: COMP, name: Compound, units: 1.25}
          - {symbol: SNX, name: Synthetix, units: 2}
          - {symbol: UNI, name: UNI, units: 10}
      - name: iDEFI
        asset: DEFI
        category: index
        desc: Inverted DeFi Index
        inverted: {entryPoint: 2500, upperLimit: 3750, lowerLimit: 1250}
        index:
          - {symbol: COMP, name: Compound, units: 1.25}
          - {symbol: SNX, name: Synthetix, units: 2}
          - {symbol: UNI, name: UNI, units: 10}
      - {name: sFTSE, asset: FTSE, category: index, desc: FTSE 100 Index, feed: "` + FTSEFeed + `"}
      - {name: sXTZ, asset: XTZ, category: crypto, desc: Tezos}
`
