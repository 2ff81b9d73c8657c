// Package registry models the token and synth registry that documentation is rendered from.
package registry

import "github.com/shopspring/decimal"

// Token is a deployed ERC-20 contract as listed by the registry.
type Token struct {
	Symbol   string `yaml:"symbol" json:"symbol"`
	Name     string `yaml:"name" json:"name"`
	Address  string `yaml:"address" json:"address"`
	Decimals int    `yaml:"decimals" json:"decimals"`
}

// Synth is a synthetic asset definition. Name is the synth symbol (e.g. sBTC);
// Asset is the underlying ticker (e.g. BTC).
type Synth struct {
	Name     string           `yaml:"name" json:"name"`
	Asset    string           `yaml:"asset" json:"asset"`
	Category string           `yaml:"category,omitempty" json:"category,omitempty"`
	Desc     string           `yaml:"desc" json:"desc"`
	Feed     string           `yaml:"feed,omitempty" json:"feed,omitempty"`
	Inverted *InversionParams `yaml:"inverted,omitempty" json:"inverted,omitempty"`
	Index    []IndexComponent `yaml:"index,omitempty" json:"index,omitempty"`
}

// IsInverted reports whether the synth carries inversion parameters.
func (s Synth) IsInverted() bool { return s.Inverted != nil }

// IsIndex reports whether the synth tracks a basket of components.
func (s Synth) IsIndex() bool { return len(s.Index) > 0 }

// InversionParams describe an inverse synth. Values keep the exponent they
// were written with, so 150.0 and 150 are distinguishable.
type InversionParams struct {
	EntryPoint decimal.Decimal `yaml:"entryPoint" json:"entryPoint"`
	UpperLimit decimal.Decimal `yaml:"upperLimit" json:"upperLimit"`
	LowerLimit decimal.Decimal `yaml:"lowerLimit" json:"lowerLimit"`
}

// IndexComponent is one weighted member of an index synth.
type IndexComponent struct {
	Symbol string          `yaml:"symbol" json:"symbol"`
	Name   string          `yaml:"name" json:"name"`
	Units  decimal.Decimal `yaml:"units" json:"units"`
}

// User is a privileged account listed by the registry, keyed by role.
type User struct {
	Name    string `yaml:"name" json:"name"`
	Address string `yaml:"address" json:"address"`
}

// Set is everything loaded for one network.
type Set struct {
	Network  string
	Tokens   []Token
	Synths   []Synth
	Operator string
}

// SynthsBySymbol indexes synths by their symbol.
func (s *Set) SynthsBySymbol() map[string]Synth {
	out := make(map[string]Synth, len(s.Synths))
	for _, sy := range s.Synths {
		out[sy.Name] = sy
	}
	return out
}
