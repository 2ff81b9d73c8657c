package synthdoc

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/synthdocs/internal/registry"
)

// Variant names which description branch a synth takes.
type Variant string

const (
	VariantStable   Variant = "stable"
	VariantInverted Variant = "inverted"
	VariantIndex    Variant = "index"
	VariantPlain    Variant = "plain"
)

const (
	stableDescription = "Tracks the price of a single US Dollar (USD). This Synth always remains at a value of 1 USD and is not priced by an oracle."

	inverseTrailer = "Once either limit is reached the Synth's price is frozen and it can no longer be exchanged into, " +
		"though it can still be exchanged out of. A frozen inverse Synth is eventually purged and replaced " +
		"by a new one with a fresh entry point and limits."

	oracleSuffix = "through price feeds supplied by an oracle."
)

// Describer produces the prose description of a synth.
type Describer struct {
	StableSymbol string
}

// VariantOf classifies a synth. Stable wins over everything, inversion wins over index.
func (d Describer) VariantOf(s registry.Synth) Variant {
	switch {
	case s.Name == d.StableSymbol:
		return VariantStable
	case s.IsInverted():
		return VariantInverted
	case s.IsIndex():
		return VariantIndex
	default:
		return VariantPlain
	}
}

// Describe returns the description sentence for s.
func (d Describer) Describe(s registry.Synth) string {
	switch d.VariantOf(s) {
	case VariantStable:
		return stableDescription
	case VariantInverted:
		return describeInverted(s)
	case VariantIndex:
		return describeIndex(s)
	default:
		return fmt.Sprintf("Tracks the price of %s %s", subject(s.Desc, s.Asset), oracleSuffix)
	}
}

func describeInverted(s registry.Synth) string {
	underlying := strings.TrimPrefix(s.Desc, "Inverted ")
	inv := s.Inverted
	return fmt.Sprintf(
		"Inversely tracks the price of %s %s Entry point: $%s. "+
			"Upper limit: $%s (reached when %s falls to $%s). "+
			"Lower limit: $%s (reached when %s rises to $%s). %s",
		subject(underlying, s.Asset), oracleSuffix,
		Literal(inv.EntryPoint),
		Literal(inv.UpperLimit), s.Asset, Threshold(inv.EntryPoint, inv.UpperLimit),
		Literal(inv.LowerLimit), s.Asset, Threshold(inv.EntryPoint, inv.LowerLimit),
		inverseTrailer,
	)
}

func describeIndex(s registry.Synth) string {
	parts := make([]string, len(s.Index))
	for i, c := range s.Index {
		part := Literal(c.Units) + " of " + c.Symbol
		if c.Name != c.Symbol {
			part += " (" + c.Name + ")"
		}
		parts[i] = part
	}
	return fmt.Sprintf("Tracks the price of the %s %s The index is composed of %s.",
		subject(s.Desc, s.Asset), oracleSuffix, strings.Join(parts, ", "))
}

// subject names the underlying, adding the ticker when it differs from the name.
func subject(name, asset string) string {
	if name != asset {
		return name + " (" + asset + ")"
	}
	return name
}
