package synthdoc

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/synthdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/synthdocs/internal/logfields"
	"git.home.luguber.info/inful/synthdocs/internal/registry"
)

// Options configure an Assembler for one build.
type Options struct {
	StableSymbol string
	Oracle       OracleOptions
	// PriceURL is a link template; {symbol} is replaced with the token symbol.
	PriceURL string
	// Notices maps an asset ticker to a warning rendered under its heading.
	Notices map[string]string
	// SkipUnmatchedTokens logs and skips tokens that have no synth instead of failing.
	SkipUnmatchedTokens bool
}

// Section is one rendered token section.
type Section struct {
	Symbol   string
	Name     string
	Asset    string
	Variant  Variant
	Markdown string
}

// Assembler renders registry records into markdown sections.
type Assembler struct {
	opts      Options
	describer Describer
	numbers   NumberFormatter
	logger    *slog.Logger
}

// NewAssembler builds an Assembler; a nil logger falls back to slog.Default.
func NewAssembler(opts Options, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{
		opts:      opts,
		describer: Describer{StableSymbol: opts.StableSymbol},
		numbers:   NewNumberFormatter(language.English),
		logger:    logger,
	}
}

type entry struct {
	token registry.Token
	synth registry.Synth
}

// Sections renders one section per token, ordered by display name.
func (a *Assembler) Sections(tokens []registry.Token, synths []registry.Synth) ([]Section, error) {
	bySymbol := make(map[string]registry.Synth, len(synths))
	for _, s := range synths {
		bySymbol[s.Name] = s
	}

	entries := make([]entry, 0, len(tokens))
	for _, t := range tokens {
		s, ok := bySymbol[t.Symbol]
		if !ok {
			if a.opts.SkipUnmatchedTokens {
				a.logger.Warn("Skipping token without synth", logfields.Symbol(t.Symbol))
				continue
			}
			return nil, errors.ValidationError("token has no matching synth").
				WithContext("symbol", t.Symbol).
				Build()
		}
		entries = append(entries, entry{token: t, synth: s})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].synth.Asset < entries[j].synth.Asset })
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].token.Name < entries[j].token.Name })

	sections := make([]Section, 0, len(entries))
	for _, e := range entries {
		md, err := a.render(e.token, e.synth)
		if err != nil {
			return nil, err
		}
		variant := a.describer.VariantOf(e.synth)
		a.logger.Debug("Rendered section",
			logfields.Symbol(e.token.Symbol),
			logfields.Asset(e.synth.Asset),
			logfields.Variant(string(variant)))
		sections = append(sections, Section{
			Symbol:   e.token.Symbol,
			Name:     e.token.Name,
			Asset:    e.synth.Asset,
			Variant:  variant,
			Markdown: md,
		})
	}
	return sections, nil
}

// Assemble renders the complete document body.
func (a *Assembler) Assemble(tokens []registry.Token, synths []registry.Synth) (string, error) {
	sections, err := a.Sections(tokens, synths)
	if err != nil {
		return "", err
	}
	return Join(sections), nil
}

// Join concatenates rendered sections separated by a blank line.
func Join(sections []Section) string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = s.Markdown
	}
	return strings.Join(parts, "\n")
}

func (a *Assembler) render(t registry.Token, s registry.Synth) (string, error) {
	if !common.IsHexAddress(t.Address) {
		return "", errors.ValidationError("invalid contract address").
			WithContext("symbol", t.Symbol).
			WithContext("address", t.Address).
			Build()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s (%s)\n\n", t.Name, t.Symbol)

	if msg, ok := a.opts.Notices[s.Asset]; ok {
		b.WriteString("!!! warning \"Trading Suspended\"\n\n")
		fmt.Fprintf(&b, "    %s\n\n", msg)
	}

	fmt.Fprintf(&b, "**Contract:** %s\n\n", explorerLink(a.opts.Oracle.ExplorerURL, "token", t.Address))
	fmt.Fprintf(&b, "**Decimals:** %d\n\n", t.Decimals)
	fmt.Fprintf(&b, "**Price:** [%s](%s)\n\n", t.Symbol, strings.ReplaceAll(a.opts.PriceURL, "{symbol}", t.Symbol))

	if s.Name != a.opts.StableSymbol {
		b.WriteString(a.opts.Oracle.OracleBlock(s.Asset, s.Feed))
		b.WriteString("\n")
	}

	if s.IsInverted() {
		a.writeInverse(&b, t, s)
	}
	if s.IsIndex() {
		a.writeIndex(&b, t, s)
	}

	b.WriteString("**Description:**\n\n")
	fmt.Fprintf(&b, "> %s\n", a.describer.Describe(s))
	return b.String(), nil
}

func (a *Assembler) longLink(t registry.Token, s registry.Synth) string {
	return fmt.Sprintf("[%s](#%s)", LongSymbol(s.Asset), Anchor(t.Name, s.Asset))
}

func (a *Assembler) writeInverse(b *strings.Builder, t registry.Token, s registry.Synth) {
	inv := s.Inverted
	fmt.Fprintf(b, "**Inverse of:** %s\n\n", a.longLink(t, s))
	b.WriteString("| Entry Point | Upper Limit | Lower Limit |\n")
	b.WriteString("| ----------- | ----------- | ----------- |\n")
	fmt.Fprintf(b, "| %s | %s | %s |\n\n",
		a.numbers.Format(inv.EntryPoint),
		a.numbers.Format(inv.UpperLimit),
		a.numbers.Format(inv.LowerLimit))
}

func (a *Assembler) writeIndex(b *strings.Builder, t registry.Token, s registry.Synth) {
	if s.IsInverted() {
		// the long section carries the composition table
		fmt.Fprintf(b, "**Index of:** %s\n\n", a.longLink(t, s))
		return
	}
	b.WriteString("**Index Composition:**\n\n")
	b.WriteString("| Name | Symbol | Units |\n")
	b.WriteString("| ---- | ------ | ----- |\n")
	for _, c := range s.Index {
		fmt.Fprintf(b, "| %s | %s | %s |\n", c.Name, c.Symbol, a.numbers.Format(c.Units))
	}
	b.WriteString("\n")
}
