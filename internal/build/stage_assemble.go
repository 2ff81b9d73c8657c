package build

import (
	"context"

	"git.home.luguber.info/inful/synthdocs/internal/synthdoc"
)

func assemblerOptions(bs *State) synthdoc.Options {
	cfg := bs.Config
	return synthdoc.Options{
		StableSymbol: cfg.Build.StableSymbol,
		Oracle: synthdoc.OracleOptions{
			Operator:       bs.Registry.Operator,
			ExplorerURL:    cfg.Links.Explorer,
			FeedBrowserURL: cfg.Links.FeedBrowser,
			SlugOverrides:  cfg.Oracle.SlugOverrides,
		},
		PriceURL:            cfg.Links.Price,
		Notices:             cfg.NoticeTable(),
		SkipUnmatchedTokens: cfg.Build.SkipUnmatchedTokens,
	}
}

func stageAssemble(ctx context.Context, bs *State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	asm := synthdoc.NewAssembler(assemblerOptions(bs), bs.Logger)
	sections, err := asm.Sections(bs.Registry.Tokens, bs.Registry.Synths)
	if err != nil {
		return err
	}

	bs.Sections = sections
	bs.Body = synthdoc.Join(sections)
	bs.Report.Sections = len(sections)
	for _, s := range sections {
		bs.Report.SectionsByVariant[s.Variant]++
	}
	for v, n := range bs.Report.SectionsByVariant {
		bs.Recorder.AddSections(string(v), n)
	}
	return nil
}
