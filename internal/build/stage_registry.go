package build

import (
	"context"

	"git.home.luguber.info/inful/synthdocs/internal/logfields"
	"git.home.luguber.info/inful/synthdocs/internal/registry"
)

func stageLoadRegistry(ctx context.Context, bs *State) error {
	cfg := bs.Config
	src := bs.Source
	if src == nil {
		fs, err := registry.OpenFile(cfg.Registry.Path, cfg.Network)
		if err != nil {
			return err
		}
		src = fs
	}

	set, err := registry.Load(ctx, src, cfg.Network, cfg.Registry.OracleRole)
	if err != nil {
		return err
	}
	bs.Registry = set
	bs.Logger.Info("Loaded registry",
		logfields.Network(set.Network),
		logfields.Count(len(set.Tokens)),
		"synths", len(set.Synths))
	return nil
}

func stageValidateRegistry(_ context.Context, bs *State) error {
	issues := registry.Validate(bs.Registry, registry.ValidateOptions{
		AllowUnmatchedTokens: bs.Config.Build.SkipUnmatchedTokens,
	})
	for _, w := range issues.Warnings() {
		bs.Logger.Warn(w.Message, logfields.Stage(string(StageValidateRegistry)), logfields.Symbol(w.Symbol))
		bs.Report.AddWarning(StageValidateRegistry, w.Symbol+": "+w.Message)
	}
	for _, e := range issues.Errors() {
		bs.Logger.Error(e.Message, logfields.Stage(string(StageValidateRegistry)), logfields.Symbol(e.Symbol))
	}
	return issues.Err()
}
