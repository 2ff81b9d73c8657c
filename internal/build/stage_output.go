package build

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/synthdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/synthdocs/internal/logfields"
	"git.home.luguber.info/inful/synthdocs/internal/output"
)

func stageWriteOutput(ctx context.Context, bs *State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cfg := bs.Config
	doc := output.Document{
		Title:       cfg.Output.Title,
		Body:        bs.Body,
		Frontmatter: cfg.Output.Frontmatter,
	}
	content, err := doc.Render()
	if err != nil {
		return errors.WrapError(err, errors.CategoryRender, "render output document").Fatal().Build()
	}
	if err := output.WriteFile(cfg.Output.Path, content); err != nil {
		return err
	}
	bs.Report.OutputPath = cfg.Output.Path
	bs.Report.Written = true
	bs.Logger.Info("Wrote document", logfields.Path(cfg.Output.Path), slog.Int("bytes", len(content)))
	return nil
}
