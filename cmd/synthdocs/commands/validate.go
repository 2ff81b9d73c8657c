package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/synthdocs/internal/build"
	"git.home.luguber.info/inful/synthdocs/internal/config"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	AllowUnmatched bool `name:"allow-unmatched" help:"Report tokens without a synth as warnings"`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	if v.AllowUnmatched {
		cfg.Build.SkipUnmatchedTokens = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := build.NewService(cfg, nil, g.logger()).Validate(ctx)
	if err != nil {
		return err
	}
	out := g.out()
	for _, w := range report.Warnings {
		_, _ = fmt.Fprintf(out, "warning: %s\n", w.Message)
	}
	_, _ = fmt.Fprintf(out, "registry %s is valid (%d warnings)\n", cfg.Registry.Path, len(report.Warnings))
	return nil
}
