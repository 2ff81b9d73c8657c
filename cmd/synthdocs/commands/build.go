package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/synthdocs/internal/build"
	"git.home.luguber.info/inful/synthdocs/internal/config"
	"git.home.luguber.info/inful/synthdocs/internal/logfields"
	"git.home.luguber.info/inful/synthdocs/internal/metrics"
	"git.home.luguber.info/inful/synthdocs/internal/watch"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output      string `short:"o" help:"Override output.path" type:"path"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics to this textfile after each build" type:"path"`
	Watch       bool   `short:"w" help:"Rebuild when the configuration or registry file changes"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := b.loadConfig(root.Config)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := newBuildRunner(g.logger(), g.out())
	if !b.Watch {
		return r.build(ctx, cfg)
	}
	return b.watch(ctx, r, root.Config, cfg)
}

func (b *BuildCmd) loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if b.Output != "" {
		cfg.Output.Path = b.Output
	}
	if b.MetricsFile != "" {
		cfg.Metrics.Textfile = b.MetricsFile
	}
	return cfg, nil
}

// watch builds once, then rebuilds on every change until ctx is canceled.
// Failed builds and invalid configuration edits are logged and the previous
// output is kept.
func (b *BuildCmd) watch(ctx context.Context, r *buildRunner, configPath string, cfg *config.Config) error {
	w, err := watch.New([]string{configPath, cfg.Registry.Path}, watch.DefaultDebounce, r.logger)
	if err != nil {
		return err
	}
	if err := r.build(ctx, cfg); err != nil {
		r.logger.Error("Build failed; waiting for changes", logfields.Error(err))
	}
	r.logger.Info("Watching for changes", logfields.Path(configPath), slog.String("registry", cfg.Registry.Path))

	return w.Run(ctx, func(ctx context.Context) {
		next, err := b.loadConfig(configPath)
		if err != nil {
			r.logger.Error("Configuration reload failed; keeping previous", logfields.Error(err))
		} else {
			if next.Registry.Path != cfg.Registry.Path {
				r.logger.Warn("registry.path changed; restart to watch the new file", logfields.Path(next.Registry.Path))
			}
			cfg = next
		}
		if err := r.build(ctx, cfg); err != nil {
			r.logger.Error("Build failed; waiting for changes", logfields.Error(err))
		}
	})
}

// buildRunner keeps one metrics registry across builds so watch mode
// accumulates counters.
type buildRunner struct {
	logger   *slog.Logger
	out      io.Writer
	registry *prom.Registry
	recorder metrics.Recorder
}

func newBuildRunner(logger *slog.Logger, out io.Writer) *buildRunner {
	reg := prom.NewRegistry()
	return &buildRunner{
		logger:   logger,
		out:      out,
		registry: reg,
		recorder: metrics.NewPrometheusRecorder(reg),
	}
}

func (r *buildRunner) build(ctx context.Context, cfg *config.Config) error {
	report, err := build.NewService(cfg, nil, r.logger).WithRecorder(r.recorder).Build(ctx)
	if mErr := metrics.WriteTextfile(cfg.Metrics.Textfile, r.registry); mErr != nil {
		r.logger.Warn("Failed to write metrics textfile", logfields.Error(mErr))
	}
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(r.out, "Wrote %s (%d sections, %d warnings)\n", report.OutputPath, report.Sections, len(report.Warnings))
	return nil
}
