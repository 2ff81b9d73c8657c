package build

import (
	"log/slog"

	"git.home.luguber.info/inful/synthdocs/internal/config"
	"git.home.luguber.info/inful/synthdocs/internal/metrics"
	"git.home.luguber.info/inful/synthdocs/internal/registry"
	"git.home.luguber.info/inful/synthdocs/internal/synthdoc"
)

// State is shared by the stages of one build. Stages fill it in order.
type State struct {
	Config   *config.Config
	Source   registry.Source
	Logger   *slog.Logger
	Recorder metrics.Recorder
	Report   *Report

	Registry *registry.Set      // load_registry
	Sections []synthdoc.Section // assemble
	Body     string             // assemble
}
