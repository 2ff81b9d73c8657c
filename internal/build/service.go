package build

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/synthdocs/internal/config"
	"git.home.luguber.info/inful/synthdocs/internal/logfields"
	"git.home.luguber.info/inful/synthdocs/internal/metrics"
	"git.home.luguber.info/inful/synthdocs/internal/registry"
)

// Service executes builds for one configuration.
type Service struct {
	cfg      *config.Config
	source   registry.Source
	logger   *slog.Logger
	recorder metrics.Recorder
	newID    func() string
}

// NewService creates a Service. A nil source reads cfg.Registry.Path on every
// run, so file edits are picked up between builds.
func NewService(cfg *config.Config, source registry.Source, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:      cfg,
		source:   source,
		logger:   logger,
		recorder: metrics.NoopRecorder{},
		newID:    func() string { return uuid.NewString() },
	}
}

// WithRecorder sets the metrics recorder.
func (s *Service) WithRecorder(r metrics.Recorder) *Service {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	s.recorder = r
	return s
}

// Pipeline returns the stages of a full build.
func (s *Service) Pipeline() []StageDef {
	return NewPipeline().
		Add(StageLoadRegistry, stageLoadRegistry).
		Add(StageValidateRegistry, stageValidateRegistry).
		Add(StageAssemble, stageAssemble).
		AddIf(s.cfg.Build.VerifyAnchors != config.VerifyOff, StageVerifyAnchors, stageVerifyAnchors).
		Add(StageWriteOutput, stageWriteOutput).
		Build()
}

// Build runs the full pipeline and writes the output document.
func (s *Service) Build(ctx context.Context) (*Report, error) {
	return s.run(ctx, s.Pipeline())
}

// Validate loads and checks the registry without rendering or writing anything.
func (s *Service) Validate(ctx context.Context) (*Report, error) {
	return s.run(ctx, NewPipeline().
		Add(StageLoadRegistry, stageLoadRegistry).
		Add(StageValidateRegistry, stageValidateRegistry).
		Build())
}

func (s *Service) run(ctx context.Context, stages []StageDef) (*Report, error) {
	id := s.newID()
	logger := s.logger.With(logfields.BuildID(id), logfields.Network(s.cfg.Network))
	report := newReport(id, s.cfg.Network)

	bs := &State{
		Config:   s.cfg,
		Source:   s.source,
		Logger:   logger,
		Recorder: s.recorder,
		Report:   report,
	}
	err := RunStages(ctx, bs, stages)

	report.Finish()
	report.DeriveOutcome()
	s.recorder.ObserveBuildDuration(report.Duration())
	s.recorder.IncBuildOutcome(metrics.BuildOutcomeLabel(report.Outcome))
	report.LogSummary(logger)
	return report, err
}
