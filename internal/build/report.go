package build

import (
	"log/slog"
	"sort"
	"time"

	"git.home.luguber.info/inful/synthdocs/internal/logfields"
	"git.home.luguber.info/inful/synthdocs/internal/markdown"
	"git.home.luguber.info/inful/synthdocs/internal/metrics"
	"git.home.luguber.info/inful/synthdocs/internal/synthdoc"
)

// Outcome is the typed enumeration of final build result states.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeWarning  Outcome = "warning"
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
)

// Warning is a non-fatal finding recorded by a stage.
type Warning struct {
	Stage   StageName
	Message string
}

// Report captures what happened during one build.
type Report struct {
	BuildID    string
	Network    string
	OutputPath string
	Start      time.Time
	End        time.Time

	StageDurations map[StageName]time.Duration
	StageResults   map[StageName]metrics.ResultLabel
	// Stages lists executed stages in order.
	Stages []StageName

	Errors   []error
	Warnings []Warning

	Sections          int
	SectionsByVariant map[synthdoc.Variant]int
	BrokenAnchors     []markdown.BrokenAnchor
	// Written is true once the output file has been replaced.
	Written bool

	Outcome Outcome
}

func newReport(buildID, network string) *Report {
	return &Report{
		BuildID:           buildID,
		Network:           network,
		Start:             time.Now(),
		StageDurations:    make(map[StageName]time.Duration),
		StageResults:      make(map[StageName]metrics.ResultLabel),
		SectionsByVariant: make(map[synthdoc.Variant]int),
	}
}

// AddWarning records a non-fatal finding.
func (r *Report) AddWarning(stage StageName, msg string) {
	r.Warnings = append(r.Warnings, Warning{Stage: stage, Message: msg})
}

// RecordStageResult stores the stage result and forwards it to recorder.
func (r *Report) RecordStageResult(stage StageName, res metrics.ResultLabel, recorder metrics.Recorder) {
	r.StageResults[stage] = res
	r.Stages = append(r.Stages, stage)
	if recorder != nil {
		recorder.IncStageResult(string(stage), res)
	}
}

// DeriveOutcome sets Outcome from the recorded stage results.
func (r *Report) DeriveOutcome() {
	r.Outcome = OutcomeSuccess
	for _, res := range r.StageResults {
		switch res {
		case metrics.ResultCanceled:
			r.Outcome = OutcomeCanceled
			return
		case metrics.ResultFatal:
			r.Outcome = OutcomeFailed
		}
	}
	if r.Outcome == OutcomeSuccess && len(r.Warnings) > 0 {
		r.Outcome = OutcomeWarning
	}
}

// Finish sets the end time of the report.
func (r *Report) Finish() { r.End = time.Now() }

// Duration is the wall time between Start and End.
func (r *Report) Duration() time.Duration { return r.End.Sub(r.Start) }

// LogSummary writes the end-of-build report.
func (r *Report) LogSummary(logger *slog.Logger) {
	variants := make([]string, 0, len(r.SectionsByVariant))
	for v := range r.SectionsByVariant {
		variants = append(variants, string(v))
	}
	sort.Strings(variants)
	byVariant := make([]any, 0, len(variants))
	for _, v := range variants {
		byVariant = append(byVariant, slog.Int(v, r.SectionsByVariant[synthdoc.Variant(v)]))
	}

	stages := make([]any, 0, len(r.Stages))
	for _, s := range r.Stages {
		stages = append(stages, slog.Float64(string(s), ms(r.StageDurations[s])))
	}

	logger.Info("Build finished",
		slog.String("outcome", string(r.Outcome)),
		logfields.DurationMS(ms(r.Duration())),
		logfields.Count(r.Sections),
		slog.Int("warnings", len(r.Warnings)),
		slog.Bool("written", r.Written),
		slog.Group("sections", byVariant...),
		slog.Group("stage_ms", stages...))
}

func ms(d time.Duration) float64 { return float64(d.Microseconds()) / 1000 }
