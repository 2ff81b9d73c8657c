package build

import (
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/synthdocs/internal/config"
	"git.home.luguber.info/inful/synthdocs/internal/metrics"
)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func testConfig(t *testing.T, mut ...func(*config.Config)) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte("{}\n"))
	require.NoError(t, err)
	cfg.Output.Path = filepath.Join(t.TempDir(), "content", "tokens.md")
	for _, m := range mut {
		m(cfg)
	}
	return cfg
}

type testRecorder struct {
	mu             sync.Mutex
	stageDurations map[string]int
	stageResults   map[string]metrics.ResultLabel
	buildDurations int
	outcomes       []metrics.BuildOutcomeLabel
	sections       map[string]int
	brokenAnchors  int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{
		stageDurations: map[string]int{},
		stageResults:   map[string]metrics.ResultLabel{},
		sections:       map[string]int{},
		brokenAnchors:  -1,
	}
}

func (r *testRecorder) ObserveStageDuration(stage string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stageDurations[stage]++
}

func (r *testRecorder) ObserveBuildDuration(time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buildDurations++
}

func (r *testRecorder) IncStageResult(stage string, res metrics.ResultLabel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stageResults[stage] = res
}

func (r *testRecorder) IncBuildOutcome(o metrics.BuildOutcomeLabel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

func (r *testRecorder) AddSections(variant string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sections[variant] += n
}

func (r *testRecorder) SetBrokenAnchors(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.brokenAnchors = n
}
