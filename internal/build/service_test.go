package build

import (
	"context"
	stdErrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/synthdocs/internal/config"
	"git.home.luguber.info/inful/synthdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/synthdocs/internal/markdown"
	"git.home.luguber.info/inful/synthdocs/internal/metrics"
	"git.home.luguber.info/inful/synthdocs/internal/output"
	"git.home.luguber.info/inful/synthdocs/internal/registry"
	"git.home.luguber.info/inful/synthdocs/internal/synthdoc"
	"git.home.luguber.info/inful/synthdocs/internal/testutil"
)

func allStages() []StageName {
	return []StageName{StageLoadRegistry, StageValidateRegistry, StageAssemble, StageVerifyAnchors, StageWriteOutput}
}

func withoutToken(src *registry.Static, symbol string) *registry.Static {
	kept := src.Tokens[:0]
	for _, t := range src.Tokens {
		if t.Symbol != symbol {
			kept = append(kept, t)
		}
	}
	src.Tokens = kept
	return src
}

func TestService_Build(t *testing.T) {
	cfg := testConfig(t)
	rec := newTestRecorder()
	svc := NewService(cfg, testutil.Registry(), discardLogger()).WithRecorder(rec)

	report, err := svc.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, report.Outcome)
	assert.True(t, report.Written)
	assert.Equal(t, cfg.Output.Path, report.OutputPath)
	assert.NotEmpty(t, report.BuildID)
	if diff := cmp.Diff(allStages(), report.Stages); diff != "" {
		t.Fatalf("stage order mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 7, report.Sections)
	assert.Equal(t, map[synthdoc.Variant]int{
		synthdoc.VariantStable:   1,
		synthdoc.VariantInverted: 2,
		synthdoc.VariantIndex:    1,
		synthdoc.VariantPlain:    3,
	}, report.SectionsByVariant)

	body := testutil.ReadFile(t, cfg.Output.Path)
	assert.True(t, strings.HasPrefix(body, "## Bitcoin (sBTC)\n"))
	assert.Contains(t, body, "!!! warning \"Trading Suspended\"")
	assert.Empty(t, report.BrokenAnchors)

	assert.Equal(t, []metrics.BuildOutcomeLabel{metrics.BuildOutcomeSuccess}, rec.outcomes)
	assert.Equal(t, 1, rec.buildDurations)
	assert.Equal(t, 2, rec.sections["inverted"])
	assert.Equal(t, 0, rec.brokenAnchors)
	for _, st := range allStages() {
		assert.Equal(t, metrics.ResultSuccess, rec.stageResults[string(st)], st)
		assert.Equal(t, 1, rec.stageDurations[string(st)], st)
	}
}

func TestService_BuildFromRegistryFile(t *testing.T) {
	dir := t.TempDir()
	regPath := testutil.WriteFile(t, dir, "registry.yaml", testutil.RegistryYAML)

	fromFile := testConfig(t, func(c *config.Config) { c.Registry.Path = regPath })
	_, err := NewService(fromFile, nil, discardLogger()).Build(context.Background())
	require.NoError(t, err)

	static := testConfig(t)
	_, err = NewService(static, testutil.Registry(), discardLogger()).Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testutil.ReadFile(t, static.Output.Path), testutil.ReadFile(t, fromFile.Output.Path))
}

func TestService_BuildIsDeterministic(t *testing.T) {
	cfg := testConfig(t, func(c *config.Config) { c.Output.Frontmatter = true })
	svc := NewService(cfg, testutil.Registry(), discardLogger())

	_, err := svc.Build(context.Background())
	require.NoError(t, err)
	first := testutil.ReadFile(t, cfg.Output.Path)

	_, err = svc.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, testutil.ReadFile(t, cfg.Output.Path))
}

func TestService_BuildWithFrontmatter(t *testing.T) {
	cfg := testConfig(t, func(c *config.Config) {
		c.Output.Frontmatter = true
		c.Output.Title = "Synth Tokens"
	})
	_, err := NewService(cfg, testutil.Registry(), discardLogger()).Build(context.Background())
	require.NoError(t, err)

	fields, body, err := output.SplitFrontmatter([]byte(testutil.ReadFile(t, cfg.Output.Path)))
	require.NoError(t, err)
	assert.Equal(t, "Synth Tokens", fields["title"])
	assert.NotEmpty(t, fields["fingerprint"])
	assert.True(t, strings.HasPrefix(string(body), "## Bitcoin (sBTC)\n"))
}

func TestService_ValidationFailureKeepsPreviousOutput(t *testing.T) {
	cfg := testConfig(t)
	testutil.WriteFile(t, filepath.Dir(cfg.Output.Path), filepath.Base(cfg.Output.Path), "previous\n")

	src := testutil.Registry()
	src.Tokens[0].Address = "0x1234"
	report, err := NewService(cfg, src, discardLogger()).Build(context.Background())
	require.Error(t, err)

	var se *StageError
	require.True(t, stdErrors.As(err, &se))
	assert.Equal(t, StageValidateRegistry, se.Stage)
	assert.Equal(t, StageErrorFatal, se.Kind)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))

	assert.Equal(t, OutcomeFailed, report.Outcome)
	assert.False(t, report.Written)
	assert.Equal(t, []StageName{StageLoadRegistry, StageValidateRegistry}, report.Stages)
	assert.Equal(t, "previous\n", testutil.ReadFile(t, cfg.Output.Path))
}

func TestService_MissingRegistryFile(t *testing.T) {
	cfg := testConfig(t, func(c *config.Config) { c.Registry.Path = filepath.Join(t.TempDir(), "missing.yaml") })
	_, err := NewService(cfg, nil, discardLogger()).Build(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryRegistry))
	testutil.AssertFileNotExists(t, cfg.Output.Path)
}

func TestService_UnmatchedTokens(t *testing.T) {
	extra := func() *registry.Static {
		src := testutil.Registry()
		src.Tokens = append(src.Tokens, registry.Token{Symbol: "SNX", Name: "Synthetix", Address: testutil.SBTCAddress, Decimals: 18})
		return src
	}

	cfg := testConfig(t)
	_, err := NewService(cfg, extra(), discardLogger()).Build(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	testutil.AssertFileNotExists(t, cfg.Output.Path)

	lenient := testConfig(t, func(c *config.Config) { c.Build.SkipUnmatchedTokens = true })
	report, err := NewService(lenient, extra(), discardLogger()).Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeWarning, report.Outcome)
	assert.Equal(t, 7, report.Sections)
	assert.NotContains(t, testutil.ReadFile(t, lenient.Output.Path), "(SNX)")
}

func TestService_BrokenAnchors(t *testing.T) {
	t.Run("warn", func(t *testing.T) {
		cfg := testConfig(t)
		rec := newTestRecorder()
		report, err := NewService(cfg, withoutToken(testutil.Registry(), "sBTC"), discardLogger()).
			WithRecorder(rec).
			Build(context.Background())
		require.NoError(t, err)

		assert.Equal(t, OutcomeWarning, report.Outcome)
		assert.Equal(t, []markdown.BrokenAnchor{{Fragment: "bitcoin-sbtc", Occurrences: 1}}, report.BrokenAnchors)
		assert.Equal(t, metrics.ResultWarning, rec.stageResults[string(StageVerifyAnchors)])
		assert.Equal(t, 1, rec.brokenAnchors)
		assert.True(t, report.Written)
	})

	t.Run("error", func(t *testing.T) {
		cfg := testConfig(t, func(c *config.Config) { c.Build.VerifyAnchors = config.VerifyError })
		report, err := NewService(cfg, withoutToken(testutil.Registry(), "sBTC"), discardLogger()).Build(context.Background())
		require.Error(t, err)
		assert.True(t, errors.HasCategory(err, errors.CategoryRender))
		assert.Contains(t, err.Error(), "#bitcoin-sbtc")
		assert.False(t, report.Written)
		testutil.AssertFileNotExists(t, cfg.Output.Path)
	})

	t.Run("off", func(t *testing.T) {
		cfg := testConfig(t, func(c *config.Config) { c.Build.VerifyAnchors = config.VerifyOff })
		svc := NewService(cfg, withoutToken(testutil.Registry(), "sBTC"), discardLogger())
		report, err := svc.Build(context.Background())
		require.NoError(t, err)
		assert.NotContains(t, report.Stages, StageVerifyAnchors)
		for _, st := range svc.Pipeline() {
			assert.NotEqual(t, StageVerifyAnchors, st.Name)
		}
	})
}

func TestService_Canceled(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewService(cfg, testutil.Registry(), discardLogger()).Build(ctx)
	require.Error(t, err)

	var se *StageError
	require.True(t, stdErrors.As(err, &se))
	assert.Equal(t, StageErrorCanceled, se.Kind)
	assert.Equal(t, StageLoadRegistry, se.Stage)
	assert.Equal(t, OutcomeCanceled, report.Outcome)
	testutil.AssertFileNotExists(t, cfg.Output.Path)
}

func TestService_Validate(t *testing.T) {
	cfg := testConfig(t)
	report, err := NewService(cfg, testutil.Registry(), discardLogger()).Validate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []StageName{StageLoadRegistry, StageValidateRegistry}, report.Stages)
	assert.Equal(t, OutcomeSuccess, report.Outcome)

	_, statErr := os.Stat(cfg.Output.Path)
	assert.True(t, os.IsNotExist(statErr))

	src := testutil.Registry()
	src.Synths[0].Feed = "not-an-address"
	_, err = NewService(cfg, src, discardLogger()).Validate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}
