package build

import (
	"context"
	stdErrors "errors"
	"time"

	"git.home.luguber.info/inful/synthdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/synthdocs/internal/logfields"
	"git.home.luguber.info/inful/synthdocs/internal/metrics"
)

// RunStages executes stages in order, recording timing and stopping on first fatal error.
// A stage that records warnings on the report without failing counts as a warning result.
func RunStages(ctx context.Context, bs *State, stages []StageDef) error {
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			se := NewCanceledStageError(st.Name, err)
			bs.Report.Errors = append(bs.Report.Errors, se)
			bs.Report.RecordStageResult(st.Name, metrics.ResultCanceled, bs.Recorder)
			return se
		}

		warningsBefore := len(bs.Report.Warnings)
		t0 := time.Now()
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)

		bs.Report.StageDurations[st.Name] = dur
		bs.Recorder.ObserveStageDuration(string(st.Name), dur)

		se := classifyStageError(st.Name, err)
		switch {
		case se == nil && len(bs.Report.Warnings) > warningsBefore:
			bs.Report.RecordStageResult(st.Name, metrics.ResultWarning, bs.Recorder)
		case se == nil:
			bs.Report.RecordStageResult(st.Name, metrics.ResultSuccess, bs.Recorder)
		case se.Kind == StageErrorWarning:
			bs.Logger.Warn("Stage completed with warning", logfields.Stage(string(st.Name)), logfields.Error(se.Err))
			bs.Report.AddWarning(st.Name, se.Err.Error())
			bs.Report.RecordStageResult(st.Name, metrics.ResultWarning, bs.Recorder)
		case se.Kind == StageErrorCanceled:
			bs.Report.Errors = append(bs.Report.Errors, se)
			bs.Report.RecordStageResult(st.Name, metrics.ResultCanceled, bs.Recorder)
			return se
		default:
			bs.Report.Errors = append(bs.Report.Errors, se)
			bs.Report.RecordStageResult(st.Name, metrics.ResultFatal, bs.Recorder)
			return se
		}

		bs.Logger.Debug("Stage complete",
			logfields.Stage(string(st.Name)),
			logfields.DurationMS(ms(dur)))
	}
	return nil
}

func classifyStageError(stage StageName, err error) *StageError {
	if err == nil {
		return nil
	}
	var se *StageError
	if stdErrors.As(err, &se) {
		return se
	}
	if stdErrors.Is(err, context.Canceled) || stdErrors.Is(err, context.DeadlineExceeded) {
		return NewCanceledStageError(stage, err)
	}
	if ce, ok := errors.AsClassified(err); ok && ce.Severity() == errors.SeverityWarning {
		return NewWarnStageError(stage, err)
	}
	return NewFatalStageError(stage, err)
}
