package metrics

import (
	"testing"
	"time"
)

// NoopRecorder must satisfy Recorder and accept every call.
func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveStageDuration("load_registry", time.Millisecond)
	r.ObserveBuildDuration(time.Millisecond)
	r.IncStageResult("load_registry", ResultFatal)
	r.IncBuildOutcome(BuildOutcomeCanceled)
	r.AddSections("stable", 1)
	r.SetBrokenAnchors(0)
}
