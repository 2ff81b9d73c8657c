// Package build runs the synthdocs documentation pipeline.
//
// A build is an ordered list of named stages (load_registry, validate_registry,
// assemble, verify_anchors, write_output) executed by RunStages against a shared
// State. Each stage is timed and its result recorded on the Report and the
// metrics Recorder. The first fatal stage error stops the build, so the output
// file is only replaced when every earlier stage succeeded.
//
// All execution paths (build, validate, watch) route through Service.
package build
