// Package metrics provides build metrics for synthdocs.
//
// Components receive a Recorder through dependency injection. NoopRecorder is
// the default and does nothing; PrometheusRecorder registers collectors on a
// Prometheus registry that can be exported as a node_exporter textfile after
// each build:
//
//	reg := prom.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	svc := build.NewService(cfg, src, logger).WithRecorder(rec)
//	...
//	_ = metrics.WriteTextfile(cfg.Metrics.Textfile, reg)
package metrics
