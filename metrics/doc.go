// Package metrics exports randomization diagnostics to Prometheus.
//
// Recorder implements randomize.Recorder; pass it with randomize.WithRecorder
// or ensemble.WithRecorder. Batch jobs can dump the registry with
// WriteTextfile for the node_exporter textfile collector.
package metrics
