// Package metrics exports measurements of generation attempts in the
// Prometheus exposition format. A Collector owns its own registry so that
// several instances can coexist in one process, which keeps tests isolated.
package metrics
