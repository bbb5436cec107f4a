// Package server exposes brand generation over HTTP.
//
// Routes:
//
//   - POST /api/generate takes {"mission": "..."} and answers with the final
//     workflow state: 200 on success (logos as data URIs), 422 when the
//     mission is rejected, 502 when a remote call fails.
//   - GET /metrics serves the Prometheus registry.
//   - GET /healthz reports liveness.
package server
