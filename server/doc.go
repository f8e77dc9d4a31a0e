// Package server exposes astar.FindPath over HTTP.
//
// Routes:
//
//	POST /route    JSON RouteRequest → RouteResponse
//	GET  /healthz  liveness check
//	GET  /metrics  Prometheus exposition
//
// Every request builds its own grid, so requests share no mutable state and
// the search always runs against a stable snapshot. An unreachable goal is a
// normal 200 response with found=false; malformed input is a 400.
package server
