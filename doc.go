// Package gridroute finds shortest routes across 2D obstacle grids.
//
// What is gridroute?
//
//	A small routing toolkit built around an A* search:
//		• grid:   fixed-size cell map, obstacle mutation, validity/accessibility,
//		          cosmetic terrain, text parsing, connected regions
//		• astar:  A* with Manhattan heuristic, unit step cost, FIFO tie-breaking,
//		          expansion budget and context cutoffs
//		• render: console and PNG drawings of a grid and its route
//		• server: JSON-over-HTTP routing service with Prometheus metrics
//
// Binaries:
//
//	cmd/gridroute/  — interactive console session (prompts, obstacle editing)
//	cmd/gridrouted/ — HTTP daemon wrapping package server
//
// Quick ASCII example (I start, O goal, X obstacle, * route):
//
//	I X * * *
//	* X * X *
//	* X * X *
//	* * * X O
//
// Movement is orthogonal only and every step costs 1; terrain values are for
// display and never change a route.
//
//	go get github.com/katalvlaran/gridroute
package gridroute
