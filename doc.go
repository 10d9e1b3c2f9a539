// Package astar finds shortest paths on four-connected obstacle grids.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// Grids are parsed from rows of 'S' (start), 'G' (goal), '#' (obstacle) and
// '.' (empty) with ParseGrid or ReadGrid, which reject malformed input.
// Moves cost one step and the default Manhattan heuristic keeps results optimal.
package astar
