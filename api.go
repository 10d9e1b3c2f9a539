package astar

import (
	"errors"
	"fmt"
	"strings"
)

// State of a search.
type State int

const (
	Searching State = iota
	Found
	Exhausted
)

func (s State) String() string {
	switch s {
	case Searching:
		return "searching"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a search
type Result struct {
	// Path runs from start to goal inclusive. Nil when Found is false.
	Path []Coord
	// Cost is the number of steps on Path.
	Cost int
	// Expanded counts closed cells.
	Expanded int
	// Generated counts search nodes created, duplicates included.
	Generated int
	Found     bool
}

// Options defines parameters for the search.
type Options struct {
	Heuristic Heuristic
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic replaces the Manhattan estimate. The heuristic must not
// overestimate for the returned path to be optimal.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) {
		if heuristic != nil {
			options.Heuristic = heuristic
		}
	}
}

func applyOptions(options []Option) Options {
	searchOptions := Options{Heuristic: Manhattan}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

// Search runs A* from the grid's start to its goal.
// An unreachable goal is not an error: the Result has Found set to false.
func Search(grid *Grid, options ...Option) Result {
	e := newEngine(grid, applyOptions(options))
	for e.state == Searching {
		e.advance()
	}
	return e.result()
}

// ErrUnknownHeuristic is returned by HeuristicByName.
var ErrUnknownHeuristic = errors.New("unknown heuristic")

// HeuristicByName maps "manhattan" (or "") and "zero" to their functions.
func HeuristicByName(name string) (Heuristic, error) {
	switch strings.ToLower(name) {
	case "", "manhattan":
		return Manhattan, nil
	case "zero", "dijkstra":
		return Zero, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownHeuristic, name)
	}
}
