// Command gridpath prints the shortest path through a grid of
// 'S', 'G', '#' and '.' symbols.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/config"
)

var sampleGrid = []string{
	"S....",
	".##..",
	"..#..",
	"..##.",
	"...G.",
}

func main() {
	os.Exit(run(os.Args[1:], config.Load(), os.Stdin, os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 when a search ran (path or not),
// 1 for bad input, 2 for bad flags.
func run(args []string, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	flags := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: gridpath [-file grid.txt] [-heuristic manhattan|zero] [-sample] [-draw] [-stats]")
		flags.PrintDefaults()
	}
	file := flags.String("file", cfg.GridFile, "grid file, one row per line (default stdin)")
	heuristicName := flags.String("heuristic", cfg.Heuristic, "manhattan or zero")
	sample := flags.Bool("sample", false, "search the built-in sample grid")
	draw := flags.Bool("draw", false, "print the grid with the path marked '*'")
	stats := flags.Bool("stats", false, "print search statistics")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	heuristic, err := astar.HeuristicByName(*heuristicName)
	if err != nil {
		logger.Printf(config.LogError+"%v", err)
		return 2
	}

	grid, err := loadGrid(*sample, *file, stdin)
	if err != nil {
		logger.Printf(config.LogError+"%v", err)
		return 1
	}

	res := astar.Search(grid, astar.WithHeuristic(heuristic))
	if err := astar.WriteReport(stdout, res); err != nil {
		logger.Printf(config.LogError+"writing report: %v", err)
		return 1
	}
	if *draw && res.Found {
		fmt.Fprintln(stdout)
		fmt.Fprint(stdout, grid.RenderPath(res.Path))
	}
	if *stats {
		logger.Printf(config.LogInfo+"cost=%d expanded=%d generated=%d", res.Cost, res.Expanded, res.Generated)
	}
	return 0
}

func loadGrid(sample bool, file string, stdin io.Reader) (*astar.Grid, error) {
	switch {
	case sample:
		return astar.ParseGrid(sampleGrid)
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		grid, err := astar.ReadGrid(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		return grid, nil
	default:
		grid, err := astar.ReadGrid(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return grid, nil
	}
}
