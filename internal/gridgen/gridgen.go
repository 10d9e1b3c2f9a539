// Package gridgen builds random obstacle grids in the S/G/#/. text format.
package gridgen

import (
	"errors"
	"math/rand"
)

// ErrTooSmall is returned when the grid cannot hold distinct start and goal cells.
var ErrTooSmall = errors.New("grid needs at least two cells")

// Params controls the shape and obstacle density of a generated grid.
type Params struct {
	Width    int
	Height   int
	Clusters int     // number of random walks laying obstacles
	Steps    int     // length of each walk
	Density  float64 // chance that a visited cell becomes an obstacle
}

// DefaultParams matches the visualiser's default board.
func DefaultParams() Params {
	return Params{Width: 40, Height: 24, Clusters: 8, Steps: 200, Density: 0.25}
}

type cell struct{ row, col int }

// Generate returns Height rows of Width symbols with exactly one start and one
// goal. Obstacles are laid as clusters along random walks. The same rng seed
// always yields the same grid.
func Generate(p Params, rng *rand.Rand) ([]string, error) {
	if p.Width <= 0 || p.Height <= 0 || p.Width*p.Height < 2 {
		return nil, ErrTooSmall
	}

	board := make([][]byte, p.Height)
	for r := range board {
		board[r] = make([]byte, p.Width)
		for c := range board[r] {
			board[r][c] = '.'
		}
	}

	// random start/goal
	start := cell{rng.Intn(p.Height), rng.Intn(p.Width)}
	goal := start
	for goal == start {
		goal = cell{rng.Intn(p.Height), rng.Intn(p.Width)}
	}

	moves := [4]cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for i := 0; i < p.Clusters; i++ {
		at := cell{rng.Intn(p.Height), rng.Intn(p.Width)}
		for s := 0; s < p.Steps; s++ {
			if rng.Float64() < p.Density && at != start && at != goal {
				board[at.row][at.col] = '#'
			}
			d := moves[rng.Intn(len(moves))]
			next := cell{at.row + d.row, at.col + d.col}
			if next.row >= 0 && next.row < p.Height && next.col >= 0 && next.col < p.Width {
				at = next
			}
		}
	}

	board[start.row][start.col] = 'S'
	board[goal.row][goal.col] = 'G'

	rows := make([]string, p.Height)
	for r := range board {
		rows[r] = string(board[r])
	}
	return rows, nil
}
