package astar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Grid symbols.
const (
	SymbolStart    = 'S'
	SymbolGoal     = 'G'
	SymbolObstacle = '#'
	SymbolEmpty    = '.'
)

// Errors returned when a grid cannot be searched.
var (
	ErrEmptyGrid     = errors.New("grid is empty")
	ErrRaggedRows    = errors.New("grid rows have different lengths")
	ErrUnknownSymbol = errors.New("unknown grid symbol")
	ErrMissingStart  = errors.New("grid has no start marker")
	ErrMultipleStart = errors.New("grid has more than one start marker")
	ErrMissingGoal   = errors.New("grid has no goal marker")
	ErrMultipleGoal  = errors.New("grid has more than one goal marker")
)

// Coord is a (row, column) position on the grid.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.Row, c.Col) }

// maxRowBytes bounds a single line accepted by ReadGrid.
const maxRowBytes = 16 << 20

// orthogonal moves: up, down, left, right
var directions = [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a validated, read-only rectangular map. Build it with ParseGrid or
// ReadGrid; the zero value is an empty grid with no reachable cells.
type Grid struct {
	cells [][]byte
	start Coord
	goal  Coord
}

// ParseGrid validates rows and locates the single start and goal markers.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(rows[0])
	grid := &Grid{cells: make([][]byte, len(rows))}
	starts, goals := 0, 0
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedRows, r, len(row), width)
		}
		grid.cells[r] = []byte(row)
		for c := 0; c < width; c++ {
			switch row[c] {
			case SymbolStart:
				starts++
				if starts > 1 {
					return nil, fmt.Errorf("%w: second one at %v", ErrMultipleStart, Coord{r, c})
				}
				grid.start = Coord{r, c}
			case SymbolGoal:
				goals++
				if goals > 1 {
					return nil, fmt.Errorf("%w: second one at %v", ErrMultipleGoal, Coord{r, c})
				}
				grid.goal = Coord{r, c}
			case SymbolObstacle, SymbolEmpty:
			default:
				return nil, fmt.Errorf("%w %q at %v", ErrUnknownSymbol, row[c], Coord{r, c})
			}
		}
	}
	if starts == 0 {
		return nil, ErrMissingStart
	}
	if goals == 0 {
		return nil, ErrMissingGoal
	}
	return grid, nil
}

// ReadGrid parses one row per line. Surrounding whitespace and blank lines
// are ignored.
func ReadGrid(reader io.Reader) (*Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRowBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}
	return ParseGrid(rows)
}

// Rows is the grid height.
func (g *Grid) Rows() int { return len(g.cells) }

// Cols is the grid width.
func (g *Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Start is the position of the start marker.
func (g *Grid) Start() Coord { return g.start }

// Goal is the position of the goal marker.
func (g *Grid) Goal() Coord { return g.goal }

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < len(g.cells) && c.Col >= 0 && c.Col < g.Cols()
}

// At returns the symbol at c. The caller must check InBounds first.
func (g *Grid) At(c Coord) byte { return g.cells[c.Row][c.Col] }

// Walkable reports whether c is on the grid and not an obstacle.
// Start and goal cells are walkable.
func (g *Grid) Walkable(c Coord) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] != SymbolObstacle
}

// Neighbors returns the walkable orthogonal neighbours of c.
func (g *Grid) Neighbors(c Coord) []Coord {
	result := make([]Coord, 0, len(directions))
	for _, d := range directions {
		next := Coord{c.Row + d.Row, c.Col + d.Col}
		if g.Walkable(next) {
			result = append(result, next)
		}
	}
	return result
}

// index flattens c into a row-major offset.
func (g *Grid) index(c Coord) int { return c.Row*g.Cols() + c.Col }

// String renders the grid one row per line.
func (g *Grid) String() string {
	return g.render(nil)
}

// RenderPath renders the grid with the path cells between start and goal
// marked as '*'.
func (g *Grid) RenderPath(path []Coord) string {
	marks := make(map[Coord]bool, len(path))
	for _, c := range path {
		if g.InBounds(c) && g.At(c) == SymbolEmpty {
			marks[c] = true
		}
	}
	return g.render(marks)
}

func (g *Grid) render(marks map[Coord]bool) string {
	var b strings.Builder
	b.Grow(len(g.cells) * (g.Cols() + 1))
	for r, row := range g.cells {
		for c, symbol := range row {
			if marks[Coord{r, c}] {
				symbol = '*'
			}
			b.WriteByte(symbol)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Heuristic returns the estimated cost between two cells.
type Heuristic func(from, to Coord) int

// Manhattan is the sum of absolute coordinate differences. It never
// overestimates on a four-connected unit-cost grid.
func Manhattan(from, to Coord) int {
	return abs(from.Row-to.Row) + abs(from.Col-to.Col)
}

// Zero turns A* into plain Dijkstra.
func Zero(_, _ Coord) int { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
