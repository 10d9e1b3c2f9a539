package astar

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/pdrpinto/gridastar/internal/gridgen"
	. "github.com/smartystreets/goconvey/convey"
)

var sampleRows = []string{
	"S....",
	".##..",
	"..#..",
	"..##.",
	"...G.",
}

func mustGrid(rows []string) *Grid {
	grid, err := ParseGrid(rows)
	if err != nil {
		panic(err)
	}
	return grid
}

// bfsDistance is the brute-force reference: steps from a to b, or -1.
func bfsDistance(grid *Grid, from, to Coord) int {
	if !grid.Walkable(from) || !grid.Walkable(to) {
		return -1
	}
	dist := map[Coord]int{from: 0}
	queue := []Coord{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == to {
			return dist[current]
		}
		for _, next := range grid.Neighbors(current) {
			if _, seen := dist[next]; !seen {
				dist[next] = dist[current] + 1
				queue = append(queue, next)
			}
		}
	}
	return -1
}

func shouldBeValidPath(grid *Grid, path []Coord) {
	So(path, ShouldNotBeEmpty)
	So(path[0], ShouldResemble, grid.Start())
	So(path[len(path)-1], ShouldResemble, grid.Goal())
	for i, c := range path {
		So(grid.Walkable(c), ShouldBeTrue)
		if i > 0 {
			So(Manhattan(path[i-1], c), ShouldEqual, 1)
		}
	}
}

func randomGrids(count int, seed int64) []*Grid {
	rng := rand.New(rand.NewSource(seed))
	grids := make([]*Grid, 0, count)
	for len(grids) < count {
		params := gridgen.Params{
			Width:    2 + rng.Intn(10),
			Height:   2 + rng.Intn(10),
			Clusters: 1 + rng.Intn(4),
			Steps:    5 + rng.Intn(40),
			Density:  rng.Float64() * 0.6,
		}
		rows, err := gridgen.Generate(params, rng)
		if err != nil {
			continue
		}
		grids = append(grids, mustGrid(rows))
	}
	return grids
}

func TestSearch(t *testing.T) {
	Convey("Given the sample grid", t, func() {
		grid := mustGrid(sampleRows)

		Convey("Search finds an optimal path from (0, 0) to (4, 3)", func() {
			res := Search(grid)

			So(res.Found, ShouldBeTrue)
			So(res.Path, ShouldHaveLength, 8)
			So(res.Cost, ShouldEqual, 7)
			So(res.Path[0], ShouldResemble, Coord{0, 0})
			So(res.Path[len(res.Path)-1], ShouldResemble, Coord{4, 3})
			shouldBeValidPath(grid, res.Path)
			So(res.Expanded, ShouldBeGreaterThan, 0)
			So(res.Generated, ShouldBeGreaterThanOrEqualTo, res.Expanded)
		})

		Convey("Searching twice gives the same length", func() {
			So(len(Search(grid).Path), ShouldEqual, len(Search(grid).Path))
		})

		Convey("The zero heuristic agrees on cost", func() {
			res := Search(grid, WithHeuristic(Zero))
			So(res.Cost, ShouldEqual, 7)
			shouldBeValidPath(grid, res.Path)
		})

		Convey("A nil heuristic option keeps Manhattan", func() {
			So(Search(grid, WithHeuristic(nil)).Cost, ShouldEqual, 7)
		})
	})

	Convey("Given a goal walled in on four sides", t, func() {
		grid := mustGrid([]string{
			"S....",
			"..#..",
			".#G#.",
			"..#..",
			".....",
		})

		Convey("The frontier exhausts and no path is reported", func() {
			res := Search(grid)
			So(res.Found, ShouldBeFalse)
			So(res.Path, ShouldBeNil)
			So(res.Cost, ShouldEqual, 0)

			var out bytes.Buffer
			So(WriteReport(&out, res), ShouldBeNil)
			So(out.String(), ShouldEqual, "No path found.\n")
		})
	})

	Convey("Given a goal in a corner cut off by obstacles and grid edges", t, func() {
		grid := mustGrid([]string{
			"S..#G",
			"....#",
		})

		Convey("No path is found", func() {
			So(Search(grid).Found, ShouldBeFalse)
		})
	})

	Convey("Given start next to goal", t, func() {
		grid := mustGrid([]string{"SG"})

		Convey("The path is the two cells", func() {
			res := Search(grid)
			So(res.Path, ShouldResemble, []Coord{{0, 0}, {0, 1}})
			So(res.Cost, ShouldEqual, 1)
		})
	})

	Convey("Given random small grids", t, func() {
		grids := randomGrids(200, 42)

		Convey("Search matches breadth-first search on every grid", func() {
			for _, grid := range grids {
				want := bfsDistance(grid, grid.Start(), grid.Goal())
				res := Search(grid)
				if want < 0 {
					So(res.Found, ShouldBeFalse)
					continue
				}
				So(res.Found, ShouldBeTrue)
				So(res.Cost, ShouldEqual, want)
				So(len(res.Path), ShouldEqual, want+1)
				shouldBeValidPath(grid, res.Path)
			}
		})

		Convey("Manhattan never overestimates the grid distance", func() {
			rng := rand.New(rand.NewSource(99))
			for _, grid := range grids {
				for i := 0; i < 20; i++ {
					a := Coord{rng.Intn(grid.Rows()), rng.Intn(grid.Cols())}
					b := Coord{rng.Intn(grid.Rows()), rng.Intn(grid.Cols())}
					if d := bfsDistance(grid, a, b); d >= 0 {
						So(Manhattan(a, b), ShouldBeLessThanOrEqualTo, d)
					}
				}
			}
		})
	})
}

func TestWriteReport(t *testing.T) {
	Convey("Given a found path", t, func() {
		res := Result{Found: true, Path: []Coord{{0, 0}, {0, 1}, {1, 1}}, Cost: 2}

		Convey("The report lists each coordinate after the header", func() {
			var out bytes.Buffer
			So(WriteReport(&out, res), ShouldBeNil)
			So(out.String(), ShouldEqual, "Path found:\n(0, 0)\n(0, 1)\n(1, 1)\n")
		})
	})
}
