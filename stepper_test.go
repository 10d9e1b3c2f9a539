package astar

import (
	"testing"

	"github.com/pdrpinto/gridastar/internal/arena"
	. "github.com/smartystreets/goconvey/convey"
)

func nodeAt(cell Coord, g, h int) arena.Node[Coord] {
	return arena.Node[Coord]{Cell: cell, G: g, H: h, Parent: arena.None}
}

func TestStepper(t *testing.T) {
	Convey("Given a stepper over the sample grid", t, func() {
		grid := mustGrid(sampleRows)
		stepper := NewStepper(grid)

		Convey("The first step closes the start cell", func() {
			snap := stepper.Step()
			So(snap.StepIndex, ShouldEqual, 1)
			So(snap.Current, ShouldResemble, grid.Start())
			So(snap.State, ShouldEqual, Searching)
			So(snap.Done(), ShouldBeFalse)
			So(snap.Closed[grid.Start()], ShouldBeTrue)
			So(snap.Open, ShouldContainKey, Coord{0, 1})
			So(snap.Open, ShouldContainKey, Coord{1, 0})
			So(snap.CameFrom, ShouldBeEmpty)
		})

		Convey("Stepping to the end yields the same path cost as Search", func() {
			var snap StepSnapshot
			for i := 0; i < grid.Rows()*grid.Cols()+1 && !snap.Done(); i++ {
				snap = stepper.Step()
			}
			So(snap.Found(), ShouldBeTrue)
			So(snap.State.String(), ShouldEqual, "found")
			So(snap.Current, ShouldResemble, grid.Goal())
			So(snap.Path, ShouldHaveLength, len(Search(grid).Path))
			So(stepper.Result().Cost, ShouldEqual, Search(grid).Cost)

			Convey("Predecessor links lead from the goal back to the start", func() {
				cell, hops := grid.Goal(), 0
				for cell != grid.Start() && hops <= len(snap.Closed) {
					cell = snap.CameFrom[cell]
					hops++
				}
				So(cell, ShouldResemble, grid.Start())
			})

			Convey("Further steps repeat the final snapshot", func() {
				again := stepper.Step()
				So(again.StepIndex, ShouldEqual, snap.StepIndex)
				So(again.Path, ShouldResemble, snap.Path)
			})
		})

		Convey("Snapshots are copies", func() {
			snap := stepper.Step()
			snap.Closed[Coord{4, 4}] = true
			So(stepper.Step().Closed, ShouldNotContainKey, Coord{4, 4})
		})
	})

	Convey("Given an unreachable goal", t, func() {
		stepper := NewStepper(mustGrid([]string{
			"S#.",
			"##G",
		}))

		Convey("The stepper ends exhausted", func() {
			So(stepper.Step().State, ShouldEqual, Searching)
			snap := stepper.Step()
			So(snap.State, ShouldEqual, Exhausted)
			So(snap.State.String(), ShouldEqual, "exhausted")
			So(snap.Path, ShouldBeNil)
			So(snap.Open, ShouldBeEmpty)
			So(stepper.Result().Found, ShouldBeFalse)
		})
	})
}

func TestFrontier(t *testing.T) {
	Convey("Given nodes pushed out of order", t, func() {
		grid := mustGrid(sampleRows)
		e := newEngine(grid, applyOptions(nil))
		// drop the seeded start node
		e.open.pop()

		g := []int{5, 1, 3, 3, 0}
		h := []int{0, 2, 0, 2, 9}
		for i := range g {
			e.open.push(e.nodes.Add(nodeAt(Coord{0, i}, g[i], h[i])))
		}

		Convey("They come out by ascending f, lower h first on ties", func() {
			var order []int
			for e.open.Len() > 0 {
				n := e.nodes.Get(e.open.pop())
				order = append(order, n.Cell.Col)
			}
			// f values: 5, 3, 3, 5, 9
			So(order[0], ShouldEqual, 2)
			So(order[1], ShouldEqual, 1)
			So(order[2], ShouldEqual, 0)
			So(order[3], ShouldEqual, 3)
			So(order[4], ShouldEqual, 4)
		})

		Convey("Duplicate cells may be queued", func() {
			e.open.push(e.nodes.Add(nodeAt(Coord{0, 0}, 1, 1)))
			So(e.open.Len(), ShouldEqual, 6)
			So(e.open.cells(), ShouldHaveLength, 5)
		})
	})
}
