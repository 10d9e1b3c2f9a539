package vizapi

import (
	"github.com/google/uuid"

	astar "github.com/pdrpinto/gridastar"
)

// CreateSessionRequest describes the grid of a new session. Fields come from
// the query string and may be overridden by a JSON body. When Rows is empty a
// random grid is generated from the remaining fields.
type CreateSessionRequest struct {
	Rows      []string `json:"rows" form:"rows"`
	Width     int      `json:"w" form:"w"`
	Height    int      `json:"h" form:"h"`
	Clusters  int      `json:"clusters" form:"clusters"`
	Steps     int      `json:"steps" form:"steps"`
	Density   *float64 `json:"density" form:"density"`
	Seed      *int64   `json:"seed" form:"seed"`
	Heuristic string   `json:"heuristic" form:"heuristic"`
}

// SessionResponse describes the grid behind a session.
type SessionResponse struct {
	ID    uuid.UUID `json:"id"`
	W     int       `json:"w"`
	H     int       `json:"h"`
	Walls [][2]int  `json:"walls"`
	Start [2]int    `json:"start"`
	Goal  [2]int    `json:"goal"`
	State string    `json:"state"`
}

// SnapshotResponse is one step of the search. Coordinates are [row, col].
type SnapshotResponse struct {
	Step    int      `json:"step"`
	Open    [][2]int `json:"open,omitempty"`
	Closed  [][2]int `json:"closed,omitempty"`
	Current [2]int   `json:"current"`
	State   string   `json:"state"`
	Done    bool     `json:"done"`
	Found   bool     `json:"found"`
	Path    [][2]int `json:"path,omitempty"`
}

func pair(c astar.Coord) [2]int { return [2]int{c.Row, c.Col} }

func setToList(m map[astar.Coord]bool) [][2]int {
	res := make([][2]int, 0, len(m))
	for c, ok := range m {
		if ok {
			res = append(res, pair(c))
		}
	}
	return res
}

func newSessionResponse(id uuid.UUID, stepper *astar.Stepper) SessionResponse {
	grid := stepper.Grid()
	walls := make([][2]int, 0)
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			if grid.At(astar.Coord{Row: r, Col: c}) == astar.SymbolObstacle {
				walls = append(walls, [2]int{r, c})
			}
		}
	}
	return SessionResponse{
		ID:    id,
		W:     grid.Cols(),
		H:     grid.Rows(),
		Walls: walls,
		Start: pair(grid.Start()),
		Goal:  pair(grid.Goal()),
		State: stepper.State().String(),
	}
}

func newSnapshotResponse(st astar.StepSnapshot) SnapshotResponse {
	s := SnapshotResponse{
		Step:    st.StepIndex,
		Open:    setToList(st.Open),
		Closed:  setToList(st.Closed),
		Current: pair(st.Current),
		State:   st.State.String(),
		Done:    st.Done(),
		Found:   st.Found(),
	}
	if st.Found() {
		s.Path = make([][2]int, 0, len(st.Path))
		for _, c := range st.Path {
			s.Path = append(s.Path, pair(c))
		}
	}
	return s
}
