// Package vizapi serves step-by-step A* sessions over HTTP for visual front ends.
package vizapi

import (
	"errors"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/config"
	"github.com/pdrpinto/gridastar/internal/gridgen"
)

var errTooLarge = errors.New("grid exceeds the maximum side length")

// SessionController owns the live steppers, keyed by session ID.
type SessionController struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*astar.Stepper
	maxSide  int
	seed     func() int64
}

// NewSessionController creates a controller that refuses generated grids
// wider or taller than maxSide.
func NewSessionController(maxSide int) *SessionController {
	return &SessionController{
		sessions: make(map[uuid.UUID]*astar.Stepper),
		maxSide:  maxSide,
		seed:     func() int64 { return time.Now().UnixNano() },
	}
}

// Register mounts the session routes.
func (sc *SessionController) Register(route *gin.RouterGroup) {
	sessions := route.Group("/sessions")
	{
		sessions.POST("", sc.create)
		sessions.GET("/:ID", sc.info)
		sessions.POST("/:ID/next", sc.next)
		sessions.DELETE("/:ID", sc.remove)
	}
}

// create builds a grid from the request and starts a stepper on it.
func (sc *SessionController) create(ctx *gin.Context) {
	var request CreateSessionRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	heuristic, err := astar.HeuristicByName(request.Heuristic)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows := request.Rows
	if len(rows) == 0 {
		rows, err = sc.generate(request)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	grid, err := astar.ParseGrid(rows)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if sc.tooLarge(grid.Cols(), grid.Rows()) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errTooLarge.Error()})
		return
	}

	id := uuid.New()
	stepper := astar.NewStepper(grid, astar.WithHeuristic(heuristic))

	sc.mu.Lock()
	sc.sessions[id] = stepper
	sc.mu.Unlock()

	log.Printf(config.LogInfo+"session %s created (%dx%d)", id, grid.Cols(), grid.Rows())
	ctx.JSON(http.StatusCreated, newSessionResponse(id, stepper))
}

func (sc *SessionController) generate(request CreateSessionRequest) ([]string, error) {
	params := gridgen.DefaultParams()
	if request.Width > 4 {
		params.Width = request.Width
	}
	if request.Height > 4 {
		params.Height = request.Height
	}
	if request.Clusters > 0 {
		params.Clusters = request.Clusters
	}
	if request.Steps > 0 {
		params.Steps = request.Steps
	}
	if request.Density != nil && *request.Density >= 0 && *request.Density <= 1 {
		params.Density = *request.Density
	}
	if sc.tooLarge(params.Width, params.Height) {
		return nil, errTooLarge
	}

	seed := sc.seed()
	if request.Seed != nil {
		seed = *request.Seed
	}
	return gridgen.Generate(params, rand.New(rand.NewSource(seed)))
}

func (sc *SessionController) tooLarge(width, height int) bool {
	return sc.maxSide > 0 && (width > sc.maxSide || height > sc.maxSide)
}

// info returns the grid of a session.
func (sc *SessionController) info(ctx *gin.Context) {
	id, stepper, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	sc.mu.Lock()
	response := newSessionResponse(id, stepper)
	sc.mu.Unlock()
	ctx.JSON(http.StatusOK, response)
}

// next advances a session by one expansion.
func (sc *SessionController) next(ctx *gin.Context) {
	_, stepper, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	sc.mu.Lock()
	snapshot := stepper.Step()
	sc.mu.Unlock()
	ctx.JSON(http.StatusOK, newSnapshotResponse(snapshot))
}

// remove drops a session.
func (sc *SessionController) remove(ctx *gin.Context) {
	id, _, ok := sc.lookup(ctx)
	if !ok {
		return
	}
	sc.mu.Lock()
	delete(sc.sessions, id)
	sc.mu.Unlock()
	ctx.Status(http.StatusNoContent)
}

// lookup resolves the :ID parameter, writing the error response itself.
func (sc *SessionController) lookup(ctx *gin.Context) (uuid.UUID, *astar.Stepper, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, nil, false
	}
	sc.mu.Lock()
	stepper, found := sc.sessions[id]
	sc.mu.Unlock()
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no session"})
		return uuid.Nil, nil, false
	}
	return id, stepper, true
}
