package vizapi

import (
	"github.com/gin-gonic/gin"
)

// Router wires the session controller under /v1.
type Router struct {
	addr     string
	sessions *SessionController
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr    string // Address to listen on
	GinMode string // gin.ReleaseMode, gin.DebugMode or gin.TestMode
	MaxSide int    // Largest generated grid side
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}
	return &Router{
		addr:     config.Addr,
		sessions: NewSessionController(config.MaxSide),
	}
}

// Handler builds the gin engine serving all routes.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	v1 := router.Group("/v1")
	{
		r.sessions.Register(v1)
	}
	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	return r.Handler().Run(r.addr)
}
