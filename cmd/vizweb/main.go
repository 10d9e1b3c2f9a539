package main

import (
	"log"

	"github.com/pdrpinto/gridastar/internal/config"
	"github.com/pdrpinto/gridastar/internal/vizapi"
)

func main() {
	cfg := config.Load()

	router := vizapi.NewRouter(vizapi.Config{
		Addr:    cfg.VizAddr,
		GinMode: cfg.GinMode,
		MaxSide: cfg.VizMaxSide,
	})

	log.Printf(config.LogInfo+"visualiser listening on %s", cfg.VizAddr)
	if err := router.Run(); err != nil {
		log.Fatalf(config.LogFatal+"server stopped: %v", err)
	}
}
