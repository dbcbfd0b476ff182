package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"TrafficLens/internal/api"
	"TrafficLens/internal/config"
)

func main() {
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	server := api.NewServer(cfg.API.ListenAddr, cfg.Summary.OutputPath)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v", cfg.API.ListenAddr, err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Summary API server shutting down...")

	if err := server.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Summary API server exited.")
}
