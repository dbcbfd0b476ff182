package api

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
)

// Server exposes the latest traffic summary artifact over HTTP. It reads the
// artifact file per request, so it always serves the most recent window and
// needs no coordination with the capture process.
type Server struct {
	summaryPath string
	httpServer  *http.Server
}

// NewServer creates a server for the given listen address and artifact path.
func NewServer(listenAddr, summaryPath string) *Server {
	s := &Server{summaryPath: summaryPath}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/summary", s.summaryHandler).Methods("GET")
	r.HandleFunc("/healthz", s.healthHandler).Methods("GET")

	s.httpServer = &http.Server{
		Addr:    listenAddr,
		Handler: r,
	}
	return s
}

// ListenAndServe runs the HTTP server until Shutdown is called.
func (s *Server) ListenAndServe() error {
	log.Printf("Summary API server starting on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// summaryHandler serves the artifact document verbatim. 404 means no capture
// window has completed yet.
func (s *Server) summaryHandler(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(s.summaryPath)
	if os.IsNotExist(err) {
		http.Error(w, "no summary has been generated yet", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "failed to read summary", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
