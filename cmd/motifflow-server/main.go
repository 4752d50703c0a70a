// Command motifflow-server provides a REST API for MotifFlow operations.
//
// Usage:
//
//	motifflow-server [options]
//
// Options:
//
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
//	-db       SQLite database for archived runs (default: motifflow.db)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/gibbslab/motifflow/api/handlers"
	"github.com/gibbslab/motifflow/api/middleware"
	"github.com/gibbslab/motifflow/internal/runstore"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	dbPath := flag.String("db", "motifflow.db", "SQLite database for archived runs")
	flag.Parse()

	store := runstore.New(*dbPath)
	if err := store.Init(context.Background()); err != nil {
		log.Fatalf("Could not open run database %s: %v", *dbPath, err)
	}
	defer store.Close()

	motifAPI := &handlers.MotifAPI{Store: store}
	runsAPI := &handlers.RunsAPI{Store: store}

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Motif endpoints
		r.Route("/motif", func(r chi.Router) {
			r.Post("/search", motifAPI.Search)
			r.Post("/min-length", handlers.MinLengthHandler)
			r.Post("/chance", handlers.ChanceHandler)
		})

		// Sequence endpoints
		r.Route("/sequence", func(r chi.Router) {
			r.Post("/validate", handlers.ValidateHandler)
			r.Post("/info", handlers.SequenceInfoHandler)
		})

		// Statistics endpoints
		r.Route("/stats", func(r chi.Router) {
			r.Post("/set", handlers.SequenceSetStatsHandler)
		})

		// Archived runs
		r.Route("/runs", func(r chi.Router) {
			r.Get("/", runsAPI.List)
			r.Get("/{id}", runsAPI.Get)
		})
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("MotifFlow API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
