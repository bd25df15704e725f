// Package web serves the job-submission HTTP API: a solve request is
// queued, run on a worker goroutine against the same solvers the CLI's
// solve/batch commands use, and polled by id until it completes.
package web

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
)

type jobStatus string

const (
	statusQueued  jobStatus = "queued"
	statusRunning jobStatus = "running"
	statusDone    jobStatus = "done"
	statusFailed  jobStatus = "failed"
)

type job struct {
	ID        string    `json:"id"`
	Status    jobStatus `json:"status"`
	Moves     string    `json:"moves,omitempty"`
	Cost      int       `json:"cost,omitempty"`
	WithinTol bool      `json:"within_tolerance,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Server holds the in-memory job queue and the formula directory every
// job's solve request is resolved against.
type Server struct {
	router     *mux.Router
	formulaDir string

	mu   sync.Mutex
	jobs map[string]*job
	work chan string

	// pending holds each queued job's dispatch.Request (keyed by job
	// id) between submission and pickup by the worker goroutine.
	pending sync.Map
}

// NewServer builds a Server whose jobs load formula libraries from
// formulaDir, named the way the CLI's batch command expects.
func NewServer(formulaDir string) *Server {
	s := &Server{
		router:     mux.NewRouter(),
		formulaDir: formulaDir,
		jobs:       make(map[string]*job),
		work:       make(chan string, 64),
	}
	s.setupRoutes()
	go s.worker()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/jobs", s.handleSubmit).Methods("POST")
	api.HandleFunc("/jobs/{id}", s.handleStatus).Methods("GET")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// Start runs the server on addr until it errors or the process exits.
func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
