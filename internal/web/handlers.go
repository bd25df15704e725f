package web

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/santa23kit/solver/internal/dispatch"
	"github.com/santa23kit/solver/internal/kaggle"
)

// submitRequest mirrors one puzzles.csv row (spec.md §6) plus the
// solver knobs the CLI's solve/batch commands expose as flags.
type submitRequest struct {
	PuzzleType    string `json:"puzzle_type"`
	SolutionState string `json:"solution_state"`
	InitialState  string `json:"initial_state"`
	NumWildcards  int    `json:"num_wildcards"`
	BeamWidth     int    `json:"beam_width"`
	MaxCost       int    `json:"max_cost"`
	Seed          int64  `json:"seed"`
}

type submitResponse struct {
	ID string `json:"id"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ptype, err := kaggle.ParsePuzzleType(req.PuzzleType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.BeamWidth <= 0 {
		req.BeamWidth = 256
	}
	if req.MaxCost <= 0 {
		req.MaxCost = 200
	}

	id := uuid.NewString()
	p := kaggle.Puzzle{
		ID:        id,
		Type:      ptype,
		Target:    kaggle.ParseColoring(req.SolutionState),
		Initial:   kaggle.ParseColoring(req.InitialState),
		Wildcards: req.NumWildcards,
	}

	s.mu.Lock()
	s.jobs[id] = &job{ID: id, Status: statusQueued}
	s.mu.Unlock()

	s.pending.Store(id, dispatch.Request{
		Puzzle: p, FormulaDir: s.formulaDir,
		BeamWidth: req.BeamWidth, MaxCost: req.MaxCost, Seed: uint64(req.Seed),
	})
	s.work <- id

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(submitResponse{ID: id})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	j, ok := s.jobs[id]
	s.mu.Unlock()
	if !ok {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(j)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// worker drains s.work, starting one goroutine per received id, so
// submitted jobs run concurrently — a job is never picked up twice
// since each id is sent exactly once.
func (s *Server) worker() {
	for id := range s.work {
		go s.run(id)
	}
}

func (s *Server) run(id string) {
	reqVal, ok := s.pending.LoadAndDelete(id)
	if !ok {
		return
	}
	req := reqVal.(dispatch.Request)

	s.mu.Lock()
	s.jobs[id].Status = statusRunning
	s.mu.Unlock()

	result, err := dispatch.Solve(req)

	s.mu.Lock()
	defer s.mu.Unlock()
	j := s.jobs[id]
	if err != nil {
		j.Status = statusFailed
		j.Error = err.Error()
		return
	}
	j.Status = statusDone
	j.Moves = result.Moves
	j.Cost = result.Cost
	j.WithinTol = result.WithinTol
}
