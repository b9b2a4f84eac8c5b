package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/runplan/internal/models"
)

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Generator().Library().Templates())
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	tpl, err := s.svc.Generator().Library().Template(models.WorkoutType(chi.URLParam(r, "type")))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Generator().Library().Presets())
}

// handleGetPreset returns the fully materialized preset plan.
func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	plan, err := s.svc.Generator().Preset(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
