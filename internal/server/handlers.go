package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/runplan/internal/library"
	"github.com/meltforce/runplan/internal/models"
	"github.com/meltforce/runplan/internal/planner"
	"github.com/meltforce/runplan/internal/storage"
)

// profileRequest is the wire form of a profile. The race date is a string so
// callers can send a plain calendar date.
type profileRequest struct {
	ActivityLevel   models.ActivityLevel `json:"activity_level"`
	AvailableDays   []string             `json:"available_days"`
	Goal            models.Goal          `json:"goal"`
	TargetDistance  string               `json:"target_distance"`
	RaceDate        string               `json:"race_date"`
	RecentInjury    bool                 `json:"recent_injury"`
	CurrentPain     bool                 `json:"current_pain"`
	LongestDistance string               `json:"longest_distance"`
}

func (p profileRequest) profile() (models.Profile, error) {
	race, err := models.ParseRaceDate(p.RaceDate)
	if err != nil {
		return models.Profile{}, err
	}
	return models.Profile{
		ActivityLevel:   p.ActivityLevel,
		AvailableDays:   p.AvailableDays,
		Goal:            p.Goal,
		TargetDistance:  p.TargetDistance,
		RaceDate:        race,
		RecentInjury:    p.RecentInjury,
		CurrentPain:     p.CurrentPain,
		LongestDistance: p.LongestDistance,
	}, nil
}

func decodeProfile(r *http.Request) (models.Profile, error) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return models.Profile{}, errors.New("invalid JSON: " + err.Error())
	}
	return req.profile()
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	s.generate(w, r, true)
}

func (s *Server) handlePreviewPlan(w http.ResponseWriter, r *http.Request) {
	s.generate(w, r, false)
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request, persist bool) {
	profile, err := decodeProfile(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	plan, err := s.svc.Generate(r.Context(), profile, persist)
	if err != nil {
		s.writeError(w, err)
		return
	}

	status := http.StatusOK
	if persist {
		status = http.StatusCreated
		s.log.Info("plan created", "id", plan.ID, "owner", userInfoFromContext(r).Login, "stored", s.svc.CanPersist())
	}
	writeJSON(w, status, plan)
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	plans, err := s.plans.ListPlans(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	plan, err := s.plans.GetPlan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id := chi.URLParam(r, "id")
	if err := s.plans.DeletePlan(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.log.Info("plan deleted", "id", id, "owner", userInfoFromContext(r).Login)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userInfoFromContext(r))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok", "storage": "disabled"}
	if s.plans != nil {
		if err := s.plans.Ping(r.Context()); err != nil {
			s.log.Error("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
			return
		}
		resp["storage"] = "ok"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.plans == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "plan storage is not configured"})
		return false
	}
	return true
}

// writeError maps planner, library and storage errors onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case planner.IsValidation(err):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error(), "code": planner.Code(err)})
	case errors.Is(err, planner.ErrPresetNotFound),
		errors.Is(err, library.ErrUnknownWorkoutType),
		errors.Is(err, storage.ErrPlanNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		s.log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
