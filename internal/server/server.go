package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/runplan/internal/models"
	"github.com/meltforce/runplan/internal/planner"
)

// PlanRepository reads and deletes stored plans.
type PlanRepository interface {
	GetPlan(ctx context.Context, id string) (*models.Plan, error)
	ListPlans(ctx context.Context, limit int) ([]models.PlanSummary, error)
	DeletePlan(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	svc    *planner.Service
	plans  PlanRepository
	log    *slog.Logger
	apiKey string
	whois  WhoIser
	router chi.Router
}

// New creates a new Server with all routes configured. plans may be nil when
// persistence is disabled; the stored-plan endpoints then answer 503.
func New(svc *planner.Service, plans PlanRepository, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		svc:    svc,
		plans:  plans,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)
	s.router.Use(s.identity)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/api/v1/me", s.handleMe)

	// Plan endpoints (API key required)
	s.router.Route("/api/v1/plans", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/", s.handleCreatePlan)
		r.Post("/preview", s.handlePreviewPlan)
		r.Get("/", s.handleListPlans)
		r.Get("/{id}", s.handleGetPlan)
		r.Delete("/{id}", s.handleDeletePlan)
	})

	// Library endpoints are read-only and public
	s.router.Route("/api/v1/library", func(r chi.Router) {
		r.Get("/workouts", s.handleListWorkouts)
		r.Get("/workouts/{type}", s.handleGetWorkout)
		r.Get("/presets", s.handleListPresets)
		r.Get("/presets/{id}", s.handleGetPreset)
	})
}

// SetMCP mounts a Model Context Protocol handler at /mcp behind the API key.
func (s *Server) SetMCP(h http.Handler) {
	s.router.With(APIKeyAuth(s.apiKey)).Handle("/mcp", h)
}

// SetTailscale resolves caller identities through the tailnet instead of
// treating every request as the local user.
func (s *Server) SetTailscale(w WhoIser) {
	s.whois = w
}
