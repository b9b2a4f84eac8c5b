package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(src PlanSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("runplan", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("runplan builds personalized running training plans. Call list_workout_types to see the session catalogue, then generate_plan with the athlete's activity level, training days and goal. Race goals need a race date 4 to 16 weeks away."),
	)

	h := &handlers{src: src, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolGetPlan, Handler: h.getPlan},
		server.ServerTool{Tool: toolListPlans, Handler: h.listPlans},
		server.ServerTool{Tool: toolListWorkoutTypes, Handler: h.listWorkoutTypes},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWorkoutLibrary, Handler: h.workoutLibrary},
		server.ServerResource{Resource: resPresets, Handler: h.presets},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	src PlanSource
	log *slog.Logger
}

// --- Resource definitions ---

var resWorkoutLibrary = mcp.NewResource(
	"runplan://workout_library",
	"Workout Library",
	mcp.WithResourceDescription("Every workout template with its timed blocks, grouped by workout type"),
	mcp.WithMIMEType("application/json"),
)

var resPresets = mcp.NewResource(
	"runplan://presets",
	"Preset Plans",
	mcp.WithResourceDescription("Fixed catalogue plans (beginner 5K, intermediate 10K, advanced half marathon) with per-day base durations and weekly steps"),
	mcp.WithMIMEType("application/json"),
)
