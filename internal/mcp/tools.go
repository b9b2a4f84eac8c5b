package mcp

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/runplan/internal/models"
	"github.com/meltforce/runplan/internal/planner"
)

// splitDays turns "mon, wed,fri" into its non-empty entries.
func splitDays(s string) []string {
	var days []string
	for _, d := range strings.Split(s, ",") {
		if d = strings.TrimSpace(d); d != "" {
			days = append(days, d)
		}
	}
	return days
}

// --- Tool definitions ---

var toolGeneratePlan = mcp.NewTool("generate_plan",
	mcp.WithDescription("Generate a week-by-week running plan from an athlete profile. Race goals produce a 4-16 week plan ending on race day; other goals produce a 12-week plan."),
	mcp.WithString("activity_level", mcp.Required(), mcp.Description("Current activity level"), mcp.Enum("sedentary", "novice", "light_intermediate")),
	mcp.WithString("available_days", mcp.Required(), mcp.Description("Comma-separated training days (e.g. 'mon,wed,fri'). At most 6.")),
	mcp.WithString("goal", mcp.Required(), mcp.Description("Primary goal"), mcp.Enum("race", "general_fitness", "continuous_run", "increase_distance", "consistency")),
	mcp.WithString("target_distance", mcp.Description("Target distance label (e.g. '10km'). Race plans default to 5km.")),
	mcp.WithString("race_date", mcp.Description("Race date (YYYY-MM-DD or ISO 8601). Required when goal is race.")),
	mcp.WithBoolean("recent_injury", mcp.Description("Injured in the last few months")),
	mcp.WithBoolean("current_pain", mcp.Description("Currently in pain while running")),
	mcp.WithBoolean("persist", mcp.Description("Store the plan so get_plan can return it later. Defaults to false.")),
)

var toolGetPlan = mcp.NewTool("get_plan",
	mcp.WithDescription("Fetch a previously stored plan by ID."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Plan ID returned by generate_plan")),
)

var toolListPlans = mcp.NewTool("list_plans",
	mcp.WithDescription("List stored plans, newest first."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of plans. Defaults to 20.")),
)

var toolListWorkoutTypes = mcp.NewTool("list_workout_types",
	mcp.WithDescription("List the workout types the planner schedules, with the base template for each."),
)

// --- Tool handlers ---

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	level, err := req.RequireString("activity_level")
	if err != nil {
		return mcp.NewToolResultError("activity_level parameter is required"), nil
	}
	days, err := req.RequireString("available_days")
	if err != nil {
		return mcp.NewToolResultError("available_days parameter is required"), nil
	}
	goal, err := req.RequireString("goal")
	if err != nil {
		return mcp.NewToolResultError("goal parameter is required"), nil
	}
	race, err := models.ParseRaceDate(req.GetString("race_date", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	profile := models.Profile{
		ActivityLevel:  models.ActivityLevel(level),
		AvailableDays:  splitDays(days),
		Goal:           models.Goal(goal),
		TargetDistance: req.GetString("target_distance", ""),
		RaceDate:       race,
		RecentInjury:   req.GetBool("recent_injury", false),
		CurrentPain:    req.GetBool("current_pain", false),
	}

	plan, err := h.src.GeneratePlan(ctx, profile, req.GetBool("persist", false))
	if err != nil {
		if planner.IsValidation(err) {
			return mcp.NewToolResultError(planner.Code(err) + ": " + err.Error()), nil
		}
		// Remote mode: the server already classified the failure.
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code != "" {
			return mcp.NewToolResultError(apiErr.Code + ": " + apiErr.Message), nil
		}
		h.log.Error("mcp generate_plan", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(plan)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	plan, err := h.src.GetPlan(ctx, id)
	if err != nil {
		return mcp.NewToolResultError("lookup failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(plan)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listPlans(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plans, err := h.src.ListPlans(ctx, req.GetInt("limit", 20))
	if err != nil {
		h.log.Error("mcp list_plans", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{"plans": plans})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// workoutTypeInfo is the catalogue entry returned by list_workout_types.
type workoutTypeInfo struct {
	Type          models.WorkoutType `json:"type"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	TotalDuration int                `json:"base_duration"`
	Blocks        int                `json:"blocks"`
	Benefits      []string           `json:"benefits"`
}

func (h *handlers) listWorkoutTypes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lib, err := h.src.WorkoutLibrary(ctx)
	if err != nil {
		h.log.Error("mcp list_workout_types", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	types := make([]workoutTypeInfo, 0, len(lib))
	for _, wt := range models.WorkoutTypes {
		tpls := lib[wt]
		if len(tpls) == 0 {
			continue
		}
		t := tpls[0]
		types = append(types, workoutTypeInfo{
			Type:          wt,
			Name:          t.Name,
			Description:   t.Description,
			TotalDuration: t.TotalDuration,
			Blocks:        len(t.Blocks),
			Benefits:      slices.Clone(t.Benefits),
		})
	}

	result, err := mcp.NewToolResultJSON(map[string]any{"workout_types": types})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
