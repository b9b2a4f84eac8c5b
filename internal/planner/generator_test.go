package planner

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/meltforce/runplan/internal/library"
	"github.com/meltforce/runplan/internal/models"
)

var fixedNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func testLibrary(t *testing.T) *library.Library {
	t.Helper()
	lib, err := library.Load()
	if err != nil {
		t.Fatalf("loading library: %v", err)
	}
	return lib
}

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	return NewGenerator(testLibrary(t),
		WithIDSource(&CounterSource{}),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func raceIn(weeks int) *time.Time {
	d := fixedNow.Add(time.Duration(weeks) * week)
	return &d
}

// TestGenerateRaceExample verifies the novice 10km race profile eight weeks out.
func TestGenerateRaceExample(t *testing.T) {
	g := newTestGenerator(t)
	plan, err := g.Generate(models.Profile{
		ActivityLevel:  models.ActivityNovice,
		AvailableDays:  []string{"mon", "wed", "fri"},
		Goal:           models.GoalRace,
		TargetDistance: "10km",
		RaceDate:       raceIn(8),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if plan.Weeks != 8 || len(plan.Schedule) != 8 {
		t.Fatalf("weeks = %d (%d scheduled), want 8", plan.Weeks, len(plan.Schedule))
	}
	if plan.Level != models.LevelBeginner {
		t.Errorf("level = %q, want beginner", plan.Level)
	}
	if plan.DaysPerWeek != 3 {
		t.Errorf("days per week = %d, want 3", plan.DaysPerWeek)
	}
	if plan.Schedule[0].Phase != models.PhaseBase {
		t.Errorf("week 1 phase = %q, want base", plan.Schedule[0].Phase)
	}
	if plan.Schedule[7].Phase != models.PhaseTaper {
		t.Errorf("week 8 phase = %q, want taper", plan.Schedule[7].Phase)
	}
	if plan.Goal != "10km" {
		t.Errorf("goal = %q, want 10km", plan.Goal)
	}
	if plan.ID != "race-1" {
		t.Errorf("id = %q, want race-1", plan.ID)
	}
	if plan.Trainer != Trainer {
		t.Errorf("trainer = %q, want %q", plan.Trainer, Trainer)
	}

	first := plan.Schedule[0].Workouts
	gotTypes := []models.WorkoutType{first[0].Type, first[1].Type, first[2].Type}
	if diff := cmp.Diff([]models.WorkoutType{walk, easy, walk}, gotTypes); diff != "" {
		t.Errorf("week 1 types (-want +got):\n%s", diff)
	}
	if first[0].ID != "walk_run-1-1-2" {
		t.Errorf("first workout id = %q, want walk_run-1-1-2", first[0].ID)
	}
	if first[0].TotalDuration != 25 {
		t.Errorf("first workout duration = %d, want 25", first[0].TotalDuration)
	}
	if len(first[0].Blocks) != 10 {
		t.Errorf("walk run blocks = %d, want 10", len(first[0].Blocks))
	}
	if first[0].Difficulty != models.LevelBeginner {
		t.Errorf("difficulty = %q, want beginner", first[0].Difficulty)
	}
}

// TestGenerateGeneralExample verifies the 4-day consistency profile gets the 12-week general plan.
func TestGenerateGeneralExample(t *testing.T) {
	g := newTestGenerator(t)
	plan, err := g.Generate(models.Profile{
		ActivityLevel: models.ActivityLightIntermediate,
		AvailableDays: []string{"mon", "tue", "thu", "sat"},
		Goal:          models.GoalConsistency,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.Weeks != 12 || len(plan.Schedule) != 12 {
		t.Fatalf("weeks = %d, want 12", plan.Weeks)
	}
	if plan.Level != models.LevelIntermediate {
		t.Errorf("level = %q, want intermediate", plan.Level)
	}
	if plan.Name != "Building Consistency" {
		t.Errorf("name = %q, want Building Consistency", plan.Name)
	}
	if plan.Goal != "General development" {
		t.Errorf("goal = %q, want General development", plan.Goal)
	}
	for _, w := range plan.Schedule {
		if len(w.Workouts) != 4 {
			t.Errorf("week %d has %d workouts, want 4", w.Number, len(w.Workouts))
		}
	}
	wantPhases := map[int]models.Phase{1: models.PhaseAdaptation, 4: models.PhaseAdaptation, 5: models.PhaseDevelopment, 8: models.PhaseDevelopment, 9: models.PhaseConsolidation, 12: models.PhaseConsolidation}
	for n, want := range wantPhases {
		if got := plan.Schedule[n-1].Phase; got != want {
			t.Errorf("week %d phase = %q, want %q", n, got, want)
		}
	}
}

// TestGeneralHeaders verifies each non-race goal picks its own name and unknown goals fall back.
func TestGeneralHeaders(t *testing.T) {
	tests := []struct {
		goal     models.Goal
		target   string
		wantName string
		wantGoal string
	}{
		{models.GoalFitness, "", "Conditioning Boost", "General development"},
		{models.GoalContinuousRun, "", "Continuous Running", "General development"},
		{models.GoalDistance, "10km", "Distance Builder", "10km"},
		{models.GoalConsistency, "", "Building Consistency", "General development"},
		{"something_else", "", "Development Plan", "General development"},
	}
	g := newTestGenerator(t)
	for _, tt := range tests {
		plan, err := g.Generate(models.Profile{
			ActivityLevel:  models.ActivitySedentary,
			AvailableDays:  []string{"mon"},
			Goal:           tt.goal,
			TargetDistance: tt.target,
		})
		if err != nil {
			t.Fatalf("%s: %v", tt.goal, err)
		}
		if plan.Name != tt.wantName {
			t.Errorf("%s: name = %q, want %q", tt.goal, plan.Name, tt.wantName)
		}
		if plan.Goal != tt.wantGoal {
			t.Errorf("%s: goal = %q, want %q", tt.goal, plan.Goal, tt.wantGoal)
		}
	}
}

// TestGenerateDefaultRaceDistance verifies race plans without a target use the default distance.
func TestGenerateDefaultRaceDistance(t *testing.T) {
	g := NewGenerator(testLibrary(t),
		WithClock(func() time.Time { return fixedNow }),
		WithDefaultRaceDistance("21km"),
	)
	plan, err := g.Generate(models.Profile{
		ActivityLevel: models.ActivityNovice,
		AvailableDays: []string{"mon"},
		Goal:          models.GoalRace,
		RaceDate:      raceIn(6),
	})
	if err != nil {
		t.Fatal(err)
	}
	if plan.Goal != "21km" {
		t.Errorf("goal = %q, want 21km", plan.Goal)
	}
	if plan.Name != "Race preparation: 21km" {
		t.Errorf("name = %q", plan.Name)
	}
}

// TestGenerateErrors verifies each validation failure and that no plan is returned.
func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		profile models.Profile
		want    error
	}{
		{
			name:    "seven days",
			profile: models.Profile{AvailableDays: []string{"1", "2", "3", "4", "5", "6", "7"}, Goal: models.GoalFitness},
			want:    ErrInvalidSchedule,
		},
		{
			name:    "seven days race without date",
			profile: models.Profile{AvailableDays: []string{"1", "2", "3", "4", "5", "6", "7"}, Goal: models.GoalRace},
			want:    ErrInvalidSchedule,
		},
		{
			name:    "race without date",
			profile: models.Profile{AvailableDays: []string{"mon"}, Goal: models.GoalRace},
			want:    ErrMissingRaceDate,
		},
		{
			name:    "race two weeks out",
			profile: models.Profile{AvailableDays: []string{"mon"}, Goal: models.GoalRace, RaceDate: raceIn(2)},
			want:    ErrRaceWindowTooShort,
		},
		{
			name:    "race twenty weeks out",
			profile: models.Profile{AvailableDays: []string{"mon"}, Goal: models.GoalRace, RaceDate: raceIn(20)},
			want:    ErrRaceWindowTooLong,
		},
	}

	g := newTestGenerator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := g.Generate(tt.profile)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if plan != nil {
				t.Error("plan returned alongside error")
			}
			if !IsValidation(err) {
				t.Error("IsValidation = false")
			}
		})
	}
}

// TestGenerateWeekCountProperty verifies week counts for every valid day count and race window.
func TestGenerateWeekCountProperty(t *testing.T) {
	g := newTestGenerator(t)
	for days := 1; days <= MaxTrainingDays; days++ {
		avail := make([]string, days)
		for weeks := MinRaceWeeks; weeks <= MaxRaceWeeks; weeks++ {
			plan, err := g.Generate(models.Profile{
				ActivityLevel: models.ActivityLightIntermediate,
				AvailableDays: avail,
				Goal:          models.GoalRace,
				RaceDate:      raceIn(weeks),
			})
			if err != nil {
				t.Fatalf("days=%d weeks=%d: %v", days, weeks, err)
			}
			if plan.Weeks != weeks || len(plan.Schedule) != weeks {
				t.Errorf("days=%d: got %d weeks, want %d", days, plan.Weeks, weeks)
			}
			assertPlanShape(t, plan, days)
		}
	}
}

func assertPlanShape(t *testing.T, plan *models.Plan, days int) {
	t.Helper()
	order := map[models.Phase]int{
		models.PhaseBase: 0, models.PhaseBuild: 1, models.PhasePeak: 2, models.PhaseTaper: 3,
		models.PhaseAdaptation: 0, models.PhaseDevelopment: 1, models.PhaseConsolidation: 2,
	}
	prev := -1
	for i, w := range plan.Schedule {
		if w.Number != i+1 {
			t.Errorf("week %d numbered %d", i+1, w.Number)
		}
		if order[w.Phase] < prev {
			t.Errorf("phase regressed at week %d: %s", w.Number, w.Phase)
		}
		prev = order[w.Phase]
		if len(w.Workouts) != days {
			t.Errorf("week %d has %d workouts, want %d", w.Number, len(w.Workouts), days)
		}
		for _, wo := range w.Workouts {
			if wo.TotalDuration <= 0 {
				t.Errorf("week %d %s: duration %d", w.Number, wo.Type, wo.TotalDuration)
			}
			for _, b := range wo.Blocks {
				if b.Duration < 1 {
					t.Errorf("week %d %s: block duration %d", w.Number, wo.Type, b.Duration)
				}
			}
		}
	}
}

// TestGenerateDeterministic verifies two independent generators yield identical plans.
func TestGenerateDeterministic(t *testing.T) {
	profile := models.Profile{
		ActivityLevel: models.ActivityLightIntermediate,
		AvailableDays: []string{"mon", "wed", "fri", "sun"},
		Goal:          models.GoalRace,
		RaceDate:      raceIn(11),
		CurrentPain:   true,
	}
	a, err := newTestGenerator(t).Generate(profile)
	if err != nil {
		t.Fatal(err)
	}
	b, err := newTestGenerator(t).Generate(profile)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("plans differ (-a +b):\n%s", diff)
	}
}

// TestGenerateConcurrent verifies the shared library can serve parallel generations with unique IDs.
func TestGenerateConcurrent(t *testing.T) {
	g := NewGenerator(testLibrary(t), WithIDSource(&CounterSource{}))
	var (
		mu  sync.Mutex
		ids = map[string]bool{}
		wg  sync.WaitGroup
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			plan, err := g.Generate(models.Profile{
				ActivityLevel: models.ActivityNovice,
				AvailableDays: []string{"mon", "thu"},
				Goal:          models.GoalFitness,
			})
			if err != nil {
				t.Error(err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if ids[plan.ID] {
				t.Errorf("duplicate plan id %s", plan.ID)
			}
			ids[plan.ID] = true
		}()
	}
	wg.Wait()
}

// TestWorkoutNameRotation verifies display names rotate by week number modulo three.
func TestWorkoutNameRotation(t *testing.T) {
	g := newTestGenerator(t)
	names := g.Library().Names(easy)
	for weekNum := 1; weekNum <= 6; weekNum++ {
		if got, want := g.workoutName(easy, weekNum), names[weekNum%3]; got != want {
			t.Errorf("week %d: name = %q, want %q", weekNum, got, want)
		}
	}
	if got := g.workoutName("swim", 1); got != genericWorkoutName {
		t.Errorf("unknown type name = %q, want %q", got, genericWorkoutName)
	}
}
