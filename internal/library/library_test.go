package library

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/meltforce/runplan/internal/models"
)

// TestLoadEmbedded verifies the embedded catalogue has every required workout type.
func TestLoadEmbedded(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, wt := range models.WorkoutTypes {
		if _, err := lib.Template(wt); err != nil {
			t.Errorf("Template(%q): %v", wt, err)
		}
	}
}

// TestTemplateDurationsSum verifies each embedded template's blocks add up to its declared total.
func TestTemplateDurationsSum(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	for wt, list := range lib.Templates() {
		for _, w := range list {
			sum := 0
			for _, b := range w.Blocks {
				sum += b.Duration
			}
			if sum != w.TotalDuration {
				t.Errorf("%s/%s: blocks sum to %d, total_duration = %d", wt, w.ID, sum, w.TotalDuration)
			}
		}
	}
}

// TestTemplateReturnsCopy verifies callers cannot mutate the shared catalogue through a template.
func TestTemplateReturnsCopy(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	w, _ := lib.Template(models.WorkoutEasyRun)
	w.Blocks[0].Duration = 999

	again, _ := lib.Template(models.WorkoutEasyRun)
	if again.Blocks[0].Duration == 999 {
		t.Error("template mutation leaked into the library")
	}
}

// TestPresetReturnsCopy verifies callers cannot mutate the shared preset descriptors.
func TestPresetReturnsCopy(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	p, _ := lib.Preset("beginner-5k")
	p.Days[0].Benefits[0] = "changed"
	p.Days[1].Base = 999
	p.Focus[0].Label = "changed"

	again, _ := lib.Preset("beginner-5k")
	if again.Days[0].Benefits[0] == "changed" || again.Days[1].Base == 999 || again.Focus[0].Label == "changed" {
		t.Error("preset mutation leaked into the library")
	}
	listed := lib.Presets()
	listed[0].Days[0].Benefits[0] = "changed"
	if again, _ := lib.Preset(listed[0].ID); again.Days[0].Benefits[0] == "changed" {
		t.Error("Presets mutation leaked into the library")
	}
}

// TestTemplatesReturnCopies verifies the bulk accessors do not share slices with the library.
func TestTemplatesReturnCopies(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	all := lib.Templates()
	all[models.WorkoutTempo][0].Blocks[0].Duration = 999
	all[models.WorkoutTempo][0].Benefits[0] = "changed"
	names := lib.Names(models.WorkoutTempo)
	names[0] = "changed"

	w, _ := lib.Template(models.WorkoutTempo)
	if w.Blocks[0].Duration == 999 || w.Benefits[0] == "changed" {
		t.Error("Templates mutation leaked into the library")
	}
	if lib.Names(models.WorkoutTempo)[0] == "changed" {
		t.Error("Names mutation leaked into the library")
	}
}

// TestTemplateUnknown verifies a lookup miss returns ErrUnknownWorkoutType.
func TestTemplateUnknown(t *testing.T) {
	lib := New(map[models.WorkoutType][]models.Workout{}, nil)
	_, err := lib.Template("swim")
	if !errors.Is(err, ErrUnknownWorkoutType) {
		t.Errorf("err = %v, want ErrUnknownWorkoutType", err)
	}
}

// TestParseMissingType verifies validation rejects a catalogue lacking a required type.
func TestParseMissingType(t *testing.T) {
	data := []byte(`
workouts:
  easy_run:
    - id: e
      type: easy_run
      total_duration: 10
      blocks:
        - {type: run, duration: 10}
`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected validation error for incomplete catalogue")
	}
}

// TestPresets verifies the three preset plans load with their week counts.
func TestPresets(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{
		"beginner-5k":            8,
		"intermediate-10k":       12,
		"advanced-half-marathon": 16,
	}
	if got := len(lib.Presets()); got != len(want) {
		t.Fatalf("got %d presets, want %d", got, len(want))
	}
	for id, weeks := range want {
		p, ok := lib.Preset(id)
		if !ok {
			t.Errorf("preset %q missing", id)
			continue
		}
		if p.Weeks != weeks {
			t.Errorf("preset %q weeks = %d, want %d", id, p.Weeks, weeks)
		}
	}
}

// TestFocusFor verifies preset week focus follows the breakpoints.
func TestFocusFor(t *testing.T) {
	p := Preset{Focus: []FocusBreak{{Before: 3, Label: "A"}, {Before: 6, Label: "B"}, {Before: 8, Label: "C"}}}
	tests := []struct {
		index int
		want  string
	}{
		{0, "A"}, {2, "A"}, {3, "B"}, {5, "B"}, {6, "C"}, {7, "C"}, {20, "C"},
	}
	for _, tt := range tests {
		if got := p.FocusFor(tt.index); got != tt.want {
			t.Errorf("FocusFor(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

// TestParseRejectsDurationMismatch verifies a template whose blocks do not add
// up to its total is rejected at load.
func TestParseRejectsDurationMismatch(t *testing.T) {
	var b strings.Builder
	b.WriteString("workouts:\n")
	for _, wt := range models.WorkoutTypes {
		total := 10
		if wt == models.WorkoutInterval {
			total = 35
		}
		fmt.Fprintf(&b, "  %s:\n    - id: %s-1\n      type: %s\n      total_duration: %d\n      blocks:\n        - {type: run, duration: 10}\n", wt, wt, wt, total)
	}
	_, err := Parse([]byte(b.String()))
	if err == nil {
		t.Fatal("expected validation error for mismatched total_duration")
	}
	if !strings.Contains(err.Error(), "interval-1") {
		t.Errorf("err = %v, want it to name interval-1", err)
	}
}
