// Package library holds the canonical workout templates and preset plans.
// A Library is built once and only read afterwards, so it is safe to share
// between goroutines without locking.
package library

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"github.com/meltforce/runplan/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed workouts.yaml
var defaultCatalogue []byte

// ErrUnknownWorkoutType is returned when no template exists for a type.
var ErrUnknownWorkoutType = errors.New("unknown workout type")

// FocusBreak assigns a focus label to weeks with a zero-based index below Before.
type FocusBreak struct {
	Before int    `yaml:"before" json:"before"`
	Label  string `yaml:"label" json:"label"`
}

// PresetDay describes one training day of a preset plan.
type PresetDay struct {
	Type        models.WorkoutType `yaml:"type" json:"type"`
	Name        string             `yaml:"name" json:"name"`
	Description string             `yaml:"description" json:"description"`
	Base        int                `yaml:"base" json:"base"`
	Step        int                `yaml:"step" json:"step"`
	Benefits    []string           `yaml:"benefits" json:"benefits"`
}

// Preset is a fixed plan from the catalogue.
type Preset struct {
	ID          string       `yaml:"id" json:"id"`
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description" json:"description"`
	Level       models.Level `yaml:"level" json:"level"`
	Goal        string       `yaml:"goal" json:"goal"`
	Weeks       int          `yaml:"weeks" json:"weeks"`
	Focus       []FocusBreak `yaml:"focus" json:"focus"`
	Days        []PresetDay  `yaml:"days" json:"days"`

	// WorkoutPrefix names the preset's workout IDs. Empty means the preset ID.
	WorkoutPrefix string `yaml:"workout_prefix,omitempty" json:"workout_prefix,omitempty"`
}

// FocusFor returns the focus label for the zero-based week index.
func (p Preset) FocusFor(index int) string {
	for _, f := range p.Focus {
		if index < f.Before {
			return f.Label
		}
	}
	if len(p.Focus) > 0 {
		return p.Focus[len(p.Focus)-1].Label
	}
	return ""
}

type catalogue struct {
	Workouts map[models.WorkoutType][]models.Workout `yaml:"workouts"`
	Names    map[models.WorkoutType][]string         `yaml:"names"`
	Presets  []Preset                                `yaml:"presets"`
}

// Library is the read-only template catalogue.
type Library struct {
	workouts map[models.WorkoutType][]models.Workout
	names    map[models.WorkoutType][]string
	presets  []Preset
}

// Load parses the embedded catalogue.
func Load() (*Library, error) {
	return Parse(defaultCatalogue)
}

// Parse builds a Library from YAML and validates it.
func Parse(data []byte) (*Library, error) {
	var c catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing workout catalogue: %w", err)
	}
	lib := &Library{
		workouts: c.Workouts,
		names:    c.Names,
		presets:  c.Presets,
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

// New builds a Library directly from templates, mainly for tests.
func New(workouts map[models.WorkoutType][]models.Workout, names map[models.WorkoutType][]string) *Library {
	return &Library{workouts: workouts, names: names}
}

// Validate checks that every required workout type has at least one template
// and that each template's blocks add up to its total duration.
func (l *Library) Validate() error {
	var missing []string
	for _, t := range models.WorkoutTypes {
		if len(l.workouts[t]) == 0 {
			missing = append(missing, string(t))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("workout catalogue missing templates for %v", missing)
	}
	for t, list := range l.workouts {
		for _, w := range list {
			sum := 0
			for _, b := range w.Blocks {
				sum += b.Duration
			}
			if sum != w.TotalDuration {
				return fmt.Errorf("template %s/%s: blocks sum to %d, total_duration is %d", t, w.ID, sum, w.TotalDuration)
			}
		}
	}
	for _, p := range l.presets {
		if p.Weeks <= 0 || len(p.Days) == 0 {
			return fmt.Errorf("preset %q: weeks and days are required", p.ID)
		}
	}
	return nil
}

// Template returns the first template for the workout type. The returned
// value owns its slices.
func (l *Library) Template(t models.WorkoutType) (models.Workout, error) {
	list := l.workouts[t]
	if len(list) == 0 {
		return models.Workout{}, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, t)
	}
	w := list[0]
	w.Blocks = slices.Clone(w.Blocks)
	w.Benefits = slices.Clone(w.Benefits)
	return w, nil
}

// Templates returns all templates grouped by type, in catalogue order.
func (l *Library) Templates() map[models.WorkoutType][]models.Workout {
	out := make(map[models.WorkoutType][]models.Workout, len(l.workouts))
	for t, list := range l.workouts {
		copies := make([]models.Workout, len(list))
		for i, w := range list {
			w.Blocks = slices.Clone(w.Blocks)
			w.Benefits = slices.Clone(w.Benefits)
			copies[i] = w
		}
		out[t] = copies
	}
	return out
}

// Names returns the rotating display names for a workout type.
func (l *Library) Names(t models.WorkoutType) []string {
	return slices.Clone(l.names[t])
}

// Presets returns the preset plan descriptors.
func (l *Library) Presets() []Preset {
	out := make([]Preset, len(l.presets))
	for i, p := range l.presets {
		out[i] = p.clone()
	}
	return out
}

// Preset looks up a preset plan by ID. The returned value owns its slices.
func (l *Library) Preset(id string) (Preset, bool) {
	for _, p := range l.presets {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return Preset{}, false
}

func (p Preset) clone() Preset {
	p.Focus = slices.Clone(p.Focus)
	p.Days = slices.Clone(p.Days)
	for i := range p.Days {
		p.Days[i].Benefits = slices.Clone(p.Days[i].Benefits)
	}
	return p
}
