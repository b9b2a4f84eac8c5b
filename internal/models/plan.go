package models

// Phase is the periodization label of a week.
type Phase string

// Race-mode phases.
const (
	PhaseBase  Phase = "base"
	PhaseBuild Phase = "build"
	PhasePeak  Phase = "peak"
	PhaseTaper Phase = "taper"
)

// General-mode phases.
const (
	PhaseAdaptation    Phase = "adaptation"
	PhaseDevelopment   Phase = "development"
	PhaseConsolidation Phase = "consolidation"
)

// WorkoutType identifies the training modality of a workout.
type WorkoutType string

const (
	WorkoutWalkRun     WorkoutType = "walk_run"
	WorkoutEasyRun     WorkoutType = "easy_run"
	WorkoutProgressive WorkoutType = "progressive"
	WorkoutInterval    WorkoutType = "interval"
	WorkoutTempo       WorkoutType = "tempo"
	WorkoutLongRun     WorkoutType = "long_run"
	WorkoutFartlek     WorkoutType = "fartlek"
	WorkoutHillRepeats WorkoutType = "hill_repeats"
	WorkoutRecoveryRun WorkoutType = "recovery_run"
)

// WorkoutTypes lists every workout type the template library must provide.
var WorkoutTypes = []WorkoutType{
	WorkoutWalkRun,
	WorkoutEasyRun,
	WorkoutProgressive,
	WorkoutInterval,
	WorkoutTempo,
	WorkoutLongRun,
	WorkoutFartlek,
	WorkoutHillRepeats,
	WorkoutRecoveryRun,
}

// BlockKind is the segment kind of a block inside a workout.
type BlockKind string

const (
	BlockWarmup   BlockKind = "warmup"
	BlockMain     BlockKind = "main"
	BlockRun      BlockKind = "run"
	BlockWalk     BlockKind = "walk"
	BlockCooldown BlockKind = "cooldown"
	BlockRest     BlockKind = "rest"
)

// Block is a timed segment within a workout. Duration is in minutes.
type Block struct {
	Kind        BlockKind `json:"type" yaml:"type"`
	Duration    int       `json:"duration" yaml:"duration"`
	Intensity   string    `json:"intensity,omitempty" yaml:"intensity,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	DistanceKm  *float64  `json:"distance,omitempty" yaml:"distance,omitempty"`
	Pace        string    `json:"pace,omitempty" yaml:"pace,omitempty"`
}

// Workout is one session, either a library template or a generated instance.
type Workout struct {
	ID            string      `json:"id" yaml:"id"`
	Name          string      `json:"name" yaml:"name"`
	Type          WorkoutType `json:"type" yaml:"type"`
	Description   string      `json:"description" yaml:"description"`
	TotalDuration int         `json:"total_duration" yaml:"total_duration"`
	Blocks        []Block     `json:"blocks" yaml:"blocks"`
	Benefits      []string    `json:"benefits" yaml:"benefits"`
	Difficulty    Level       `json:"difficulty" yaml:"difficulty"`
}

// Week is one week of a plan.
type Week struct {
	Number   int       `json:"week_number"`
	Phase    Phase     `json:"phase"`
	Focus    string    `json:"focus"`
	Workouts []Workout `json:"workouts"`
}

// Plan is a generated multi-week training program.
type Plan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Trainer     string `json:"trainer"`
	Description string `json:"description"`
	Level       Level  `json:"level"`
	Goal        string `json:"goal"`
	Weeks       int    `json:"duration_weeks"`
	DaysPerWeek int    `json:"days_per_week"`
	Schedule    []Week `json:"weeks"`
}
