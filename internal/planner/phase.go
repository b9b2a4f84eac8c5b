package planner

import "github.com/meltforce/runplan/internal/models"

// PhaseInfo describes one week's position in the plan.
type PhaseInfo struct {
	Phase    models.Phase
	Focus    string
	Progress float64
}

type band struct {
	upTo  float64
	phase models.Phase
	focus string
}

// Upper bounds are inclusive.
var raceBands = []band{
	{0.25, models.PhaseBase, "Base and adaptation"},
	{0.50, models.PhaseBuild, "Volume construction"},
	{0.75, models.PhasePeak, "Quality and speed"},
	{1.00, models.PhaseTaper, "Reduction and recovery"},
}

// Keyed on absolute week number.
var generalBands = []band{
	{4, models.PhaseAdaptation, "Adaptation and habit building"},
	{8, models.PhaseDevelopment, "Gradual progression"},
	{GeneralWeeks, models.PhaseConsolidation, "Consolidation and maintenance"},
}

// Progress is the fraction of the plan completed by the end of the week.
func Progress(weekNum, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(weekNum) / float64(total)
}

// RacePhase classifies a week of a race plan by its progress fraction.
func RacePhase(weekNum, total int) PhaseInfo {
	p := Progress(weekNum, total)
	b := pick(raceBands, p)
	return PhaseInfo{Phase: b.phase, Focus: b.focus, Progress: p}
}

// GeneralPhase classifies a week of the 12-week general plan. Progress runs
// linearly over the horizon.
func GeneralPhase(weekNum int) PhaseInfo {
	b := pick(generalBands, float64(weekNum))
	return PhaseInfo{Phase: b.phase, Focus: b.focus, Progress: Progress(weekNum, GeneralWeeks)}
}

func pick(bands []band, v float64) band {
	for _, b := range bands {
		if v <= b.upTo {
			return b
		}
	}
	return bands[len(bands)-1]
}
