package planner

import "github.com/meltforce/runplan/internal/models"

// ScaleBlocks rescales every block by target / sum(durations), rounding each
// to the nearest minute with a floor of one. Count and order are preserved and
// the rounded sum is allowed to drift from target. A zero-length template is
// returned as is. The result never aliases the input.
func ScaleBlocks(blocks []models.Block, target int) []models.Block {
	out := make([]models.Block, len(blocks))
	total := 0
	for i, b := range blocks {
		if b.DistanceKm != nil {
			d := *b.DistanceKm
			b.DistanceKm = &d
		}
		out[i] = b
		total += b.Duration
	}
	if total == 0 {
		return out
	}

	ratio := float64(target) / float64(total)
	for i := range out {
		out[i].Duration = max(1, roundHalfUp(float64(out[i].Duration)*ratio))
	}
	return out
}
