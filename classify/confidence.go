package classify

import (
	"strings"

	"github.com/tsawler/fintab/model"
)

// Score computes the heuristic confidence for a grid in [0, 1].
//
// Scoring starts from a 0.5 base and rewards shape signals that real tables
// exhibit:
//
//   - +0.1 for >=5 rows, a further +0.1 for >=10 rows
//   - +0.2 when the population variance of per-row column counts is below 1,
//     or +0.1 when below 2
//   - +0.1 when more than 30% of cells contain a digit
//
// The sum is clamped to 1.0. Grids with fewer than 2 rows score 0; the tiers
// discard them before scoring anyway.
func Score(grid model.Grid) float64 {
	if len(grid) < 2 {
		return 0.0
	}

	score := 0.5

	if len(grid) >= 5 {
		score += 0.1
	}
	if len(grid) >= 10 {
		score += 0.1
	}

	variance := columnCountVariance(grid)
	switch {
	case variance < 1:
		score += 0.2
	case variance < 2:
		score += 0.1
	}

	if numericDensity(grid) > 0.3 {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// Fuse combines the heuristic score with a detector-reported accuracy on the
// 0-100 scale by taking their arithmetic mean. A negative accuracy means the
// detector reported nothing, and the heuristic score is returned unchanged.
func Fuse(score, accuracy float64) float64 {
	if accuracy < 0 {
		return clamp(score)
	}
	return clamp((score + accuracy/100) / 2)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// columnCountVariance returns the population variance of per-row column
// counts. Uniform tables have variance 0.
func columnCountVariance(grid model.Grid) float64 {
	mean := 0.0
	for _, row := range grid {
		mean += float64(len(row))
	}
	mean /= float64(len(grid))

	variance := 0.0
	for _, row := range grid {
		d := float64(len(row)) - mean
		variance += d * d
	}
	return variance / float64(len(grid))
}

// numericDensity returns the fraction of cells containing at least one digit.
func numericDensity(grid model.Grid) float64 {
	numeric, total := 0, 0
	for _, row := range grid {
		for _, cell := range row {
			total++
			if strings.ContainsAny(cell, "0123456789") {
				numeric++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(numeric) / float64(total)
}
