package services

import (
	"math"

	"github.com/lunelabs/cyclefem/internal/models"
)

// Gaps within this many days of the mean count toward regularity.
const regularityToleranceDays = 2

type Statistics struct {
	TotalCycles         int     `json:"totalCycles"`
	AverageCycleLength  float64 `json:"averageCycleLength"`
	AveragePeriodLength float64 `json:"averagePeriodLength"`
	Regularity          int     `json:"regularity"`
}

// CalculateStatistics derives descriptive regularity metrics over the full
// cycle history. Unlike the prediction engine it never caps the input:
// predictions favor recency, statistics favor completeness. An empty
// history yields the all-zero value.
func CalculateStatistics(cycles []models.Cycle) Statistics {
	stats := Statistics{TotalCycles: len(cycles)}
	if len(cycles) == 0 {
		return stats
	}

	sorted := sortCyclesNewestFirst(cycles)

	if gaps := consecutiveStartGaps(sorted); len(gaps) > 0 {
		mean := averageInts(gaps)
		stats.AverageCycleLength = roundToTenth(mean)

		regular := 0
		for _, gap := range gaps {
			if math.Abs(float64(gap)-mean) <= regularityToleranceDays {
				regular++
			}
		}
		stats.Regularity = int(math.Round(float64(regular) / float64(len(gaps)) * 100))
	}

	if lengths := periodLengths(sorted); len(lengths) > 0 {
		stats.AveragePeriodLength = roundToTenth(averageInts(lengths))
	}

	return stats
}

// periodLengths returns the inclusive day count of every closed cycle.
// Records whose end date precedes their start date are skipped rather
// than failing the whole computation.
func periodLengths(cycles []models.Cycle) []int {
	lengths := make([]int, 0, len(cycles))
	for _, cycle := range cycles {
		if cycle.EndDate == nil {
			continue
		}
		length := DaysBetween(cycle.StartDate, *cycle.EndDate) + 1
		if length < 1 {
			continue
		}
		lengths = append(lengths, length)
	}
	return lengths
}

func roundToTenth(value float64) float64 {
	return math.Round(value*10) / 10
}
