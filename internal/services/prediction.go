package services

import (
	"math"
	"sort"
	"time"

	"github.com/lunelabs/cyclefem/internal/models"
)

const (
	// Predictions favor recency: only the newest records feed the average.
	predictionHistoryLimit = 12

	// Gaps outside (0, 60) days are treated as data-entry noise and
	// excluded from the averaging sample set.
	maxPlausibleGapDays = 60

	lutealPhaseDays        = 14
	fertileWindowLeadDays  = 5
	fertileWindowTrailDays = 1
)

type FertileWindow struct {
	Start time.Time
	End   time.Time
}

type Prediction struct {
	AvgCycleLength int
	NextPeriod     time.Time
	Ovulation      time.Time
	FertileWindow  FertileWindow
}

// CalculatePredictions projects the next period, ovulation day and fertile
// window from logged cycle history. The single most recent start date
// anchors every projection; the average cycle length comes from the gaps
// between consecutive starts, falling back to 28 days when fewer than two
// usable records exist. Returns nil only for an empty history.
func CalculatePredictions(cycles []models.Cycle) *Prediction {
	if len(cycles) == 0 {
		return nil
	}

	sorted := sortCyclesNewestFirst(cycles)
	if len(sorted) > predictionHistoryLimit {
		sorted = sorted[:predictionHistoryLimit]
	}

	average := float64(models.DefaultCycleLength)
	if gaps := consecutiveStartGaps(sorted); len(gaps) > 0 {
		average = averageInts(gaps)
	}

	anchor := DateOnly(sorted[0].StartDate)
	avgCycleLength := int(math.Round(average))
	nextPeriod := anchor.AddDate(0, 0, avgCycleLength)
	ovulation := nextPeriod.AddDate(0, 0, -lutealPhaseDays)

	return &Prediction{
		AvgCycleLength: avgCycleLength,
		NextPeriod:     nextPeriod,
		Ovulation:      ovulation,
		FertileWindow: FertileWindow{
			Start: ovulation.AddDate(0, 0, -fertileWindowLeadDays),
			End:   ovulation.AddDate(0, 0, fertileWindowTrailDays),
		},
	}
}

func sortCyclesNewestFirst(cycles []models.Cycle) []models.Cycle {
	sorted := make([]models.Cycle, 0, len(cycles))
	sorted = append(sorted, cycles...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDate.After(sorted[j].StartDate)
	})
	return sorted
}

// consecutiveStartGaps expects cycles sorted newest first and returns the
// day counts between adjacent start dates that pass the plausibility
// filter 0 < gap < 60.
func consecutiveStartGaps(sortedCycles []models.Cycle) []int {
	if len(sortedCycles) < 2 {
		return nil
	}

	gaps := make([]int, 0, len(sortedCycles)-1)
	for i := 1; i < len(sortedCycles); i++ {
		gap := DaysBetween(sortedCycles[i].StartDate, sortedCycles[i-1].StartDate)
		if gap > 0 && gap < maxPlausibleGapDays {
			gaps = append(gaps, gap)
		}
	}
	return gaps
}

func averageInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}
