package services

import (
	"time"

	"github.com/lunelabs/cyclefem/internal/models"
)

// ClassifyRisk assigns a conception-risk level to an event date using the
// prediction in effect at classification time. Without a prediction the
// level is unknown; outside the fertile window it is low; within one day
// of ovulation it is high, otherwise medium.
//
// Protection use is deliberately not consulted here: the stored level
// reflects cycle timing only, matching the behavior the product shipped
// with. Lowering the level for protected encounters is an open product
// question, not something to decide in code.
func ClassifyRisk(date time.Time, prediction *Prediction) string {
	if prediction == nil {
		return models.RiskUnknown
	}

	day := DateOnly(date)
	if day.Before(prediction.FertileWindow.Start) || day.After(prediction.FertileWindow.End) {
		return models.RiskLow
	}

	distance := DaysBetween(prediction.Ovulation, day)
	if distance < 0 {
		distance = -distance
	}
	if distance <= 1 {
		return models.RiskHigh
	}
	return models.RiskMedium
}
