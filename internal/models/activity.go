package models

import "time"

const (
	RiskLow     = "low"
	RiskMedium  = "medium"
	RiskHigh    = "high"
	RiskUnknown = "unknown"
)

// Activity is one logged intimate encounter. Risk is assigned once, from
// the prediction in effect when the record is created, and is kept as a
// historical snapshot when later cycles change the prediction.
type Activity struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index:idx_activities_user_date"`
	Date       time.Time `gorm:"type:date;not null;index:idx_activities_user_date"`
	Protection bool      `gorm:"not null;default:false"`
	Risk       string    `gorm:"column:pregnancy_risk;not null;default:unknown"`
	Notes      string
	CreatedAt  time.Time
}
