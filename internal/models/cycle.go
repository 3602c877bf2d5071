package models

import "time"

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

// Cycle is one logged menstrual cycle. StartDate anchors all derived
// date arithmetic; EndDate stays nil while the cycle is still open.
type Cycle struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"not null;index:idx_cycles_user_start"`
	StartDate time.Time  `gorm:"type:date;not null;index:idx_cycles_user_start"`
	EndDate   *time.Time `gorm:"type:date"`
	Flow      string     `gorm:"not null;default:medium"`
	Symptoms  []string   `gorm:"serializer:json"`
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidFlow(flow string) bool {
	switch flow {
	case FlowLight, FlowMedium, FlowHeavy:
		return true
	}
	return false
}
