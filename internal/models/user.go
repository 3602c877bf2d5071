package models

import "time"

const (
	DefaultCycleLength = 28
	MinCycleLength     = 21
	MaxCycleLength     = 35
)

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null;default:''"`
	PasswordHash string    `gorm:"not null"`
	CycleLength  int       `gorm:"not null;default:28"`
	CreatedAt    time.Time `gorm:"not null"`
}
