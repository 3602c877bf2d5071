package models

import "time"

type ChatMessage struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index:idx_chat_messages_user_created"`
	Message   string `gorm:"not null"`
	Response  string `gorm:"not null"`
	CreatedAt time.Time
}
