package chat

import "time"

// ChatMessage is append-only; is_read flips when the receiver opens the thread.
type ChatMessage struct {
	ID            string    `gorm:"primaryKey;type:uuid" json:"id"`
	HelpRequestID string    `gorm:"type:uuid;index;not null" json:"help_request_id"`
	SenderID      uint      `gorm:"not null" json:"sender_id"`
	ReceiverID    uint      `gorm:"not null;index" json:"receiver_id"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	IsRead        bool      `gorm:"default:false" json:"is_read"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
