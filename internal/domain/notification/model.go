package notification

import (
	"time"

	"gorm.io/datatypes"
)

type EntityType string

const (
	EntityApplication       EntityType = "application"
	EntityApplicationStatus EntityType = "application_status"
	EntityMessage           EntityType = "message"
)

type Type string

const (
	TypeNewApplication      Type = "new_application"
	TypeApplicationApproved Type = "application_approved"
	TypeApplicationRejected Type = "application_rejected"
	TypeNewMessage          Type = "new_message"
)

// Notification is created server-side when a triggering event occurs and is
// mutated only to flip is_read.
type Notification struct {
	ID               string         `gorm:"primaryKey;type:uuid" json:"id"`
	UserID           uint           `gorm:"index;not null" json:"user_id"`
	EntityType       EntityType     `gorm:"type:varchar(30);not null" json:"entity_type"`
	NotificationType Type           `gorm:"type:varchar(30);not null" json:"notification_type"`
	RelatedEntityID  string         `gorm:"type:uuid" json:"related_entity_id"`
	Title            string         `gorm:"size:200" json:"title"`
	Message          string         `gorm:"type:text" json:"message"`
	IsRead           bool           `gorm:"default:false" json:"is_read"`
	ActionData       datatypes.JSON `gorm:"type:jsonb" json:"action_data"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
