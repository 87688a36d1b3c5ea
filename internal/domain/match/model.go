package match

import (
	"time"

	"github.com/devmatch/devmatch-go/internal/domain/profile"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved_by_client"
	StatusRejected  Status = "rejected_by_client"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// MaxProposedRate is the ceiling the proposed_rate column can hold (numeric(8,2)).
const MaxProposedRate = 999999.99

// Match is a developer's application against a help request. At most one row
// exists per (request, developer) pair; resubmission updates it in place.
type Match struct {
	ID               string    `gorm:"primaryKey;type:uuid" json:"id"`
	RequestID        string    `gorm:"type:uuid;not null;uniqueIndex:idx_match_request_developer" json:"request_id"`
	DeveloperID      uint      `gorm:"not null;uniqueIndex:idx_match_request_developer" json:"developer_id"`
	Status           Status    `gorm:"type:varchar(30);default:'pending';index" json:"status"`
	ProposedMessage  string    `gorm:"type:text" json:"proposed_message"`
	ProposedRate     float64   `gorm:"type:numeric(8,2);default:0" json:"proposed_rate"`
	ProposedDuration int       `gorm:"default:0" json:"proposed_duration"`
	MatchScore       float64   `gorm:"default:0" json:"match_score"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Match) TableName() string {
	return "help_request_matches"
}

// WithDeveloper decorates a match with the applying developer's public profile.
// Developer is always populated; a missing profile row yields the placeholder.
type WithDeveloper struct {
	Match
	Developer profile.Public `json:"developer"`
}
