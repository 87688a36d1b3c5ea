package request

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

// Status values are persisted verbatim; existing rows may carry any of these.
const (
	StatusOpen              Status = "open"
	StatusPending           Status = "pending"
	StatusMatching          Status = "matching"
	StatusInProgress        Status = "in-progress"
	StatusApproved          Status = "approved"
	StatusScheduled         Status = "scheduled"
	StatusCompleted         Status = "completed"
	StatusCancelled         Status = "cancelled"
	StatusCancelledByClient Status = "cancelled_by_client"
)

// OpenStatuses is the "open for applications" set shown to browsing developers.
var OpenStatuses = []Status{StatusOpen, StatusPending, StatusMatching}

// Terminal reports whether the request can no longer be edited or cancelled.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusCancelledByClient:
		return true
	}
	return false
}

// OpenForApplications reports whether developers may still apply.
func (s Status) OpenForApplications() bool {
	for _, o := range OpenStatuses {
		if s == o {
			return true
		}
	}
	return false
}

type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

type BudgetRange string

const (
	BudgetUnder500  BudgetRange = "under_500"
	Budget500To1K   BudgetRange = "500_1000"
	Budget1KTo2500  BudgetRange = "1000_2500"
	Budget2500To5K  BudgetRange = "2500_5000"
	BudgetOver5K    BudgetRange = "over_5000"
	BudgetUndecided BudgetRange = "undecided"
)

type HelpRequest struct {
	ID                      string                      `gorm:"primaryKey;type:uuid" json:"id"`
	ClientID                uint                        `gorm:"index;not null" json:"client_id"`
	Title                   string                      `gorm:"size:200;not null" json:"title"`
	Description             string                      `gorm:"type:text;not null" json:"description"`
	TechnicalArea           datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"technical_area"`
	Urgency                 Urgency                     `gorm:"type:varchar(20);default:'medium'" json:"urgency"`
	CommunicationPreference datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"communication_preference"`
	EstimatedDuration       int                         `gorm:"default:0" json:"estimated_duration"`
	BudgetRange             BudgetRange                 `gorm:"type:varchar(20);default:'undecided'" json:"budget_range"`
	CodeSnippet             string                      `gorm:"type:text" json:"code_snippet"`
	Status                  Status                      `gorm:"type:varchar(30);default:'pending';index" json:"status"`
	CancellationReason      *string                     `gorm:"type:text" json:"cancellation_reason,omitempty"`
	SelectedDeveloperID     *uint                       `json:"selected_developer_id,omitempty"`
	CreatedAt               time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (HelpRequest) TableName() string {
	return "help_requests"
}

// WithCount decorates a request with its application count for client dashboards.
type WithCount struct {
	HelpRequest
	ApplicationCount int64 `json:"application_count"`
}
