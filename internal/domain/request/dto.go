package request

type CreateRequestDTO struct {
	Title                   string   `json:"title"`
	Description             string   `json:"description"`
	TechnicalArea           []string `json:"technical_area"`
	Urgency                 string   `json:"urgency" binding:"omitempty,oneof=low medium high critical"`
	CommunicationPreference []string `json:"communication_preference"`
	EstimatedDuration       int      `json:"estimated_duration" binding:"omitempty,gt=0"`
	BudgetRange             string   `json:"budget_range" binding:"omitempty,oneof=under_500 500_1000 1000_2500 2500_5000 over_5000 undecided"`
	CodeSnippet             string   `json:"code_snippet"`
}

// UpdateRequestDTO carries partial edits; id, client_id and status are not editable.
type UpdateRequestDTO struct {
	Title                   *string  `json:"title"`
	Description             *string  `json:"description"`
	TechnicalArea           []string `json:"technical_area"`
	Urgency                 *string  `json:"urgency" binding:"omitempty,oneof=low medium high critical"`
	CommunicationPreference []string `json:"communication_preference"`
	EstimatedDuration       *int     `json:"estimated_duration" binding:"omitempty,gt=0"`
	BudgetRange             *string  `json:"budget_range" binding:"omitempty,oneof=under_500 500_1000 1000_2500 2500_5000 over_5000 undecided"`
	CodeSnippet             *string  `json:"code_snippet"`
}

type CancelRequestDTO struct {
	Reason string `json:"reason" binding:"required"`
}
