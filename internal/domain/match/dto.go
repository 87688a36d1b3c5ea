package match

type SubmitMatchDTO struct {
	Message          string  `json:"message" binding:"required"`
	ProposedRate     float64 `json:"proposed_rate" binding:"omitempty,gte=0"`
	ProposedDuration int     `json:"proposed_duration" binding:"omitempty,gte=0"`
}
