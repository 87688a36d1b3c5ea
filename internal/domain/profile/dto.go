package profile

type UpsertProfileDTO struct {
	DisplayName     *string  `json:"display_name" binding:"omitempty,max=100"`
	Bio             *string  `json:"bio"`
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experience_years" binding:"omitempty,gte=0"`
	HourlyRate      *float64 `json:"hourly_rate" binding:"omitempty,gte=0"`
}
