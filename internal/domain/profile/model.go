package profile

import (
	"time"

	"gorm.io/datatypes"
)

// DeveloperProfile holds the public fields a developer exposes to clients.
type DeveloperProfile struct {
	ID              uint                         `gorm:"primaryKey" json:"id"`
	UserID          uint                         `gorm:"uniqueIndex;not null" json:"user_id"`
	DisplayName     string                       `gorm:"size:100;not null" json:"display_name"`
	Bio             string                       `gorm:"type:text" json:"bio"`
	Skills          datatypes.JSONSlice[string]  `gorm:"type:jsonb" json:"skills"`
	ExperienceYears int                          `gorm:"default:0" json:"experience_years"`
	HourlyRate      float64                      `gorm:"type:numeric(8,2);default:0" json:"hourly_rate"`
	AvatarKey       string                       `gorm:"size:255" json:"avatar_key"`
	CreatedAt       time.Time                    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// Public is the denormalized view joined onto application listings.
type Public struct {
	UserID          uint     `json:"user_id"`
	Name            string   `json:"name"`
	Bio             string   `json:"bio"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	HourlyRate      float64  `json:"hourly_rate"`
	AvatarKey       string   `json:"avatar_key"`
}

// PlaceholderName is substituted when the profile join yields no row.
const PlaceholderName = "Unknown Developer"

// Placeholder returns the well-defined fallback profile for a developer
// whose profile row is missing or malformed.
func Placeholder(userID uint) Public {
	return Public{
		UserID: userID,
		Name:   PlaceholderName,
		Skills: []string{},
	}
}

// ToPublic projects the stored profile onto its public view.
func (p DeveloperProfile) ToPublic() Public {
	skills := []string(p.Skills)
	if skills == nil {
		skills = []string{}
	}
	return Public{
		UserID:          p.UserID,
		Name:            p.DisplayName,
		Bio:             p.Bio,
		Skills:          skills,
		ExperienceYears: p.ExperienceYears,
		HourlyRate:      p.HourlyRate,
		AvatarKey:       p.AvatarKey,
	}
}
