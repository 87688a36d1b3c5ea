package application

import (
	"testing"

	"github.com/devmatch/devmatch-go/internal/domain/profile"
	"github.com/devmatch/devmatch-go/internal/domain/request"
	"github.com/stretchr/testify/assert"
)

func TestScoreMatch_Bounds(t *testing.T) {
	req := &request.HelpRequest{
		TechnicalArea: []string{"go", "postgres"},
		BudgetRange:   request.Budget1KTo2500,
	}

	perfect := &profile.DeveloperProfile{
		Skills:          []string{"Go", "Postgres"},
		ExperienceYears: 15,
		HourlyRate:      80,
	}
	assert.Equal(t, 1.0, scoreMatch(req, perfect))

	empty := &profile.DeveloperProfile{}
	score := scoreMatch(req, empty)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestSkillOverlap_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, skillOverlap([]string{"Go"}, []string{"go "}))
	assert.Equal(t, 0.5, skillOverlap([]string{"go", "rust"}, []string{"GO"}))
	assert.Equal(t, 0.0, skillOverlap([]string{"go"}, nil))
	assert.Equal(t, 0.0, skillOverlap(nil, []string{"go"}))
}

func TestExperienceFit_Saturates(t *testing.T) {
	assert.Equal(t, 0.0, experienceFit(0))
	assert.Equal(t, 0.5, experienceFit(5))
	assert.Equal(t, 1.0, experienceFit(10))
	assert.Equal(t, 1.0, experienceFit(30))
}

func TestRateFit_DecaysAboveCeiling(t *testing.T) {
	// under_500 band: ceiling 25
	assert.Equal(t, 1.0, rateFit(request.BudgetUnder500, 25))
	assert.Equal(t, 0.5, rateFit(request.BudgetUnder500, 37.5))
	assert.Equal(t, 0.0, rateFit(request.BudgetUnder500, 50))
	assert.Equal(t, 0.0, rateFit(request.BudgetUnder500, 500))

	// undeclared rate contributes the neutral midpoint
	assert.Equal(t, 0.5, rateFit(request.BudgetUnder500, 0))

	// unknown band falls back to the undecided ceiling
	assert.Equal(t, 1.0, rateFit(request.BudgetRange("bogus"), 100))
}
