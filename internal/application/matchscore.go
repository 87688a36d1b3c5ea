package application

import (
	"strings"

	"github.com/devmatch/devmatch-go/internal/domain/profile"
	"github.com/devmatch/devmatch-go/internal/domain/request"
)

// Score weights. The score is advisory only; it never gates a submission.
const (
	skillWeight      = 0.5
	experienceWeight = 0.3
	rateWeight       = 0.2

	// experience contribution saturates at this many years
	experienceCap = 10
)

// budgetCeiling maps each budget band to the hourly rate above which the
// rate-fit contribution starts to decay.
var budgetCeiling = map[request.BudgetRange]float64{
	request.BudgetUnder500:  25,
	request.Budget500To1K:   50,
	request.Budget1KTo2500:  100,
	request.Budget2500To5K:  150,
	request.BudgetOver5K:    250,
	request.BudgetUndecided: 100,
}

// scoreMatch computes the advisory match score in [0,1] as a weighted linear
// sum over the developer's static profile fields.
func scoreMatch(req *request.HelpRequest, p *profile.DeveloperProfile) float64 {
	score := skillWeight*skillOverlap(req.TechnicalArea, p.Skills) +
		experienceWeight*experienceFit(p.ExperienceYears) +
		rateWeight*rateFit(req.BudgetRange, p.HourlyRate)

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// skillOverlap is the fraction of requested technical areas the developer
// declares as skills, compared case-insensitively.
func skillOverlap(areas, skills []string) float64 {
	if len(areas) == 0 {
		return 0
	}
	declared := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		declared[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	var hits int
	for _, a := range areas {
		if _, ok := declared[strings.ToLower(strings.TrimSpace(a))]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(areas))
}

func experienceFit(years int) float64 {
	if years <= 0 {
		return 0
	}
	if years >= experienceCap {
		return 1
	}
	return float64(years) / experienceCap
}

// rateFit is 1 while the declared hourly rate stays inside the budget band's
// ceiling and decays linearly to 0 at twice the ceiling.
func rateFit(band request.BudgetRange, hourlyRate float64) float64 {
	ceiling, ok := budgetCeiling[band]
	if !ok {
		ceiling = budgetCeiling[request.BudgetUndecided]
	}
	if hourlyRate <= 0 {
		return 0.5 // undeclared rate: neutral contribution
	}
	if hourlyRate <= ceiling {
		return 1
	}
	if hourlyRate >= 2*ceiling {
		return 0
	}
	return (2*ceiling - hourlyRate) / ceiling
}
