package candidate

import (
	"fmt"
	"math"
	"strings"

	"github.com/hireloop/resume-ranker/internal/lexicon"
)

const (
	baseScore          = 5.0
	experienceStep     = 0.5
	experienceBonusCap = 2.0
	csSkillStep        = 0.3
	csSkillBonusCap    = 1.5
	techBonus          = 0.8
	leadershipBonus    = 0.7
	minHeuristicScore  = 1.0
	maxScore           = 10.0

	approveThreshold = 8.0
	holdThreshold    = 6.5

	maxStrengths = 5
	maxWeakness  = 3
)

var csSkillMarkers = []string{"customer", "success", "account", "client"}

var leadershipMarkers = []string{"senior", "lead", "director", "manager"}

// genericStrengths pad the strengths list so it never drops below three.
var genericStrengths = []string{
	"Relevant industry experience",
	"Strong communication skills",
	"Adaptable team player",
}

// Assembler builds resume-only candidates from parsed data. It holds the word
// lists consulted during scoring and strengths generation.
type Assembler struct {
	lists lexicon.Lists
}

func NewAssembler(lists lexicon.Lists) *Assembler {
	return &Assembler{lists: lists}
}

// Build assembles a scored candidate from parsed resume data. When id is
// empty a unique one is assigned.
func (a *Assembler) Build(data ParsedResume, id string) *Candidate {
	if id == "" {
		id = NewID()
	}

	score := a.Score(data)

	return &Candidate{
		ID:             id,
		Name:           data.Name,
		Location:       data.Location,
		CurrentRole:    data.CurrentRole,
		CurrentCompany: data.CurrentCompany,
		Score:          score,
		Experiences:    data.Experiences,
		Strengths:      a.Strengths(data),
		Weaknesses:     a.Weaknesses(data),
		Recommendation: RecommendationForScore(score),
	}
}

// Score computes the resume-only heuristic score: base 5.0 plus capped
// bonuses for experience volume, customer-success skills, tech employers and
// leadership titles, clamped to [1.0, 10.0] and rounded to one decimal.
func (a *Assembler) Score(data ParsedResume) float64 {
	score := baseScore

	score += math.Min(float64(len(data.Experiences))*experienceStep, experienceBonusCap)
	score += math.Min(float64(len(a.csSkills(data.Skills)))*csSkillStep, csSkillBonusCap)

	if a.hasTechExperience(data.Experiences) {
		score += techBonus
	}
	if hasLeadershipRole(data.Experiences) {
		score += leadershipBonus
	}

	return Round1(math.Min(math.Max(score, minHeuristicScore), maxScore))
}

// Strengths derives human-readable strengths from the parsed data. At least
// three entries are always returned, at most five.
func (a *Assembler) Strengths(data ParsedResume) []string {
	var strengths []string

	if len(data.Experiences) >= 3 {
		strengths = append(strengths, fmt.Sprintf("%d+ years in relevant roles", len(data.Experiences)))
	}

	for _, skill := range data.Skills {
		lower := strings.ToLower(skill)
		if strings.Contains(lower, "customer") || strings.Contains(lower, "success") {
			strengths = append(strengths, "Strong Customer Success background")
			break
		}
	}

	if a.hasNotableEmployer(data.Experiences) {
		strengths = append(strengths, "Experience at leading tech companies")
	}

	for _, exp := range data.Experiences {
		lower := strings.ToLower(exp.Role)
		if strings.Contains(lower, "senior") || strings.Contains(lower, "lead") {
			strengths = append(strengths, "Demonstrated career progression")
			break
		}
	}

	for _, generic := range genericStrengths {
		if len(strengths) >= 3 {
			break
		}
		strengths = append(strengths, generic)
	}

	if len(strengths) > maxStrengths {
		strengths = strengths[:maxStrengths]
	}
	return strengths
}

// Weaknesses derives human-readable weaknesses. Never empty, at most three.
func (a *Assembler) Weaknesses(data ParsedResume) []string {
	var weaknesses []string

	if len(data.Experiences) < 2 {
		weaknesses = append(weaknesses, "Limited work experience")
	}

	hasCSRole := false
	for _, exp := range data.Experiences {
		lower := strings.ToLower(exp.Role)
		if strings.Contains(lower, "customer success") ||
			strings.Contains(lower, "customer") ||
			strings.Contains(lower, "account management") {
			hasCSRole = true
			break
		}
	}
	if !hasCSRole {
		weaknesses = append(weaknesses, "No direct Customer Success experience")
	}

	if len(weaknesses) == 0 {
		weaknesses = append(weaknesses, "May need additional training in specific tools")
	}

	if len(weaknesses) > maxWeakness {
		weaknesses = weaknesses[:maxWeakness]
	}
	return weaknesses
}

// RecommendationForScore maps a resume-only score onto the tri-state
// disposition. The requirements-driven path does not use it: there the
// recommendation defaults to approve and a human reassigns it.
func RecommendationForScore(score float64) Recommendation {
	switch {
	case score >= approveThreshold:
		return Approve
	case score >= holdThreshold:
		return Hold
	default:
		return Reject
	}
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func (a *Assembler) csSkills(skills []string) []string {
	var matched []string
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, marker := range csSkillMarkers {
			if strings.Contains(lower, marker) {
				matched = append(matched, skill)
				break
			}
		}
	}
	return matched
}

func (a *Assembler) hasTechExperience(experiences []ExperienceEntry) bool {
	for _, exp := range experiences {
		company := strings.ToLower(exp.Company)
		role := strings.ToLower(exp.Role)
		for _, keyword := range a.lists.TechKeywords {
			kw := strings.ToLower(keyword)
			if strings.Contains(company, kw) || strings.Contains(role, kw) {
				return true
			}
		}
	}
	return false
}

func (a *Assembler) hasNotableEmployer(experiences []ExperienceEntry) bool {
	for _, exp := range experiences {
		company := strings.ToLower(exp.Company)
		for _, name := range a.lists.NotableEmployers {
			if strings.Contains(company, strings.ToLower(name)) {
				return true
			}
		}
	}
	return false
}

func hasLeadershipRole(experiences []ExperienceEntry) bool {
	for _, exp := range experiences {
		lower := strings.ToLower(exp.Role)
		for _, marker := range leadershipMarkers {
			if strings.Contains(lower, marker) {
				return true
			}
		}
	}
	return false
}
