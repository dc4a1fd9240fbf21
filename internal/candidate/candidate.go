// Package candidate defines the records produced by the screening engine and
// the heuristics that turn parsed resume data into a scored candidate.
package candidate

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
)

// Recommendation is the tri-state hiring disposition attached to a candidate.
type Recommendation string

const (
	Approve Recommendation = "approve"
	Hold    Recommendation = "hold"
	Reject  Recommendation = "reject"
)

// Sentinel values returned when extraction finds nothing useful. Callers treat
// them as low-confidence results, not errors.
const (
	UnknownName         = "Unknown Name"
	UnknownLocation     = "Location not specified"
	RoleNotSpecified    = "Role not specified"
	CompanyNotSpecified = "Company not specified"
)

// ExperienceEntry is one parsed work-history line-item. Period keeps the raw
// matched substring, e.g. "Jan 2020 - Present"; no date parsing happens.
type ExperienceEntry struct {
	Role    string `json:"role"`
	Company string `json:"company"`
	Period  string `json:"period"`
}

// ParsedResume is the intermediate structural extraction of a single resume.
type ParsedResume struct {
	Name           string            `json:"name"`
	Location       string            `json:"location"`
	CurrentRole    string            `json:"current_role"`
	CurrentCompany string            `json:"current_company"`
	Experiences    []ExperienceEntry `json:"experiences"`
	Skills         []string          `json:"skills"`
	Education      []string          `json:"education"`
}

// Candidate is the final output record. Score is in [0,10] with one decimal of
// precision. Strengths and Weaknesses are never empty.
type Candidate struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Location       string            `json:"location"`
	CurrentRole    string            `json:"current_role"`
	CurrentCompany string            `json:"current_company"`
	Score          float64           `json:"score"`
	Experiences    []ExperienceEntry `json:"experiences"`
	Strengths      []string          `json:"strengths"`
	Weaknesses     []string          `json:"weaknesses"`
	Recommendation Recommendation    `json:"recommendation"`
}

// NewID returns a unique candidate ID for the resume-only path, where no
// caller-assigned ordering exists.
func NewID() string {
	return uuid.NewString()
}

// Candidates is an ordered candidate list.
type Candidates struct {
	Items []*Candidate
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) FindByID(id string) *Candidate {
	for _, item := range c.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// SortedByScore returns a copy of the items ordered by score descending.
// The receiver keeps its input order.
func (c *Candidates) SortedByScore() []*Candidate {
	ranked := make([]*Candidate, len(c.Items))
	copy(ranked, c.Items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// SetRecommendation reassigns the recommendation for the candidate with the
// given ID. Returns false when no such candidate exists.
func (c *Candidates) SetRecommendation(id string, rec Recommendation) bool {
	item := c.FindByID(id)
	if item == nil {
		return false
	}
	item.Recommendation = rec
	return true
}

// DumpToTmpFile writes the candidate list as indented JSON to a temp file and
// returns the file name.
func (c *Candidates) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "candidates_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ToFile writes the candidate list as indented JSON to the given path.
func (c *Candidates) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
