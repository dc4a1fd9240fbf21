// Package screener ties the extraction, matching and scoring pieces together.
// It exposes the two screening paths: requirements-driven, where resumes are
// scored against a parsed job spec, and resume-only, where a heuristic score
// is derived from the parsed fields alone.
package screener

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/hireloop/resume-ranker/internal/candidate"
	"github.com/hireloop/resume-ranker/internal/extract"
	"github.com/hireloop/resume-ranker/internal/lexicon"
	"github.com/hireloop/resume-ranker/internal/logger"
	"github.com/hireloop/resume-ranker/internal/match"
	"github.com/hireloop/resume-ranker/internal/requirements"
)

type Screener struct {
	lists     lexicon.Lists
	extractor *extract.Extractor
	assembler *candidate.Assembler
	logger    *zap.Logger
}

func New(lists lexicon.Lists, log *zap.Logger) *Screener {
	if log == nil {
		log = zap.NewNop()
	}
	return &Screener{
		lists:     lists,
		extractor: extract.New(lists, log),
		assembler: candidate.NewAssembler(lists),
		logger:    log,
	}
}

// ParseResumeText runs every extractor over one resume. It never fails: each
// field degrades to its sentinel when nothing is found. The current role
// prefers an explicit label and falls back to the most recent history entry.
func (s *Screener) ParseResumeText(text string) candidate.ParsedResume {
	doc := extract.Prepare(text, s.lists)
	experiences := s.extractor.Experiences(doc)

	role, ok := s.extractor.CurrentRole(doc)
	if !ok {
		role = experiences[0].Role
	}

	return candidate.ParsedResume{
		Name:           s.extractor.Name(doc),
		Location:       s.extractor.Location(doc),
		CurrentRole:    role,
		CurrentCompany: experiences[0].Company,
		Experiences:    experiences,
		Skills:         s.extractor.Skills(doc),
		Education:      s.extractor.Education(doc),
	}
}

// BuildCandidate runs the resume-only path for one resume: parse, then score
// with the field heuristics. When id is empty a unique one is assigned.
func (s *Screener) BuildCandidate(text, id string) *candidate.Candidate {
	return s.assembler.Build(s.ParseResumeText(text), id)
}

// ScreenResumes runs the resume-only path over a batch. Input order is kept.
func (s *Screener) ScreenResumes(resumes []string) *candidate.Candidates {
	log := logger.WithComponent(s.logger, "screener")

	out := &candidate.Candidates{}
	for _, text := range resumes {
		c := s.BuildCandidate(text, "")
		log.Debug("screened resume",
			zap.String("candidate", c.Name),
			zap.Float64("score", c.Score),
		)
		out.Items = append(out.Items, c)
	}
	return out
}

// ScreenAgainstRequirements scores a batch of resumes against requirement
// text. Candidates get sequential IDs starting at "1", strengths mirror the
// matched skills and weaknesses the missing ones, and every recommendation
// starts as approve for a human to reassign during triage.
func (s *Screener) ScreenAgainstRequirements(requirementText string, resumes []string) *candidate.Candidates {
	log := logger.WithComponent(s.logger, "screener")

	spec := requirements.Parse(requirementText)
	if spec.IsEmpty() {
		log.Warn("no must-have or nice-to-have lines recognized, all scores will be zero")
	}

	out := &candidate.Candidates{}
	for i, text := range resumes {
		data := s.ParseResumeText(text)
		result := match.Evaluate(spec, text)

		strengths := result.Matched
		if len(strengths) == 0 {
			strengths = []string{"No skills matched"}
		}
		weaknesses := result.Missing
		if len(weaknesses) == 0 {
			weaknesses = []string{"None"}
		}

		c := &candidate.Candidate{
			ID:             strconv.Itoa(i + 1),
			Name:           data.Name,
			Location:       data.Location,
			CurrentRole:    data.CurrentRole,
			CurrentCompany: data.CurrentCompany,
			Score:          result.Score,
			Experiences:    data.Experiences,
			Strengths:      strengths,
			Weaknesses:     weaknesses,
			Recommendation: candidate.Approve,
		}

		log.Debug("screened resume against requirements",
			zap.String("id", c.ID),
			zap.String("candidate", c.Name),
			zap.Float64("score", c.Score),
			zap.Int("matched", len(result.Matched)),
		)
		out.Items = append(out.Items, c)
	}
	return out
}
