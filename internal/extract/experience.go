package extract

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/hireloop/resume-ranker/internal/candidate"
	"github.com/hireloop/resume-ranker/internal/logger"
)

// maxExperiences caps the work history. Resumes listing more than five
// positions add noise, not signal, to the heuristics downstream.
const maxExperiences = 5

// lookbackLines bounds how far above a date range the role/company scan goes.
const lookbackLines = 10

var (
	dateRangeRe = regexp.MustCompile(`(?i)(\w+\s+\d{4}|\d{4})\s*[-–—|]\s*(\w+\s+\d{4}|\d{4}|present|current)`)
	dateTokenRe = regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\b|\b\d{4}\b|\b(?:present|current)\b`)
	atSplitRe   = regexp.MustCompile(`(?i)\s+at\s+|\s*@\s*`)
	bulletCut   = " \t•|-–—,"

	// Experience section headers, most specific first.
	experienceHeaderRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^professional experience\b`),
		regexp.MustCompile(`(?i)^work experience\b`),
		regexp.MustCompile(`(?i)^employment history\b`),
		regexp.MustCompile(`(?i)^experience\b`),
		regexp.MustCompile(`(?i)^employment\b`),
		regexp.MustCompile(`(?i)^career history\b`),
	}
)

var bulletLeads = []string{"•", "·", "-", "–", "—", "*"}

// isBulleted reports whether a trimmed line starts with a bullet marker.
func isBulleted(line string) bool {
	for _, lead := range bulletLeads {
		if strings.HasPrefix(line, lead) {
			return true
		}
	}
	return false
}

// experienceStrategy mirrors strategy for the slice-valued experience cascade.
type experienceStrategy struct {
	name string
	run  func(doc Document) []candidate.ExperienceEntry
}

// Experiences extracts up to five work-history entries. The result is never
// empty: when no tier finds anything a single placeholder entry is returned
// so downstream scoring always has a history to inspect.
func (e *Extractor) Experiences(doc Document) []candidate.ExperienceEntry {
	log := logger.WithComponent(e.logger, "experience")

	strategies := []experienceStrategy{
		{name: "section-dated", run: e.experiencesFromSection},
		{name: "document-dated", run: e.experiencesFromDateRanges},
		{name: "dash-delimited", run: e.experiencesFromDashLines},
		{name: "title-synthesis", run: e.experiencesFromFirstTitle},
	}

	for _, s := range strategies {
		entries := s.run(doc)
		if len(entries) == 0 {
			log.Debug("strategy produced no result", zap.String(logger.FieldStrategy, s.name))
			continue
		}

		if len(entries) > maxExperiences {
			entries = entries[:maxExperiences]
		}
		log.Debug("strategy matched",
			zap.String(logger.FieldStrategy, s.name),
			zap.Int("entries", len(entries)),
		)
		return entries
	}

	log.Debug("cascade exhausted, using placeholder entry")
	return []candidate.ExperienceEntry{{
		Role:    candidate.RoleNotSpecified,
		Company: candidate.CompanyNotSpecified,
	}}
}

// experiencesFromSection bounds the date-anchored scan to the text after an
// experience section header, which keeps education and project date ranges
// out of the work history.
func (e *Extractor) experiencesFromSection(doc Document) []candidate.ExperienceEntry {
	for _, headerRe := range experienceHeaderRes {
		for i, line := range doc.Lines {
			if !headerRe.MatchString(line) {
				continue
			}
			return e.scanDatedLines(doc.Lines[i+1:])
		}
	}
	return nil
}

// experiencesFromDateRanges anchors on date ranges like "Jan 2020 - Present"
// anywhere in the document.
func (e *Extractor) experiencesFromDateRanges(doc Document) []candidate.ExperienceEntry {
	return e.scanDatedLines(doc.Lines)
}

// scanDatedLines collects an entry per date-range line. The rest of the line,
// and failing that the neighboring lines, supply the role and company.
func (e *Extractor) scanDatedLines(lines []string) []candidate.ExperienceEntry {
	var entries []candidate.ExperienceEntry

	for i, line := range lines {
		loc := dateRangeRe.FindStringIndex(line)
		if loc == nil {
			continue
		}

		period := line[loc[0]:loc[1]]
		rest := strings.Trim(line[:loc[0]]+" "+line[loc[1]:], bulletCut)

		role, company := e.splitRoleCompany(rest)
		if role == "" || company == "" {
			backRole, backCompany := e.classifyPrecedingLines(lines, i)
			if role == "" {
				role = backRole
			}
			if company == "" {
				company = backCompany
			}
		}
		if company == "" {
			company = e.companyFromNeighbor(lines, i+1)
		}
		if role == "" {
			role = candidate.RoleNotSpecified
		}
		if company == "" {
			company = candidate.CompanyNotSpecified
		}

		entries = append(entries, candidate.ExperienceEntry{
			Role:    role,
			Company: company,
			Period:  period,
		})
		if len(entries) == maxExperiences {
			break
		}
	}
	return entries
}

// classifyPrecedingLines walks up to lookbackLines lines above a date range
// and labels them by keyword: company-suffix lines become the company,
// role-keyword lines the role, and the first unclassified line defaults to
// the role. Bulleted lines are duty descriptions, not headings, and are
// skipped outright.
func (e *Extractor) classifyPrecedingLines(lines []string, dateIdx int) (role, company string) {
	var unclassified string

	for i := dateIdx - 1; i >= 0 && dateIdx-i <= lookbackLines; i-- {
		if isBulleted(lines[i]) {
			continue
		}
		line := strings.Trim(lines[i], " ,")
		if len(line) < 3 || len(line) > 80 ||
			dateRangeRe.MatchString(line) ||
			containsAnyFold(line, e.lists.NarrativeWords) {
			continue
		}

		switch {
		case company == "" && containsAnyFold(line, e.lists.CompanySuffixes):
			company = line
		case role == "" && containsAnyFold(line, e.lists.RoleKeywords):
			role = line
		case unclassified == "":
			unclassified = line
		}
	}

	if role == "" {
		role = unclassified
	}
	return role, company
}

// experiencesFromDashLines parses "Role - Company - Period" shaped lines
// where one dash-separated segment carries a date or month token.
func (e *Extractor) experiencesFromDashLines(doc Document) []candidate.ExperienceEntry {
	var entries []candidate.ExperienceEntry

	for _, line := range doc.Lines {
		parts := strings.Split(line, " - ")
		if len(parts) < 3 {
			continue
		}

		var rest []string
		period := ""
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if period == "" && dateTokenRe.MatchString(part) {
				period = part
				continue
			}
			rest = append(rest, part)
		}
		if period == "" || len(rest) < 2 {
			continue
		}

		entries = append(entries, candidate.ExperienceEntry{
			Role:    rest[0],
			Company: rest[1],
			Period:  period,
		})
		if len(entries) == maxExperiences {
			break
		}
	}
	return entries
}

// experiencesFromFirstTitle synthesizes a single entry from the first
// job-title keyword in the first 20 lines, as the last resort before the
// generic placeholder.
func (e *Extractor) experiencesFromFirstTitle(doc Document) []candidate.ExperienceEntry {
	for _, line := range doc.firstLines(20) {
		if len(line) > 80 || !containsAnyFold(line, e.lists.RoleKeywords) {
			continue
		}
		return []candidate.ExperienceEntry{{
			Role:    strings.Trim(line, bulletCut),
			Company: candidate.CompanyNotSpecified,
		}}
	}
	return nil
}

// splitRoleCompany divides "Senior Engineer at Acme Corp" shaped text. When
// no separator is present the whole text is treated as the role.
func (e *Extractor) splitRoleCompany(text string) (role, company string) {
	if text == "" {
		return "", ""
	}

	if loc := atSplitRe.FindStringIndex(text); loc != nil {
		role = strings.Trim(text[:loc[0]], bulletCut)
		company = strings.Trim(text[loc[1]:], bulletCut)
		return role, company
	}

	if before, after, found := strings.Cut(text, ","); found {
		role = strings.Trim(before, bulletCut)
		company = strings.Trim(after, bulletCut)
		return role, company
	}

	return strings.Trim(text, bulletCut), ""
}

// companyFromNeighbor accepts the adjacent line as the company only when it
// looks like a company name.
func (e *Extractor) companyFromNeighbor(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	line := lines[i]
	if len(line) > 60 {
		return ""
	}
	if containsAnyFold(line, e.lists.CompanySuffixes) || containsAnyFold(line, e.lists.NotableEmployers) {
		return strings.Trim(line, bulletCut)
	}
	return ""
}
