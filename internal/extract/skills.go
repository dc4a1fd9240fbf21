package extract

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/hireloop/resume-ranker/internal/logger"
)

const (
	maxSkills           = 10
	maxEducationPerKind = 3
)

var (
	degreeRe = regexp.MustCompile(`(?i)\b(?:b\.?tech|m\.?tech|b\.?sc|m\.?sc|bsc|msc|mba|bca|mca|pgdm|ph\.?d|bachelor(?:'s)?(?:\s+of\s+[a-z]+(?:\s+[a-z]+)?)?|master(?:'s)?(?:\s+of\s+[a-z]+(?:\s+[a-z]+)?)?|diploma(?:\s+in\s+[a-z]+(?:\s+[a-z]+)?)?)\b`)

	institutionRe = regexp.MustCompile(`(?i)^.{0,60}\b(?:university|college|institute|school)\b.{0,40}$`)
)

var roleHeaders = []string{"designation:", "current role:", "current:", "present:", "role:", "title:", "position:"}

// Skills returns dictionary terms found in the resume, in dictionary order,
// capped at ten. The returned slice is never nil.
func (e *Extractor) Skills(doc Document) []string {
	log := logger.WithComponent(e.logger, "skills")

	skills := []string{}
	for _, term := range e.lists.SkillDictionary {
		if e.skillRes[term].MatchString(doc.Body) {
			skills = append(skills, term)
			if len(skills) == maxSkills {
				break
			}
		}
	}

	log.Debug("dictionary scan finished", zap.Int("matched", len(skills)))
	return skills
}

// Education collects degree mentions and institution lines, each capped at
// three, degrees first. Duplicates are dropped case-insensitively.
func (e *Extractor) Education(doc Document) []string {
	log := logger.WithComponent(e.logger, "education")

	var entries []string
	seen := map[string]bool{}

	degrees := degreeRe.FindAllString(doc.Body, -1)
	for _, degree := range degrees {
		degree = strings.TrimSpace(degree)
		key := strings.ToLower(degree)
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, degree)
		if len(entries) == maxEducationPerKind {
			break
		}
	}

	institutions := 0
	for _, line := range doc.Lines {
		if institutions == maxEducationPerKind {
			break
		}
		if !institutionRe.MatchString(line) {
			continue
		}
		key := strings.ToLower(line)
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, line)
		institutions++
	}

	log.Debug("education scan finished", zap.Int("entries", len(entries)))
	return entries
}

// CurrentRole probes for an explicitly labeled current role near the top of
// the resume. It reports false when nothing is labeled; callers then fall
// back to the most recent work-history entry.
func (e *Extractor) CurrentRole(doc Document) (string, bool) {
	value := e.runCascade("current-role", "", doc, []strategy{
		{name: "labeled-header", run: e.roleFromHeader},
		{name: "top-role-line", run: e.roleFromTopLines},
	})
	return value, value != ""
}

// roleFromHeader picks up "designation:"-style labels.
func (e *Extractor) roleFromHeader(doc Document) (string, bool) {
	lower := strings.ToLower(doc.Body)
	for _, header := range roleHeaders {
		idx := strings.Index(lower, header)
		if idx == -1 {
			continue
		}
		after := doc.Body[idx+len(header):]
		if nl := strings.IndexByte(after, '\n'); nl != -1 {
			after = after[:nl]
		}
		value := strings.TrimSpace(after)
		if len(value) > 2 && len(value) < 60 {
			return value, true
		}
	}
	return "", false
}

// roleFromTopLines accepts a short role-keyword line among the first ten
// lines, where resumes usually state the current title.
func (e *Extractor) roleFromTopLines(doc Document) (string, bool) {
	for _, line := range doc.firstLines(10) {
		if len(line) > 60 || !containsAnyFold(line, e.lists.RoleKeywords) {
			continue
		}
		if dateRangeRe.MatchString(line) {
			continue
		}
		return strings.Trim(line, bulletCut), true
	}
	return "", false
}
