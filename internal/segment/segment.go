// Package segment locates and excises summary/objective preamble blocks from
// resume text. Narrative summary prose is the single largest source of false
// positives for the name and location heuristics, so it is cut out of the body
// and kept aside for negative filtering.
package segment

import (
	"regexp"
	"strings"
)

var (
	// Section headers that introduce a summary block.
	summaryHeaderRe = regexp.MustCompile(`(?i)^(?:profile summary|professional summary|summary|objective|career objective)\b`)

	// Narrative lead-ins that open summary prose without a header.
	narrativeLeadRe = regexp.MustCompile(`(?i)^(?:a\s+(?:highly\s+)?(?:motivated|experienced|skilled|dedicated|results-driven)\b|seeking\b|looking for\b|aspiring\b|passionate about\b)`)

	// Headers that terminate a summary block and stay in the body.
	sectionHeaderRe = regexp.MustCompile(`(?i)^(?:experience|work experience|professional experience|employment|education|skills|projects|certifications)\b`)

	allCapsHeaderRe = regexp.MustCompile(`^[A-Z][A-Z\s]{2,}$`)
)

// Result is the outcome of splitting text into body and removed summary prose.
type Result struct {
	Body           string
	RemovedSummary string
}

// Split removes summary/objective blocks from the text. Each block runs from
// its header or lead-in line up to the next blank line, the next section
// header, or end of text. When nothing matches, Body equals the input and
// RemovedSummary is empty.
func Split(text string) Result {
	lines := strings.Split(text, "\n")

	var body []string
	var removed []string
	inSummary := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if inSummary {
			if trimmed == "" {
				inSummary = false
				body = append(body, line)
				continue
			}
			if summaryHeaderRe.MatchString(trimmed) {
				removed = append(removed, trimmed)
				continue
			}
			if sectionHeaderRe.MatchString(trimmed) || allCapsHeaderRe.MatchString(trimmed) {
				inSummary = false
				body = append(body, line)
				continue
			}
			removed = append(removed, trimmed)
			continue
		}

		if summaryHeaderRe.MatchString(trimmed) || narrativeLeadRe.MatchString(trimmed) {
			inSummary = true
			removed = append(removed, trimmed)
			continue
		}

		body = append(body, line)
	}

	return Result{
		Body:           strings.TrimSpace(strings.Join(body, "\n")),
		RemovedSummary: strings.Join(removed, " "),
	}
}
