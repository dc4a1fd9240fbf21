// Package textutil provides text normalization helpers shared by every
// extraction component. Raw text coming out of document decoders carries
// reader artifacts, form feeds and uneven whitespace that confuse the
// line-oriented heuristics downstream.
package textutil

import (
	"regexp"
	"strings"
)

// defaultArtifacts are boilerplate substrings injected by common document
// viewers and converters. Matched case-insensitively.
var defaultArtifacts = []string{
	"Document Reader",
	"Microsoft Word",
	"Naukri Resume",
}

var (
	pageNumberRe = regexp.MustCompile(`(?i)page \d+`)
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
	wsRunRe      = regexp.MustCompile(`\s+`)
)

// Normalize strips document artifacts and evens out whitespace while keeping
// the line structure intact. Line structure is what the extractors key on, so
// only horizontal whitespace is collapsed. Normalize is idempotent.
func Normalize(s string) string {
	return NormalizeWith(s, defaultArtifacts)
}

// NormalizeWith is Normalize with a caller-supplied artifact list. An empty
// list falls back to the built-in one.
func NormalizeWith(s string, artifacts []string) string {
	if len(artifacts) == 0 {
		artifacts = defaultArtifacts
	}

	for _, artifact := range artifacts {
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(artifact))
		if err != nil {
			continue
		}
		s = re.ReplaceAllString(s, "")
	}
	s = pageNumberRe.ReplaceAllString(s, "")

	s = strings.ReplaceAll(s, "\f", "\n")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\t", " ")
	s = spaceRunRe.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = blankRunRe.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}

// Flatten collapses all whitespace, newlines included, into single spaces.
// Token-window scans operate on flattened text.
func Flatten(s string) string {
	return strings.TrimSpace(wsRunRe.ReplaceAllString(s, " "))
}

// Lines splits text into trimmed, non-empty lines.
func Lines(s string) []string {
	raw := strings.Split(s, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// TruncateForLog shortens the provided string to the specified limit, appending an ellipsis when truncated.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
