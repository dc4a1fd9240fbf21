// Package extract implements the heuristic field extractors: name, location,
// work history, skills and education. Each extractor is an ordered cascade of
// strategies evaluated until one succeeds; the earliest tiers are the most
// precise and each later tier trades precision for recall. No strategy ever
// fails hard: when the whole cascade comes up empty a sentinel value is
// returned instead.
package extract

import (
	"github.com/hireloop/resume-ranker/internal/lexicon"
	"github.com/hireloop/resume-ranker/internal/segment"
	"github.com/hireloop/resume-ranker/internal/textutil"
)

// Document is a resume prepared for extraction. All extractors consume the
// same prepared views so normalization and summary excision happen once.
type Document struct {
	// Raw is the input text as received.
	Raw string
	// Body is the normalized text with summary prose removed.
	Body string
	// RemovedSummary holds the excised summary prose for negative filtering.
	RemovedSummary string
	// Lines are the trimmed, non-empty lines of Body.
	Lines []string
	// Flat is Body with all whitespace collapsed to single spaces.
	Flat string
}

// Prepare normalizes raw resume text and splits out summary prose.
func Prepare(raw string, lists lexicon.Lists) Document {
	normalized := textutil.NormalizeWith(raw, lists.Artifacts)
	seg := segment.Split(normalized)

	return Document{
		Raw:            raw,
		Body:           seg.Body,
		RemovedSummary: seg.RemovedSummary,
		Lines:          textutil.Lines(seg.Body),
		Flat:           textutil.Flatten(seg.Body),
	}
}

// firstLines returns up to n leading lines of the document body.
func (d Document) firstLines(n int) []string {
	if n > len(d.Lines) {
		n = len(d.Lines)
	}
	return d.Lines[:n]
}
