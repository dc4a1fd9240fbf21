// Package match scores resume text against parsed job requirements using
// weighted skill matching. Must-have skills weigh three times as much as
// nice-to-have ones.
package match

import (
	"math"
	"regexp"
	"strings"

	"github.com/hireloop/resume-ranker/internal/requirements"
)

const (
	mustHaveWeight   = 3.0
	niceToHaveWeight = 1.0
	scoreScale       = 10.0
)

// Result is the outcome of evaluating one resume against a requirement spec.
// Matched lists must-have hits before nice-to-have hits; Missing mirrors that
// order for the misses. Score is in [0, 10] with one decimal of precision.
type Result struct {
	Score   float64
	Matched []string
	Missing []string
}

// Evaluate scores resume text against the spec. An empty spec always scores
// zero; matching is case-insensitive and a skill counts wherever it appears,
// even inside a longer word.
func Evaluate(spec requirements.Spec, resumeText string) Result {
	res := Result{Matched: []string{}, Missing: []string{}}

	var raw, max float64
	lower := strings.ToLower(resumeText)

	for _, skill := range spec.MustHave {
		max += mustHaveWeight
		if skillMatches(skill, resumeText, lower) {
			raw += mustHaveWeight
			res.Matched = append(res.Matched, skill)
		} else {
			res.Missing = append(res.Missing, skill)
		}
	}
	for _, skill := range spec.NiceToHave {
		max += niceToHaveWeight
		if skillMatches(skill, resumeText, lower) {
			raw += niceToHaveWeight
			res.Matched = append(res.Matched, skill)
		} else {
			res.Missing = append(res.Missing, skill)
		}
	}

	if max > 0 {
		res.Score = round1(raw / max * scoreScale)
	}
	return res
}

// skillMatches treats the skill as a case-insensitive pattern matched
// anywhere in the text. Skills carrying regexp metacharacters that fail to
// compile, e.g. "C++", degrade to a plain substring check.
func skillMatches(skill, text, lowerText string) bool {
	re, err := regexp.Compile(`(?i)` + skill)
	if err != nil {
		return strings.Contains(lowerText, strings.ToLower(skill))
	}
	return re.MatchString(text)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
