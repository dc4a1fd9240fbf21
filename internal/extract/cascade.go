package extract

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/hireloop/resume-ranker/internal/lexicon"
	"github.com/hireloop/resume-ranker/internal/logger"
	"github.com/hireloop/resume-ranker/internal/textutil"
)

const resultPreviewLimit = 60

// strategy is a single extraction tier. Run reports whether it produced a
// usable result.
type strategy struct {
	name string
	run  func(doc Document) (string, bool)
}

// Extractor runs the extraction cascades. It is immutable after construction
// and safe for concurrent use; a nil logger is replaced with a no-op one so
// extraction stays side-effect-free by default.
type Extractor struct {
	lists  lexicon.Lists
	logger *zap.Logger

	// cityRes and skillRes hold matchers per gazetteer city and dictionary
	// skill, compiled once.
	cityRes  map[string]*regexp.Regexp
	skillRes map[string]*regexp.Regexp
}

func New(lists lexicon.Lists, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}

	cityRes := make(map[string]*regexp.Regexp, len(lists.Cities))
	for _, city := range lists.Cities {
		cityRes[city] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(city) + `\b`)
	}

	skillRes := make(map[string]*regexp.Regexp, len(lists.SkillDictionary))
	for _, term := range lists.SkillDictionary {
		skillRes[term] = termRe(term)
	}

	return &Extractor{lists: lists, logger: log, cityRes: cityRes, skillRes: skillRes}
}

// termRe builds a case-insensitive matcher for a dictionary term. Word
// boundaries are added only next to word characters; terms like "C++" or
// ".NET" would never match with an unconditional trailing or leading \b.
func termRe(term string) *regexp.Regexp {
	pattern := `(?i)` + regexp.QuoteMeta(term)
	if len(term) > 0 {
		if isWordByte(term[0]) {
			pattern = `(?i)\b` + regexp.QuoteMeta(term)
		}
		if isWordByte(term[len(term)-1]) {
			pattern += `\b`
		}
	}
	return regexp.MustCompile(pattern)
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// runCascade tries strategies in order and returns the first result, falling
// back to the sentinel when none succeed. Logging never affects the outcome.
func (e *Extractor) runCascade(component, sentinel string, doc Document, strategies []strategy) string {
	log := logger.WithComponent(e.logger, component)

	for _, s := range strategies {
		value, ok := s.run(doc)
		if !ok {
			log.Debug("strategy produced no result", zap.String(logger.FieldStrategy, s.name))
			continue
		}

		log.Debug("strategy matched",
			zap.String(logger.FieldStrategy, s.name),
			zap.String("result", textutil.TruncateForLog(value, resultPreviewLimit)),
		)
		return value
	}

	log.Debug("cascade exhausted, using sentinel", zap.String("sentinel", sentinel))
	return sentinel
}

// containsAnyFold reports whether the lowercased string contains any of the
// given markers, compared case-insensitively.
func containsAnyFold(s string, markers []string) bool {
	lower := strings.ToLower(s)
	for _, marker := range markers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// hasExcludedWord reports whether any whitespace-separated word of the
// candidate equals an excluded word, case-insensitively.
func (e *Extractor) hasExcludedWord(candidate string) bool {
	for _, word := range strings.Fields(candidate) {
		lower := strings.ToLower(word)
		for _, excluded := range e.lists.NameExcludeWords {
			if lower == strings.ToLower(excluded) {
				return true
			}
		}
	}
	return false
}

// appearsInSummary reports whether the candidate text occurs inside the
// removed summary prose. A name showing up there is narrative, not a header.
func appearsInSummary(doc Document, candidate string) bool {
	if doc.RemovedSummary == "" || candidate == "" {
		return false
	}
	return strings.Contains(strings.ToLower(doc.RemovedSummary), strings.ToLower(candidate))
}
