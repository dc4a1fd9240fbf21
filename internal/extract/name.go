package extract

import (
	"regexp"
	"strings"

	"github.com/hireloop/resume-ranker/internal/candidate"
)

// Name extraction tiers, most precise first. The priority scan trusts the top
// of the document, the pattern scan casts a wide net over the whole body, and
// the remaining tiers progressively loosen shape requirements.

var (
	compactCamelRe = regexp.MustCompile(`^[A-Z][a-z]*[A-Z][a-z]*[A-Z]?[a-z]*$`)
	capitalWordRe  = regexp.MustCompile(`^[A-Z][a-z]*$`)
	camelPrefixRe  = regexp.MustCompile(`^[A-Z][a-z]*[A-Z][a-z]*`)
	startsUpperRe  = regexp.MustCompile(`^[A-Z]`)
	startsDigitRe  = regexp.MustCompile(`^\d`)

	twoTitleWordsRe = regexp.MustCompile(`^[A-Z][a-z]*\s+[A-Z][a-z]*$`)
	allCapsWindowRe = regexp.MustCompile(`^[A-Z][A-Z\s]+[A-Z]$`)

	namePatternFamilies = []*regexp.Regexp{
		// ALL CAPS multi-word, e.g. "SAI DIVYA KANTA". Spaces only, so a
		// match never runs across a line break into the next heading.
		regexp.MustCompile(`\b([A-Z][A-Z ]{2,}[A-Z])\b`),
		// Title case multi-word, e.g. "John Smith".
		regexp.MustCompile(`\b([A-Z][a-z]+ [A-Z][a-z]+(?: [A-Z][a-z]+)*)\b`),
		// ALL CAPS on its own line.
		regexp.MustCompile(`(?m)^([A-Z]+ [A-Z]+(?: [A-Z]+)*) *$`),
		// Camel case at end of line, e.g. "KomalWadhwani".
		regexp.MustCompile(`(?m)\b([A-Z][a-z]*[A-Z][a-z]*)\s*$`),
		// Camel case at start of line.
		regexp.MustCompile(`(?m)^([A-Z][a-z]*[A-Z][a-z]*)\b`),
		// Camel case anywhere.
		regexp.MustCompile(`([A-Z][a-z]+[A-Z][a-z]+(?:[A-Z][a-z]+)*)`),
	}
)

var priorityLineMarkers = []string{"resume", "cv", "profile", "summary", "naukri", "@", "http"}

var carefulLineMarkers = []string{
	"@", "http", "phone", "email", "linkedin", "resume", "cv", "document",
	"reader", "profile", "summary", "objective", "years of experience",
	"experienced", "skilled", "specializing", "expertise", "background",
	"seeking", "looking for", "passionate about",
}

var nameHeaders = []string{"name:", "candidate:", "applicant:", "full name:"}

// Name returns the best-guess candidate full name, or the UnknownName
// sentinel when every tier fails.
func (e *Extractor) Name(doc Document) string {
	return e.runCascade("name", candidate.UnknownName, doc, []strategy{
		{name: "first-lines", run: e.nameFromFirstLines},
		{name: "pattern-scan", run: e.nameFromPatterns},
		{name: "careful-lines", run: e.nameFromCarefulLines},
		{name: "labeled-header", run: e.nameFromHeader},
		{name: "token-window", run: e.nameFromTokenWindows},
	})
}

// nameFromFirstLines inspects the first 5 non-empty lines. The very top of a
// resume is a name more often than not, so shape checks stay strict here.
func (e *Extractor) nameFromFirstLines(doc Document) (string, bool) {
	for _, line := range doc.firstLines(5) {
		if containsAnyFold(line, priorityLineMarkers) || len(line) < 3 {
			continue
		}

		if e.hasExcludedWord(line) {
			continue
		}

		if compactCamelRe.MatchString(line) && len(line) > 5 && len(line) < 30 {
			return line, true
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 3 || len(line) >= 40 {
			continue
		}
		shaped := true
		for _, word := range words {
			if !capitalWordRe.MatchString(word) || len(word) < 2 || len(word) > 15 {
				shaped = false
				break
			}
		}
		if shaped {
			return line, true
		}
	}
	return "", false
}

// nameFromPatterns scans the whole body with the name-shaped regexp families
// in priority order and filters matches against exclusion vocabulary, the
// removed summary and narrative words.
func (e *Extractor) nameFromPatterns(doc Document) (string, bool) {
	for _, family := range namePatternFamilies {
		for _, match := range family.FindAllStringSubmatch(doc.Body, -1) {
			name := strings.TrimSpace(match[1])
			words := strings.Fields(name)
			if len(words) < 2 || len(words) > 4 || len(name) > 50 {
				continue
			}
			name = strings.Join(words, " ")
			if e.hasExcludedWord(name) ||
				appearsInSummary(doc, name) ||
				len(name) > 40 ||
				containsAnyFold(name, e.lists.NarrativeWords) {
				continue
			}
			return name, true
		}
	}
	return "", false
}

// nameFromCarefulLines re-scans the first 15 lines with a broader exclusion
// list, accepting 2-4 capitalized words or one long camel-case token.
func (e *Extractor) nameFromCarefulLines(doc Document) (string, bool) {
	for _, line := range doc.firstLines(15) {
		if containsAnyFold(line, carefulLineMarkers) ||
			e.hasExcludedWord(line) ||
			startsDigitRe.MatchString(line) ||
			strings.Contains(line, "•") ||
			strings.Contains(line, ":") ||
			len(line) < 3 || len(line) > 60 {
			continue
		}

		words := strings.Fields(line)

		if len(words) >= 2 && len(words) <= 4 {
			shaped := true
			for _, word := range words {
				if !startsUpperRe.MatchString(word) || len(word) < 2 || len(word) > 20 {
					shaped = false
					break
				}
			}
			if shaped {
				return line, true
			}
		}

		if len(words) == 1 {
			word := words[0]
			if len(word) > 5 && len(word) < 25 && camelPrefixRe.MatchString(word) {
				return line, true
			}
		}
	}
	return "", false
}

// nameFromHeader looks for literal "name:"-style headers.
func (e *Extractor) nameFromHeader(doc Document) (string, bool) {
	lower := strings.ToLower(doc.Body)
	for _, header := range nameHeaders {
		idx := strings.Index(lower, header)
		if idx == -1 {
			continue
		}
		after := doc.Body[idx+len(header):]
		if nl := strings.IndexByte(after, '\n'); nl != -1 {
			after = after[:nl]
		}
		value := strings.TrimSpace(after)
		if len(value) > 2 && len(value) < 50 {
			return value, true
		}
	}
	return "", false
}

// nameFromTokenWindows slides over whitespace-split tokens looking for single
// camel-case tokens and 2-3 token windows with name shape.
func (e *Extractor) nameFromTokenWindows(doc Document) (string, bool) {
	tokens := strings.Fields(doc.Flat)

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		if len(token) > 5 && len(token) < 30 && camelPrefixRe.MatchString(token) {
			if !containsAnyFold(token, e.lists.NameExcludeWords) && !appearsInSummary(doc, token) {
				return token, true
			}
		}

		if i+1 < len(tokens) {
			pair := tokens[i] + " " + tokens[i+1]
			if twoTitleWordsRe.MatchString(pair) && len(pair) < 40 && !e.hasExcludedWord(pair) {
				return pair, true
			}
		}

		if i+2 < len(tokens) {
			triple := tokens[i] + " " + tokens[i+1] + " " + tokens[i+2]
			if allCapsWindowRe.MatchString(triple) && len(triple) < 50 && !e.hasExcludedWord(triple) {
				return triple, true
			}
		}
	}
	return "", false
}
