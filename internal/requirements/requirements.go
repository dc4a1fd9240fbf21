// Package requirements parses free-form job requirement text into weighted
// skill lists. Only two labeled lines are recognized; everything else in the
// text is ignored.
package requirements

import (
	"regexp"
	"strings"
)

var (
	mustHaveRe   = regexp.MustCompile(`(?i)must have:\s*(.*)`)
	niceToHaveRe = regexp.MustCompile(`(?i)nice to have:\s*(.*)`)
)

// Spec is a parsed requirements document. Both lists preserve source order
// and are empty, never nil, when the corresponding line is absent.
type Spec struct {
	MustHave   []string `json:"must_have"`
	NiceToHave []string `json:"nice_to_have"`
}

// IsEmpty reports whether no requirements were recognized at all.
func (s Spec) IsEmpty() bool {
	return len(s.MustHave) == 0 && len(s.NiceToHave) == 0
}

// Parse extracts the "Must have:" and "Nice to have:" lines from requirement
// text. Items are comma-separated; surrounding whitespace is trimmed and empty
// items dropped. Duplicates are kept: a repeated skill weighs twice.
func Parse(text string) Spec {
	return Spec{
		MustHave:   splitItems(firstGroup(mustHaveRe, text)),
		NiceToHave: splitItems(firstGroup(niceToHaveRe, text)),
	}
}

func firstGroup(re *regexp.Regexp, text string) string {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return match[1]
}

func splitItems(list string) []string {
	items := []string{}
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
