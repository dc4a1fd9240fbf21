package extract

import (
	"regexp"
	"strings"

	"github.com/hireloop/resume-ranker/internal/candidate"
)

const (
	// priorityLocationLines bounds the early per-line scan; addresses live
	// near the top of a resume, deep matches are usually employer names.
	priorityLocationLines = 10

	cityStateContext = 50
	shortlistContext = 30
	maxRegionLen     = 50
)

var (
	// "Austin, TX" with an optional ZIP code.
	cityStateRe = regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+)?),[ ]*([A-Z]{2})\b(?: \d{5})?`)
	// "Springfield, Illinois" style city/region pairs.
	cityRegionRe = regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+)?),[ ]+([A-Z][a-z]+(?: [A-Z][a-z]+)?)\b`)
	// A comma-separated pair standing alone on a line.
	pairLineRe = regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Z][a-z]+)?,[ ]*[A-Z][A-Za-z ]+$`)
)

var locationHeaders = []string{"location:", "address:", "city:", "based in:", "located in:", "residence:"}

// locationLineExclusions drop a line from the priority scan: a city inside an
// employer or school name is not where the candidate lives.
var locationLineExclusions = []string{"company", "university", "college"}

var (
	cityStateContextMarkers = []string{"experience", "skilled", "company"}
	regionContextMarkers    = []string{"university", "college", "company", "technologies"}
	shortlistContextMarkers = []string{
		"experience", "skilled", "company", "university", "college", "technologies",
	}
)

// Location returns the candidate's city or region, or the UnknownLocation
// sentinel when nothing location-shaped is found.
func (e *Extractor) Location(doc Document) string {
	return e.runCascade("location", candidate.UnknownLocation, doc, []strategy{
		{name: "labeled-header", run: e.locationFromHeader},
		{name: "priority-lines", run: e.locationFromPriorityLines},
		{name: "city-state-pair", run: e.locationFromCityState},
		{name: "city-region-pair", run: e.locationFromCityRegion},
		{name: "common-locations", run: e.locationFromCommonList},
	})
}

// locationFromHeader picks up explicit "location:"-style labels.
func (e *Extractor) locationFromHeader(doc Document) (string, bool) {
	lower := strings.ToLower(doc.Body)
	for _, header := range locationHeaders {
		idx := strings.Index(lower, header)
		if idx == -1 {
			continue
		}
		after := doc.Body[idx+len(header):]
		if nl := strings.IndexByte(after, '\n'); nl != -1 {
			after = after[:nl]
		}
		value := strings.Trim(strings.TrimSpace(after), ",.")
		if len(value) > 2 && len(value) < 100 && !containsAnyFold(value, e.lists.NarrativeWords) {
			return value, true
		}
	}
	return "", false
}

// locationFromPriorityLines scans the first ten lines for gazetteer cities or
// standalone comma-separated pairs, skipping employer and school lines.
func (e *Extractor) locationFromPriorityLines(doc Document) (string, bool) {
	for _, line := range doc.firstLines(priorityLocationLines) {
		if containsAnyFold(line, locationLineExclusions) {
			continue
		}

		for _, city := range e.lists.Cities {
			if e.cityRes[city].MatchString(line) {
				return city, true
			}
		}

		if pairLineRe.MatchString(line) && len(line) < maxRegionLen {
			return strings.Trim(line, ",. "), true
		}
	}
	return "", false
}

// locationFromCityState matches "City, ST" pairs anywhere in the body,
// rejecting matches whose surrounding context reads like work history.
func (e *Extractor) locationFromCityState(doc Document) (string, bool) {
	for _, m := range cityStateRe.FindAllStringSubmatchIndex(doc.Body, -1) {
		if contextHasAny(doc.Body, m[0], m[1], cityStateContext, cityStateContextMarkers) {
			continue
		}
		return doc.Body[m[2]:m[3]] + ", " + doc.Body[m[4]:m[5]], true
	}
	return "", false
}

// locationFromCityRegion matches "City, Region" pairs with spelled-out
// regions, with its own context exclusions.
func (e *Extractor) locationFromCityRegion(doc Document) (string, bool) {
	for _, m := range cityRegionRe.FindAllStringSubmatchIndex(doc.Body, -1) {
		if m[1]-m[0] >= maxRegionLen {
			continue
		}
		if contextHasAny(doc.Body, m[0], m[1], cityStateContext, regionContextMarkers) {
			continue
		}
		return doc.Body[m[2]:m[3]] + ", " + doc.Body[m[4]:m[5]], true
	}
	return "", false
}

// locationFromCommonList is the loosest tier: a shortlist of well-known city
// names searched by substring, each occurrence checked against its context.
func (e *Extractor) locationFromCommonList(doc Document) (string, bool) {
	lower := strings.ToLower(doc.Flat)
	for _, location := range e.lists.CommonLocations {
		idx := strings.Index(lower, strings.ToLower(location))
		if idx == -1 {
			continue
		}
		if contextHasAny(doc.Flat, idx, idx+len(location), shortlistContext, shortlistContextMarkers) {
			continue
		}
		return location, true
	}
	return "", false
}

// contextHasAny reports whether any marker occurs within radius bytes around
// the [start, end) span.
func contextHasAny(text string, start, end, radius int, markers []string) bool {
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(text) {
		hi = len(text)
	}
	return containsAnyFold(text[lo:hi], markers)
}
