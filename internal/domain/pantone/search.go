package pantone

import "strings"

// familySynonyms extends family lookups beyond a plain name substring.
var familySynonyms = map[string][]string{
	"red":    {"red", "scarlet", "vermillion"},
	"blue":   {"blue", "cyan", "sky"},
	"green":  {"green", "emerald", "lime"},
	"yellow": {"yellow", "gold", "lemon"},
	"purple": {"purple", "violet", "plum"},
	"orange": {"orange", "tangerine", "pumpkin"},
	"gray":   {"gray", "grey", "silver"},
	"brown":  {"brown", "coffee", "chocolate"},
}

// SearchByCode finds entries whose code contains the query, or equals it
// once all whitespace is removed ("186C" finds "186 C").
func (m *Matcher) SearchByCode(query string) SearchResult {
	q := normalizeQuery(query)
	compact := stripSpaces(q)

	matches := []Color{}
	for _, c := range m.table {
		code := strings.ToLower(c.Code)
		if strings.Contains(code, q) || stripSpaces(code) == compact {
			matches = append(matches, c)
		}
	}
	return SearchResult{Matches: matches, Query: q}
}

// SearchByName finds entries whose name contains the query, ignoring case.
func (m *Matcher) SearchByName(query string) SearchResult {
	q := normalizeQuery(query)

	matches := []Color{}
	for _, c := range m.table {
		if strings.Contains(strings.ToLower(c.Name), q) {
			matches = append(matches, c)
		}
	}
	return SearchResult{Matches: matches, Query: q}
}

// ByCode returns the entry whose code equals code, ignoring case and
// whitespace. The second result is false when no entry matches.
func (m *Matcher) ByCode(code string) (Color, bool) {
	want := stripSpaces(strings.ToLower(code))
	for _, c := range m.table {
		if stripSpaces(strings.ToLower(c.Code)) == want {
			return c, true
		}
	}
	return Color{}, false
}

// ByFamily returns entries whose name mentions the family or one of its
// synonyms. Unknown families fall back to the plain substring check.
func (m *Matcher) ByFamily(family string) []Color {
	f := strings.ToLower(strings.TrimSpace(family))
	synonyms := familySynonyms[f]

	out := []Color{}
	for _, c := range m.table {
		name := strings.ToLower(c.Name)
		if strings.Contains(name, f) || containsAny(name, synonyms) {
			out = append(out, c)
		}
	}
	return out
}

// Families lists the families that have a synonym list.
func Families() []string {
	return []string{"red", "orange", "yellow", "green", "blue", "purple", "brown", "gray"}
}

func normalizeQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
