package labels

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Derive resolves a display label for a coefficient term against the
// provider's metadata. The fallback chain is explicit: variable
// description plus level description, then variable description plus
// raw level, then the raw identity string unchanged.
//
// Factor-level terms carry the level appended to the variable
// identity (e.g. "c172code3" for level "3" of "c172code"), so the
// longest known variable prefix wins.
func Derive(p Provider, term string) string {
	if p == nil {
		return term
	}

	// Exact variable match, no level.
	if desc, ok := p.Variable(term); ok {
		return desc
	}

	// Longest variable prefix carrying a level suffix.
	var bestVar, bestLevel string
	for _, name := range p.Variables() {
		if len(name) >= len(term) || !strings.HasPrefix(term, name) {
			continue
		}
		if len(name) > len(bestVar) {
			bestVar = name
			bestLevel = term[len(name):]
		}
	}
	if bestVar == "" {
		return term
	}

	varDesc, _ := p.Variable(bestVar)
	if levelDesc, ok := p.Level(bestVar, bestLevel); ok {
		return varDesc + ": " + levelDesc
	}
	return varDesc + ": " + bestLevel
}

// Humanize converts a snake_case or dotted identifier into a readable
// title-cased header. Used for default column headers; never applied
// to coefficient identities, which fall back verbatim.
func Humanize(s string) string {
	if s == "" {
		return s
	}
	return titleCaser.String(strings.NewReplacer("_", " ", ".", " ").Replace(s))
}
