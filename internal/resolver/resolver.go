// Package resolver maps a free-text question to curriculum content.
package resolver

import (
	"sort"
	"strings"

	"github.com/larklabs/gastutor/internal/catalog"
)

// Kind discriminates the resolution outcome.
type Kind string

const (
	// KindExact means a canned answer trigger fired.
	KindExact Kind = "exact"
	// KindUnits means one or more curriculum units matched.
	KindUnits Kind = "units"
	// KindNoMatch means the catalog had nothing to offer (empty catalog only).
	KindNoMatch Kind = "no_match"
)

// Resolution is the result of resolving a query.
type Resolution struct {
	Kind  Kind           `json:"kind"`
	Exact string         `json:"exact,omitempty"`
	Units []catalog.Unit `json:"units,omitempty"`
}

// defaultUnitCount is how many leading catalog units are returned when
// nothing matches the query.
var defaultUnitCount = map[catalog.Level]int{
	catalog.LevelG3: 3,
	catalog.LevelG2: 5,
}

// Resolve maps a query and level to an exact answer or a ranked set of
// units. It is total: with a non-empty catalog it never returns NoMatch,
// falling back to the leading units of the level instead.
//
// Order matters: exact-answer triggers are checked in declaration order
// and the first substring match wins, before any topic rule is consulted.
func Resolve(query string, level catalog.Level) Resolution {
	q := strings.ToLower(query)

	// A blank query would substring-match every unit title; send it to
	// the generic level overview instead.
	if strings.TrimSpace(q) == "" {
		return Resolution{Kind: KindNoMatch}
	}

	for _, ea := range catalog.ExactAnswers {
		if strings.Contains(q, ea.Trigger) {
			return Resolution{Kind: KindExact, Exact: ea.Body}
		}
	}

	candidates := map[int]bool{}
	for _, rule := range catalog.TopicRules {
		if strings.Contains(q, rule.Keyword) {
			for _, n := range rule.Units {
				candidates[n] = true
			}
		}
	}

	visible := catalog.UnitsForLevel(level)

	// No keyword hit: try the query against unit titles.
	if len(candidates) == 0 {
		for _, u := range visible {
			if strings.Contains(strings.ToLower(u.Title), q) {
				candidates[u.Number] = true
			}
		}
	}

	if len(candidates) == 0 {
		return defaultRelevance(level, visible)
	}

	var matched []catalog.Unit
	for _, u := range visible {
		if candidates[u.Number] {
			matched = append(matched, u)
		}
	}
	if len(matched) == 0 {
		// Every implicated unit sits above this level's visibility.
		return defaultRelevance(level, visible)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Number < matched[j].Number })
	return Resolution{Kind: KindUnits, Units: matched}
}

// defaultRelevance returns the leading units of the catalog so the
// caller always gets some content, or NoMatch for an empty catalog.
func defaultRelevance(level catalog.Level, visible []catalog.Unit) Resolution {
	n := defaultUnitCount[level]
	if n > len(visible) {
		n = len(visible)
	}
	if n == 0 {
		return Resolution{Kind: KindNoMatch}
	}
	return Resolution{Kind: KindUnits, Units: visible[:n]}
}
