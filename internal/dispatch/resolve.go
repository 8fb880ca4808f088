package dispatch

import (
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	// Cutoff is the minimum similarity a suggestion must reach.
	Cutoff = 0.6
	// MaxSuggestions bounds how many close names are offered.
	MaxSuggestions = 4
)

// Outcome is either a resolved handler or a list of suggestions (possibly empty).
type Outcome[H any] struct {
	Resolved  bool
	Canonical string
	Handler   H

	// Candidates is sorted ascending and only set when Resolved is false.
	Candidates []string
}

// Single reports whether exactly one suggestion is offered.
func (o Outcome[H]) Single() bool {
	return !o.Resolved && len(o.Candidates) == 1
}

// Resolve looks token up case-insensitively. It never fails: an unknown
// token yields an unresolved outcome carrying the close matches.
func (t Table[H]) Resolve(token string) Outcome[H] {
	if name, ok := t.byKey[normalize(token)]; ok {
		return Outcome[H]{
			Resolved:  true,
			Canonical: name,
			Handler:   t.handlers[name],
		}
	}
	return Outcome[H]{Candidates: t.suggest(token)}
}

type scored struct {
	key   string
	name  string
	score float64
}

func (t Table[H]) suggest(token string) []string {
	m := difflib.NewMatcher(nil, splitRunes(normalize(token)))

	var hits []scored
	for _, name := range t.names {
		key := normalize(name)
		m.SetSeq1(splitRunes(key))
		if r := m.Ratio(); r >= Cutoff {
			hits = append(hits, scored{key: key, name: name, score: r})
		}
	}

	// Best first; equal scores prefer the larger key, as difflib does.
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].key > hits[j].key
	})
	if len(hits) > MaxSuggestions {
		hits = hits[:MaxSuggestions]
	}

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.name)
	}
	sort.Strings(out)
	return out
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
