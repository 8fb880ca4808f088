package dispatch

import (
	"fmt"
	"sort"
	"strings"
)

// Table maps canonical command names to handlers. It is immutable once built.
type Table[H any] struct {
	names    []string
	byKey    map[string]string
	handlers map[string]H
}

// NewTable builds a table. Two names that only differ by case are rejected,
// since a token could then resolve to either of them.
func NewTable[H any](entries map[string]H) (Table[H], error) {
	t := Table[H]{
		names:    make([]string, 0, len(entries)),
		byKey:    make(map[string]string, len(entries)),
		handlers: make(map[string]H, len(entries)),
	}

	for name, h := range entries {
		if strings.TrimSpace(name) == "" {
			return Table[H]{}, fmt.Errorf("dispatch: empty command name")
		}
		key := normalize(name)
		if prev, ok := t.byKey[key]; ok {
			return Table[H]{}, fmt.Errorf("dispatch: commands %q and %q collide when case is ignored", prev, name)
		}
		t.byKey[key] = name
		t.handlers[name] = h
		t.names = append(t.names, name)
	}

	sort.Strings(t.names)
	return t, nil
}

// Names returns the canonical names, sorted.
func (t Table[H]) Names() []string {
	return append([]string(nil), t.names...)
}

// Len is the number of commands.
func (t Table[H]) Len() int {
	return len(t.names)
}

func normalize(s string) string {
	return strings.ToLower(s)
}
