package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/SuwenJunliu/LASIF/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderStatus(r domain.StatusReport) string {
	lacking := DefaultTheme().Lacking

	var b strings.Builder
	b.WriteString(r.Header)
	b.WriteString("\n")
	for _, ev := range r.Events {
		b.WriteString("  ")
		b.WriteString(ev.Event)
		b.WriteString("\n")
		for _, l := range ev.Lines {
			b.WriteString("    ")
			if strings.HasPrefix(l, "Lacks") {
				l = lacking.Render(l)
			}
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
	return b.String()
}
