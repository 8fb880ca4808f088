package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdLoadIterations(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Iterations == nil {
			return iterationsLoadedMsg{err: errors.New("Iterations is nil")}
		}
		names, err := deps.Iterations.List()
		return iterationsLoadedMsg{names: names, err: err}
	}
}

func cmdLoadDetail(deps Deps, name string) tea.Cmd {
	return func() tea.Msg {
		if deps.Iterations == nil {
			return detailLoadedMsg{name: name, err: errors.New("Iterations is nil")}
		}
		it, err := deps.Iterations.Get(name)
		if err != nil {
			return detailLoadedMsg{name: name, err: err}
		}

		var b strings.Builder
		b.WriteString(it.Describe())

		if deps.Status != nil {
			report, err := deps.Status.Execute(context.Background(), name)
			if err != nil {
				deps.Logger.Warn("tui.status.failed", "iteration", name, "err", err)
				b.WriteString("\nStatus unavailable: ")
				b.WriteString(userMessage(err))
				b.WriteString("\n")
			} else {
				b.WriteString("\n")
				b.WriteString(renderStatus(report))
			}
		}

		return detailLoadedMsg{name: name, detail: b.String()}
	}
}
