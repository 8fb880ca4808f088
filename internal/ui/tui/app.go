package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SuwenJunliu/LASIF/internal/domain"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

type iterationItem struct {
	name string
}

func (i iterationItem) Title() string       { return i.name }
func (i iterationItem) Description() string { return domain.IterationFileName(i.name) }
func (i iterationItem) FilterValue() string { return i.name }

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	list   list.Model
	detail viewport.Model

	loading    bool
	activeName string
	toast      string

	width, height int
}

// Run starts the iteration browser and blocks until the user quits.
func Run(deps Deps) error {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Iterations"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		scr:     screenList,
		list:    l,
		detail:  viewport.New(0, 0),
		loading: true,
	}
}

func (m model) Init() tea.Cmd { return cmdLoadIterations(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-10)
		m.detail.Width = msg.Width - 8
		m.detail.Height = msg.Height - 12
		return m, nil

	case iterationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.deps.Logger.Error("tui.iterations.load_failed", "err", msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.names))
		for _, n := range msg.names {
			items = append(items, iterationItem{name: n})
		}
		m.toast = ""
		return m, m.list.SetItems(items)

	case detailLoadedMsg:
		if msg.name != m.activeName {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.scr = screenList
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.detail.SetContent(msg.detail)
		m.detail.GotoTop()
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenList && m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenList {
				return m, tea.Quit
			}
			m.scr = screenList
			return m, nil

		case "r":
			m.loading = true
			if m.scr == screenDetail {
				return m, cmdLoadDetail(m.deps, m.activeName)
			}
			return m, cmdLoadIterations(m.deps)

		case "enter":
			if m.scr == screenList {
				it, ok := m.list.SelectedItem().(iterationItem)
				if !ok {
					return m, nil
				}
				m.scr = screenDetail
				m.activeName = it.name
				m.loading = true
				m.detail.SetContent("")
				return m, cmdLoadDetail(m.deps, it.name)
			}

		case "esc", "b":
			if m.scr == screenDetail {
				m.scr = screenList
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenList:
		m.list, cmd = m.list.Update(msg)
	case screenDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("LASIF") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("Project %q  %s", m.deps.ProjectName, m.deps.ProjectRoot)) + "\n"

	status := ""
	switch {
	case m.toast != "":
		status = "\n" + m.theme.Error.Render(m.toast)
	case m.loading:
		status = "\n" + m.theme.Help.Render("loading…")
	}

	if m.deps.Debug && m.deps.LogPath != "" {
		status += "\n" + m.theme.Help.Render("debug log: "+m.deps.LogPath)
	}

	switch m.scr {
	case screenList:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • r reload • q quit")
		body := m.list.View()
		if len(m.list.Items()) == 0 && !m.loading {
			body = "No iterations yet.\n\nCreate one with `lasif create_new_iteration`."
		}
		return wrap.Render(header + "\n" + m.theme.Card.Render(body) + status + "\n" + help)

	case screenDetail:
		help := m.theme.Help.Render("↑/↓ scroll • r reload • esc/b back • q list")
		card := m.theme.Card.Render(
			m.theme.Title.Render(clampString(domain.LongIterationName(m.activeName), 60)) + "\n\n" + m.detail.View(),
		)
		return wrap.Render(header + "\n" + card + status + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
