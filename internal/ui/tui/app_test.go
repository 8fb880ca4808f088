package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SuwenJunliu/LASIF/internal/domain"
	"github.com/SuwenJunliu/LASIF/internal/infra/iterstore"
	"github.com/SuwenJunliu/LASIF/internal/infra/iterxml"
)

type fixedStatus struct{}

func (fixedStatus) Execute(_ context.Context, name string) (domain.StatusReport, error) {
	return domain.BuildStatusReport(name, []domain.EventCounts{
		{Event: "EVENT_A", Total: 2, Processed: 1, Synthetics: 2, WindowFraction: 0.5},
	}), nil
}

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	store := iterstore.New(t.TempDir(), iterxml.NewCodec())
	if err := store.Create("1", "ses3d_4_1", map[string][]string{"EVENT_A": {"S.1", "S.2"}}, 20, 100); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return Deps{ProjectName: "Test", ProjectRoot: "/p", Iterations: store, Status: fixedStatus{}}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return mm, cmd
}

func TestModel_ListThenDetail(t *testing.T) {
	deps := newTestDeps(t)
	m := newModel(deps)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	msg := m.Init()()
	m, _ = update(t, m, msg)
	if len(m.list.Items()) != 1 {
		t.Fatalf("expected one iteration, got %d", len(m.list.Items()))
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.scr != screenDetail || m.activeName != "1" || cmd == nil {
		t.Fatalf("expected detail screen for iteration 1, got scr=%v name=%q", m.scr, m.activeName)
	}

	m, _ = update(t, m, cmd())
	view := m.View()
	for _, want := range []string{"ITERATION_1", "LASIF Iteration", "Iteration 1 is defined for 1 event:", "Lacks processed data for 1 stations"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q, got:\n%s", want, view)
		}
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scr != screenList {
		t.Fatalf("expected list screen after esc")
	}
}

func TestModel_DetailErrorReturnsToList(t *testing.T) {
	m := newModel(newTestDeps(t))
	m.scr = screenDetail
	m.activeName = "9"

	m, _ = update(t, m, cmdLoadDetail(m.deps, "9")())
	if m.scr != screenList {
		t.Fatalf("expected list screen")
	}
	if m.toast != "Iteration 9 not found" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("ITERATION_LONG", 4); got != "ITER…" {
		t.Fatalf("unexpected %q", got)
	}
	if got := clampString("abc", 10); got != "abc" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestModel_StaleDetailIsIgnored(t *testing.T) {
	m := newModel(newTestDeps(t))
	m.scr = screenDetail
	m.activeName = "1"
	m.loading = true

	// A failed load for an iteration the user already left.
	m, _ = update(t, m, cmdLoadDetail(m.deps, "9")())
	if m.scr != screenDetail || m.toast != "" || !m.loading {
		t.Fatalf("expected stale result ignored, got scr=%v toast=%q loading=%v", m.scr, m.toast, m.loading)
	}

	m, _ = update(t, m, cmdLoadDetail(m.deps, "1")())
	if m.scr != screenDetail || m.loading {
		t.Fatalf("expected detail for 1 loaded")
	}
}

func TestCmdLoadDetail_NilRepository(t *testing.T) {
	msg, ok := cmdLoadDetail(Deps{}, "1")().(detailLoadedMsg)
	if !ok || msg.err == nil || msg.name != "1" {
		t.Fatalf("expected error message for nil repository, got %+v", msg)
	}
}

func TestView_DebugShowsLogPath(t *testing.T) {
	deps := newTestDeps(t)
	deps.LogPath = "/p/LOGS/lasif.log"

	if strings.Contains(newModel(deps).View(), deps.LogPath) {
		t.Fatalf("log path shown without debug")
	}
	deps.Debug = true
	if !strings.Contains(newModel(deps).View(), deps.LogPath) {
		t.Fatalf("expected log path in debug view")
	}
}
