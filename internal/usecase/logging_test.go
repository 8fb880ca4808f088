package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/SuwenJunliu/LASIF/internal/infra/iterstore"
	"github.com/SuwenJunliu/LASIF/internal/infra/iterxml"
)

func infoMessages(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()
	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("log line is not JSON: %v", err)
		}
		msgs = append(msgs, rec["msg"].(string))
	}
	return msgs
}

func TestCreateAndClone_LogOncePerOperation(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	store := iterstore.New(t.TempDir(), iterxml.NewCodec(), iterstore.WithLogger(log))
	inv := &fakeInventory{raw: map[string][]string{"EVENT_A": {"GR.WET"}}}

	_, err := NewCreateIteration(store, staticCatalog{"EVENT_A"}, inv, log).Execute(context.Background(), CreateIterationInput{
		Name: "1", Solver: "ses3d_4_1", MinPeriod: 20, MaxPeriod: 100,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := NewCloneIteration(store, log).Execute("1", "2"); err != nil {
		t.Fatalf("clone: %v", err)
	}

	got := infoMessages(t, &buf)
	want := []string{"iteration.create", "iteration.clone"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected info records %v, got %v", want, got)
	}
}
