package fsproject

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SuwenJunliu/LASIF/internal/domain"
	"github.com/SuwenJunliu/LASIF/internal/infra/projectconfig"
)

func TestInitializer_Init_CreatesProjectLayout(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "MyProject")

	i := NewInitializer()
	if err := i.Init(domain.ProjectSpec{Root: tmp, Name: "MyProject"}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	for _, d := range domain.NewProjectPaths(tmp).Folders() {
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s, err=%v", d, err)
		}
	}

	cfg, err := projectconfig.Load(tmp)
	if err != nil {
		t.Fatalf("rendered config does not load: %v", err)
	}
	if cfg.Name != "MyProject" {
		t.Fatalf("expected project name MyProject, got %q", cfg.Name)
	}
	if cfg.Domain.RotationAngleDeg != -45 {
		t.Fatalf("expected template defaults, got %+v", cfg.Domain)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing config.yaml: %v", err)
	}

	i := NewInitializer()
	spec := domain.ProjectSpec{Root: tmp, Name: "P"}

	if err := i.Init(spec, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read config.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected config.yaml preserved, got %q", string(b))
	}

	if err := i.Init(spec, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read config.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "lasif_project:") {
		t.Fatalf("expected config.yaml overwritten with template, got %q", string(b))
	}
}

func TestInitializer_Init_RequiresName(t *testing.T) {
	err := NewInitializer().Init(domain.ProjectSpec{Root: t.TempDir()}, false)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestInitializer_Init_NameIsYAMLEscaped(t *testing.T) {
	names := []string{
		`Turkey "2011"`,
		`C:\data\inv`,
		"Europe: 2012 # first",
		"'quoted'",
		"yes",
		"42",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			tmp := t.TempDir()
			if err := NewInitializer().Init(domain.ProjectSpec{Root: tmp, Name: name}, false); err != nil {
				t.Fatalf("Init error: %v", err)
			}
			cfg, err := projectconfig.Load(tmp)
			if err != nil {
				t.Fatalf("rendered config does not load: %v", err)
			}
			if cfg.Name != name {
				t.Fatalf("expected name %q, got %q", name, cfg.Name)
			}
		})
	}
}

func TestInitializer_Init_RejectsMultilineName(t *testing.T) {
	err := NewInitializer().Init(domain.ProjectSpec{Root: t.TempDir(), Name: "a\nb"}, false)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}
