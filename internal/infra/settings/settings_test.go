package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/SuwenJunliu/LASIF/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LASIF_PROJECT", "")
	t.Setenv("LASIF_DEFAULT_SOLVER", "")

	s, err := Load(Options{Home: t.TempDir()})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.DefaultSolver != DefaultSolver || s.Debug || s.Project != "" {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestLoad_FileFromHome(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".config", "lasif")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "project: /data/proj\ndefault_solver: specfem3d_globe_cem\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := Load(Options{Home: home})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Project != "/data/proj" || s.DefaultSolver != "specfem3d_globe_cem" {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestLoad_EnvAndFlagPrecedence(t *testing.T) {
	t.Setenv("LASIF_PROJECT", "/env/proj")
	t.Setenv("LASIF_DEBUG", "true")

	s, err := Load(Options{Home: t.TempDir()})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Project != "/env/proj" || !s.Debug {
		t.Fatalf("expected env values, got %+v", s)
	}

	fs := pflag.NewFlagSet("lasif", pflag.ContinueOnError)
	fs.String("project", "", "")
	fs.Bool("debug", false, "")
	if err := fs.Parse([]string{"--project", "/flag/proj"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	s, err = Load(Options{Home: t.TempDir(), Flags: fs})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Project != "/flag/proj" {
		t.Fatalf("expected flag to win, got %q", s.Project)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}
