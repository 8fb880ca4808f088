package fsproject

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SuwenJunliu/LASIF/internal/app/template"
	"github.com/SuwenJunliu/LASIF/internal/domain"
	"github.com/SuwenJunliu/LASIF/internal/ports"
)

//go:embed templates
var templatesFS embed.FS

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ProjectInitializer = (*Initializer)(nil)

// Init creates the project folder layout and renders the config template.
// Existing files are kept unless force is set.
func (i *Initializer) Init(spec domain.ProjectSpec, force bool) error {
	if strings.TrimSpace(spec.Name) == "" || strings.ContainsAny(spec.Name, "\r\n") {
		return &domain.OpError{
			Op:   "fsproject.init",
			Kind: domain.KindInvalidConfig,
			Path: spec.Root,
			Key:  "name",
			Err:  errors.New("project name is required and must fit on one line"),
		}
	}
	name, err := yamlScalar(spec.Name)
	if err != nil {
		return err
	}

	paths := domain.NewProjectPaths(spec.Root)
	for _, d := range paths.Folders() {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return execError(d, err)
		}
	}

	if err := ensureGitignore(paths.Root); err != nil {
		return execError(filepath.Join(paths.Root, ".gitignore"), err)
	}

	vars := map[string]string{"name": name}
	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(paths.Root, filepath.FromSlash(rel))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}

		out, err := template.RenderString(string(b), vars)
		if err != nil {
			return err
		}

		if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
			return execError(dst, err)
		}
		return nil
	})
}

// yamlScalar encodes s so it can be pasted after a "key: " in a template.
func yamlScalar(s string) (string, error) {
	b, err := yaml.Marshal(s)
	if err != nil {
		return "", &domain.OpError{
			Op:   "fsproject.init",
			Kind: domain.KindInvalidConfig,
			Key:  "name",
			Err:  err,
		}
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

func ensureGitignore(root string) error {
	const header = "# LASIF"
	entries := []string{
		"CACHE/",
		"LOGS/",
		"OUTPUT/",
		"WAVEFIELDS/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}

func execError(path string, err error) error {
	return &domain.OpError{
		Op:   "fsproject.init",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}
