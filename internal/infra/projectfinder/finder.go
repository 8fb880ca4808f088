package projectfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/SuwenJunliu/LASIF/internal/domain"
	"github.com/SuwenJunliu/LASIF/internal/ports"
)

// Finder locates a LASIF project root by searching for config.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "config.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: domain.ConfigFileName}
}

var _ ports.ProjectLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "projectfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "projectfinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if st, err := os.Stat(cfgPath); err == nil && !st.IsDir() {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "projectfinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
