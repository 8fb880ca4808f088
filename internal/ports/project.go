package ports

import "github.com/SuwenJunliu/LASIF/internal/domain"

type ProjectInitializer interface {
	Init(spec domain.ProjectSpec, force bool) error
}

// ProjectLocator finds a LASIF project root starting from an arbitrary directory.
type ProjectLocator interface {
	FindRoot(startDir string) (string, error)
}
