package usecase

import (
	"path/filepath"
	"strings"

	"github.com/SuwenJunliu/LASIF/internal/domain"
	"github.com/SuwenJunliu/LASIF/internal/ports"
)

type InitProject struct {
	initializer ports.ProjectInitializer
}

func NewInitProject(initializer ports.ProjectInitializer) *InitProject {
	return &InitProject{initializer: initializer}
}

// Execute scaffolds a project in root. An empty name defaults to the folder name.
func (uc *InitProject) Execute(root, name string, force bool) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", &domain.OpError{Op: "usecase.init_project", Kind: domain.KindExecution, Path: root, Err: err}
	}
	if strings.TrimSpace(name) == "" {
		name = filepath.Base(abs)
	}
	if err := uc.initializer.Init(domain.ProjectSpec{Root: abs, Name: name}, force); err != nil {
		return "", err
	}
	return abs, nil
}
