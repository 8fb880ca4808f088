package usecase

import (
	"log/slog"

	"github.com/SuwenJunliu/LASIF/internal/ports"
)

// CloneIteration derives a successive iteration from an existing one.
type CloneIteration struct {
	repo ports.IterationRepository
	log  *slog.Logger
}

func NewCloneIteration(repo ports.IterationRepository, log *slog.Logger) *CloneIteration {
	return &CloneIteration{repo: repo, log: log}
}

func (uc *CloneIteration) Execute(source, dest string) error {
	if err := uc.repo.Clone(source, dest); err != nil {
		return err
	}
	if uc.log != nil {
		uc.log.Info("iteration.clone", "source", source, "dest", dest)
	}
	return nil
}
