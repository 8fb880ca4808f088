package tui

import (
	"context"
	"log/slog"

	"github.com/SuwenJunliu/LASIF/internal/domain"
	"github.com/SuwenJunliu/LASIF/internal/ports"
)

// StatusSource produces the status report of one iteration.
type StatusSource interface {
	Execute(ctx context.Context, name string) (domain.StatusReport, error)
}

type Deps struct {
	ProjectName string
	ProjectRoot string

	Iterations ports.IterationRepository
	Status     StatusSource

	Logger *slog.Logger
	// Debug shows LogPath in the footer.
	Debug   bool
	LogPath string
}
