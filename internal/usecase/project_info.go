package usecase

import (
	"context"

	"github.com/SuwenJunliu/LASIF/internal/domain"
	"github.com/SuwenJunliu/LASIF/internal/ports"
)

type ProjectInfo struct {
	events  ports.EventCatalog
	counter ports.ProjectCounter
}

func NewProjectInfo(events ports.EventCatalog, counter ports.ProjectCounter) *ProjectInfo {
	return &ProjectInfo{events: events, counter: counter}
}

func (uc *ProjectInfo) Execute(ctx context.Context, root string, cfg domain.Config) (domain.ProjectSummary, error) {
	sum := domain.ProjectSummary{Config: cfg, Root: root}

	events, err := uc.events.ListEvents()
	if err != nil {
		return domain.ProjectSummary{}, err
	}
	sum.Events = len(events)

	counts := []struct {
		dst *int
		fn  func() (int, error)
	}{
		{&sum.StationFiles, uc.counter.CountStationFiles},
		{&sum.RawWaveforms, uc.counter.CountRawWaveforms},
		{&sum.ProcessedWaveforms, uc.counter.CountProcessedWaveforms},
		{&sum.SyntheticWaveforms, uc.counter.CountSyntheticWaveforms},
	}
	for _, c := range counts {
		if err := ctx.Err(); err != nil {
			return domain.ProjectSummary{}, err
		}
		n, err := c.fn()
		if err != nil {
			return domain.ProjectSummary{}, err
		}
		*c.dst = n
	}
	return sum, nil
}
