package usecase

import (
	"context"

	"github.com/SuwenJunliu/LASIF/internal/domain"
	"github.com/SuwenJunliu/LASIF/internal/ports"
)

type IterationStatus struct {
	repo      ports.IterationRepository
	inventory ports.DataInventory
}

func NewIterationStatus(repo ports.IterationRepository, inventory ports.DataInventory) *IterationStatus {
	return &IterationStatus{repo: repo, inventory: inventory}
}

// Execute builds the per-event data availability report for one iteration.
// Events are reported in the order the iteration stores them.
func (uc *IterationStatus) Execute(ctx context.Context, name string) (domain.StatusReport, error) {
	it, err := uc.repo.Get(name)
	if err != nil {
		return domain.StatusReport{}, err
	}

	tag := it.ProcessingTag()
	counts := make([]domain.EventCounts, 0, len(it.Events))
	for _, ev := range it.Events {
		if err := ctx.Err(); err != nil {
			return domain.StatusReport{}, err
		}

		stations := it.StationIDs(ev.Name)
		c := domain.EventCounts{Event: ev.Name, Total: len(stations)}

		if c.Processed, err = uc.inventory.ProcessedStations(ev.Name, tag, stations); err != nil {
			return domain.StatusReport{}, err
		}
		if c.Synthetics, err = uc.inventory.SyntheticStations(ev.Name, it.Name, stations); err != nil {
			return domain.StatusReport{}, err
		}
		if c.WindowFraction, err = uc.inventory.WindowFraction(ev.Name, it.Name, stations); err != nil {
			return domain.StatusReport{}, err
		}
		counts = append(counts, c)
	}

	return domain.BuildStatusReport(it.Name, counts), nil
}
