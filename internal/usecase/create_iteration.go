package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/SuwenJunliu/LASIF/internal/ports"
)

type CreateIterationInput struct {
	Name      string
	Solver    string
	MinPeriod float64
	MaxPeriod float64
	// Events restricts the iteration to these events. Empty means all.
	Events []string
}

// MissingEvent is a requested event that the project does not know.
type MissingEvent struct {
	Name       string
	Suggestion string
}

type CreateIterationResult struct {
	Events   int
	Stations int
	Missing  []MissingEvent
}

type CreateIteration struct {
	repo      ports.IterationRepository
	catalog   ports.EventCatalog
	inventory ports.DataInventory
	log       *slog.Logger
}

func NewCreateIteration(repo ports.IterationRepository, catalog ports.EventCatalog, inventory ports.DataInventory, log *slog.Logger) *CreateIteration {
	return &CreateIteration{repo: repo, catalog: catalog, inventory: inventory, log: log}
}

// Execute registers a new iteration covering the selected events and every
// station with raw data for them.
func (uc *CreateIteration) Execute(ctx context.Context, in CreateIterationInput) (CreateIterationResult, error) {
	var res CreateIterationResult

	known, err := uc.catalog.ListEvents()
	if err != nil {
		return res, err
	}

	selected := known
	if len(in.Events) > 0 {
		index := make(map[string]bool, len(known))
		for _, e := range known {
			index[e] = true
		}
		selected = nil
		for _, e := range in.Events {
			if index[e] {
				selected = append(selected, e)
				continue
			}
			res.Missing = append(res.Missing, MissingEvent{Name: e, Suggestion: NearestName(e, known)})
		}
	}

	events := make(map[string][]string, len(selected))
	for _, e := range selected {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		stations, err := uc.inventory.RawStations(e)
		if err != nil {
			return res, err
		}
		events[e] = stations
		res.Stations += len(stations)
	}
	res.Events = len(events)

	if err := uc.repo.Create(in.Name, in.Solver, events, in.MinPeriod, in.MaxPeriod); err != nil {
		return res, err
	}

	if uc.log != nil {
		uc.log.Info("iteration.create",
			"name", in.Name,
			"solver", in.Solver,
			"events", res.Events,
			"stations", res.Stations,
			"missing", len(res.Missing),
		)
	}
	return res, nil
}

// NearestName returns the candidate with the smallest edit distance to name,
// or "" when nothing is within half the length of name.
func NearestName(name string, candidates []string) string {
	best := ""
	bestDist := len(name)/2 + 1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToUpper(name), strings.ToUpper(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
