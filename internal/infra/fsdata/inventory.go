package fsdata

import (
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/SuwenJunliu/LASIF/internal/domain"
	"github.com/SuwenJunliu/LASIF/internal/ports"
)

// Inventory maps the DATA, SYNTHETICS and WINDOWS folders to station counts.
//
//	DATA/<event>/raw/<NET.STA...>
//	DATA/<event>/<processing tag>/<NET.STA...>
//	SYNTHETICS/<event>/ITERATION_<name>/<NET.STA...>
//	ADJOINT_SOURCES_AND_WINDOWS/WINDOWS/ITERATION_<name>/<event>/<NET.STA...>
type Inventory struct {
	paths domain.ProjectPaths
	log   *slog.Logger
}

type Option func(*Inventory)

func WithLogger(l *slog.Logger) Option {
	return func(i *Inventory) {
		if l != nil {
			i.log = l
		}
	}
}

func NewInventory(paths domain.ProjectPaths, opts ...Option) *Inventory {
	i := &Inventory{paths: paths, log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

var (
	_ ports.DataInventory  = (*Inventory)(nil)
	_ ports.ProjectCounter = (*Inventory)(nil)
)

// RawStations returns the sorted station ids with raw data for event.
func (i *Inventory) RawStations(event string) ([]string, error) {
	set, err := stationSet("inventory.raw_stations", filepath.Join(i.paths.Data, event, rawFolder))
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (i *Inventory) ProcessedStations(event, processingTag string, stations []string) (int, error) {
	set, err := stationSet("inventory.processed_stations", filepath.Join(i.paths.Data, event, processingTag))
	if err != nil {
		return 0, err
	}
	return countIn(set, stations), nil
}

func (i *Inventory) SyntheticStations(event, iteration string, stations []string) (int, error) {
	dir := filepath.Join(i.paths.Synthetics, event, domain.LongIterationName(iteration))
	set, err := stationSet("inventory.synthetic_stations", dir)
	if err != nil {
		return 0, err
	}
	return countIn(set, stations), nil
}

// WindowFraction is the share of stations with at least one window file.
// An empty station selection yields zero.
func (i *Inventory) WindowFraction(event, iteration string, stations []string) (float64, error) {
	if len(stations) == 0 {
		return 0, nil
	}
	dir := filepath.Join(i.paths.Windows, domain.LongIterationName(iteration), event)
	set, err := stationSet("inventory.window_fraction", dir)
	if err != nil {
		return 0, err
	}
	return float64(countIn(set, stations)) / float64(len(stations)), nil
}

func (i *Inventory) CountStationFiles() (int, error) {
	total := 0
	for _, dir := range []string{i.paths.StationSEED, i.paths.StationRESP, i.paths.StationXML} {
		files, err := listFiles("inventory.count_station_files", dir)
		if err != nil {
			return 0, err
		}
		total += len(files)
	}
	return total, nil
}

func (i *Inventory) CountRawWaveforms() (int, error) {
	return i.countDataFiles("inventory.count_raw", func(sub string) bool {
		return sub == rawFolder
	})
}

func (i *Inventory) CountProcessedWaveforms() (int, error) {
	return i.countDataFiles("inventory.count_processed", func(sub string) bool {
		return strings.HasPrefix(sub, processedPrefix)
	})
}

func (i *Inventory) CountSyntheticWaveforms() (int, error) {
	const op = "inventory.count_synthetics"
	events, err := listDirs(op, i.paths.Synthetics)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, ev := range events {
		iterations, err := listDirs(op, filepath.Join(i.paths.Synthetics, ev))
		if err != nil {
			return 0, err
		}
		for _, it := range iterations {
			files, err := listFiles(op, filepath.Join(i.paths.Synthetics, ev, it))
			if err != nil {
				return 0, err
			}
			total += len(files)
		}
	}
	return total, nil
}

// ListModels returns the model folder names below MODELS.
func (i *Inventory) ListModels() ([]string, error) {
	return listDirs("inventory.list_models", i.paths.Models)
}

func (i *Inventory) countDataFiles(op string, match func(sub string) bool) (int, error) {
	events, err := listDirs(op, i.paths.Data)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, ev := range events {
		subs, err := listDirs(op, filepath.Join(i.paths.Data, ev))
		if err != nil {
			return 0, err
		}
		for _, sub := range subs {
			if !match(sub) {
				continue
			}
			files, err := listFiles(op, filepath.Join(i.paths.Data, ev, sub))
			if err != nil {
				return 0, err
			}
			total += len(files)
		}
	}
	i.log.Debug("inventory.counted", "op", op, "files", total)
	return total, nil
}
