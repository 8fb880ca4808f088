package usecase

import (
	"sort"

	"github.com/SuwenJunliu/LASIF/internal/domain"
)

// --- fakes shared by the use case tests ---

type memRepo struct {
	items map[string]domain.Iteration
}

func newMemRepo() *memRepo {
	return &memRepo{items: map[string]domain.Iteration{}}
}

func (r *memRepo) Enumerate() (map[string]string, error) {
	out := map[string]string{}
	for k := range r.items {
		out[k] = "/mem/" + domain.IterationFileName(k)
	}
	return out, nil
}

func (r *memRepo) List() ([]string, error) {
	out := make([]string, 0, len(r.items))
	for k := range r.items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

func (r *memRepo) Count() (int, error) { return len(r.items), nil }

func (r *memRepo) Exists(name string) (bool, error) {
	_, ok := r.items[name]
	return ok, nil
}

func (r *memRepo) Create(name, solver string, events map[string][]string, minP, maxP float64) error {
	if _, ok := r.items[name]; ok {
		return &domain.OpError{Op: "mem.create", Kind: domain.KindAlreadyExists, Key: name, Err: domain.ErrAlreadyExists}
	}
	r.items[name] = domain.NewIteration(name, solver, events, minP, maxP)
	return nil
}

func (r *memRepo) Clone(src, dst string) error {
	it, err := r.Get(src)
	if err != nil {
		return err
	}
	if _, ok := r.items[dst]; ok {
		return &domain.OpError{Op: "mem.clone", Kind: domain.KindAlreadyExists, Key: dst, Err: domain.ErrAlreadyExists}
	}
	it.Name = dst
	it.Comments = []string{}
	r.items[dst] = it
	return nil
}

func (r *memRepo) Save(it domain.Iteration) error {
	r.items[it.Name] = it.Clone()
	return nil
}

func (r *memRepo) Get(name string) (domain.Iteration, error) {
	it, ok := r.items[name]
	if !ok {
		return domain.Iteration{}, &domain.OpError{Op: "mem.get", Kind: domain.KindNotFound, Key: name, Err: domain.ErrNotFound}
	}
	return it.Clone(), nil
}

type staticCatalog []string

func (c staticCatalog) ListEvents() ([]string, error) { return []string(c), nil }

// fakeInventory answers from fixed tables keyed by event.
type fakeInventory struct {
	raw        map[string][]string
	processed  map[string]int
	synthetics map[string]int
	windows    map[string]float64

	lastTag string
}

func (f *fakeInventory) RawStations(event string) ([]string, error) {
	return f.raw[event], nil
}

func (f *fakeInventory) ProcessedStations(event, tag string, _ []string) (int, error) {
	f.lastTag = tag
	return f.processed[event], nil
}

func (f *fakeInventory) SyntheticStations(event, _ string, _ []string) (int, error) {
	return f.synthetics[event], nil
}

func (f *fakeInventory) WindowFraction(event, _ string, _ []string) (float64, error) {
	return f.windows[event], nil
}

type fakeCounter struct {
	stations, raw, processed, synthetics int
	models                               []string
}

func (f fakeCounter) CountStationFiles() (int, error)       { return f.stations, nil }
func (f fakeCounter) CountRawWaveforms() (int, error)       { return f.raw, nil }
func (f fakeCounter) CountProcessedWaveforms() (int, error) { return f.processed, nil }
func (f fakeCounter) CountSyntheticWaveforms() (int, error) { return f.synthetics, nil }
func (f fakeCounter) ListModels() ([]string, error)         { return f.models, nil }

type recordingInitializer struct {
	spec  domain.ProjectSpec
	force bool
}

func (r *recordingInitializer) Init(spec domain.ProjectSpec, force bool) error {
	r.spec = spec
	r.force = force
	return nil
}
