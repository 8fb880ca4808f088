package ports

import "github.com/SuwenJunliu/LASIF/internal/domain"

// IterationRepository manages iteration entities keyed by short name.
type IterationRepository interface {
	Enumerate() (map[string]string, error)
	List() ([]string, error)
	Count() (int, error)
	Exists(name string) (bool, error)
	Create(name, solver string, events map[string][]string, minPeriod, maxPeriod float64) error
	Clone(source, dest string) error
	Save(it domain.Iteration) error
	Get(name string) (domain.Iteration, error)
}
