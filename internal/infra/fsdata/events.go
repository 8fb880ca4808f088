package fsdata

import (
	"sort"
	"strings"

	"github.com/SuwenJunliu/LASIF/internal/domain"
	"github.com/SuwenJunliu/LASIF/internal/ports"
)

// Events lists the events of a project, one QuakeML file per event.
type Events struct {
	paths domain.ProjectPaths
}

func NewEvents(paths domain.ProjectPaths) *Events {
	return &Events{paths: paths}
}

var _ ports.EventCatalog = (*Events)(nil)

func (e *Events) ListEvents() ([]string, error) {
	files, err := listFiles("events.list", e.paths.Events)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(files))
	for _, f := range files {
		if !strings.EqualFold(extOf(f), eventExt) {
			continue
		}
		out = append(out, strings.TrimSuffix(f, extOf(f)))
	}
	sort.Strings(out)
	return out, nil
}

func extOf(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}
	return ""
}
