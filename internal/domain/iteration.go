package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// IterationPrefix is prepended to a short name to build the long name.
	IterationPrefix = "ITERATION_"
	// IterationExt is the extension of iteration files.
	IterationExt = ".xml"
	// IterationFilePattern matches every iteration file in a registry folder.
	IterationFilePattern = IterationPrefix + "*" + IterationExt

	DefaultSourceTimeFunction = "Filtered Heaviside"
)

// LongIterationName returns the filesystem form of a short iteration name.
func LongIterationName(short string) string {
	return IterationPrefix + short
}

// IterationFileName returns the base filename of an iteration.
func IterationFileName(short string) string {
	return LongIterationName(short) + IterationExt
}

// ShortNameFromFilename reverses IterationFileName for any path to an iteration file.
// Names that were not produced by IterationFileName are not detected.
func ShortNameFromFilename(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if len(base) <= len(IterationPrefix) {
		return ""
	}
	return base[len(IterationPrefix):]
}

// IterationStation is one station taking part in an event of an iteration.
type IterationStation struct {
	ID             string
	Weight         float64
	TimeCorrection float64
}

// IterationEvent is one event of an iteration with its station selection.
type IterationEvent struct {
	Name           string
	Weight         float64
	TimeCorrection float64
	Stations       []IterationStation
}

// Iteration is a named configuration of one inversion run.
type Iteration struct {
	Name        string
	Description string
	Comments    []string

	Solver    string
	MinPeriod float64
	MaxPeriod float64

	SourceTimeFunction string

	Events []IterationEvent
}

// NewIteration builds a fresh iteration. Events and stations are stored sorted.
func NewIteration(name, solver string, events map[string][]string, minPeriod, maxPeriod float64) Iteration {
	names := make([]string, 0, len(events))
	for ev := range events {
		names = append(names, ev)
	}
	sort.Strings(names)

	it := Iteration{
		Name:               name,
		Comments:           []string{},
		Solver:             solver,
		MinPeriod:          minPeriod,
		MaxPeriod:          maxPeriod,
		SourceTimeFunction: DefaultSourceTimeFunction,
		Events:             make([]IterationEvent, 0, len(names)),
	}

	for _, ev := range names {
		ids := append([]string(nil), events[ev]...)
		sort.Strings(ids)

		stations := make([]IterationStation, 0, len(ids))
		for _, id := range ids {
			stations = append(stations, IterationStation{ID: id, Weight: 1})
		}
		it.Events = append(it.Events, IterationEvent{
			Name:     ev,
			Weight:   1,
			Stations: stations,
		})
	}
	return it
}

// Clone returns a deep copy that shares no slices with it.
func (it Iteration) Clone() Iteration {
	out := it
	out.Comments = append([]string{}, it.Comments...)
	out.Events = make([]IterationEvent, len(it.Events))
	for i, ev := range it.Events {
		c := ev
		c.Stations = append([]IterationStation(nil), ev.Stations...)
		out.Events[i] = c
	}
	return out
}

// EventNames returns the event identifiers in stored order.
func (it Iteration) EventNames() []string {
	out := make([]string, 0, len(it.Events))
	for _, ev := range it.Events {
		out = append(out, ev.Name)
	}
	return out
}

// StationIDs returns the station ids selected for an event, or nil if the event is unknown.
func (it Iteration) StationIDs(event string) []string {
	for _, ev := range it.Events {
		if ev.Name != event {
			continue
		}
		out := make([]string, 0, len(ev.Stations))
		for _, st := range ev.Stations {
			out = append(out, st.ID)
		}
		return out
	}
	return nil
}

// ProcessingTag names the folder holding data preprocessed for this iteration.
func (it Iteration) ProcessingTag() string {
	return fmt.Sprintf("preprocessed_hp_%.5f_lp_%.5f", 1.0/it.MaxPeriod, 1.0/it.MinPeriod)
}

var solverLabels = map[string]string{
	"ses3d_4_1":           "SES3D 4.1",
	"ses3d_2_0":           "SES3D 2.0",
	"specfem3d_cartesian": "SPECFEM3D CARTESIAN",
	"specfem3d_globe_cem": "SPECFEM3D GLOBE CEM",
}

// SolverLabel is the human readable solver name. Unknown solvers are shown as stored.
func (it Iteration) SolverLabel() string {
	if label, ok := solverLabels[strings.ToLower(it.Solver)]; ok {
		return label
	}
	return it.Solver
}

// Describe renders the iteration summary printed by `lasif iteration_info`.
func (it Iteration) Describe() string {
	unique := map[string]struct{}{}
	pairs := 0
	for _, ev := range it.Events {
		for _, st := range ev.Stations {
			unique[st.ID] = struct{}{}
			pairs++
		}
	}

	desc := it.Description
	if strings.TrimSpace(desc) == "" {
		desc = "None"
	}

	var b strings.Builder
	b.WriteString("LASIF Iteration\n")
	fmt.Fprintf(&b, "\tName: %s\n", it.Name)
	fmt.Fprintf(&b, "\tDescription: %s\n", desc)
	fmt.Fprintf(&b, "\tSource Time Function: %s\n", it.SourceTimeFunction)
	b.WriteString("\tPreprocessing Settings:\n")
	fmt.Fprintf(&b, "\t\tHighpass Period: %.3f s\n", it.MaxPeriod)
	fmt.Fprintf(&b, "\t\tLowpass Period: %.3f s\n", it.MinPeriod)
	fmt.Fprintf(&b, "\tSolver: %s\n", it.SolverLabel())
	fmt.Fprintf(&b, "\t%s recorded at %s\n", Plural(len(it.Events), "event"), Plural(len(unique), "unique station"))
	fmt.Fprintf(&b, "\t%s (\"rays\")\n", Plural(pairs, "event-station pair"))
	for _, c := range it.Comments {
		fmt.Fprintf(&b, "\tComment: %s\n", c)
	}
	return b.String()
}

// Plural formats a count with a naively pluralized noun ("1 event", "2 events").
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
