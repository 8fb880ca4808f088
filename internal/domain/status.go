package domain

import "fmt"

// EventCounts holds the per-event availability figures of one iteration.
type EventCounts struct {
	Event string

	Total      int
	Processed  int
	Synthetics int

	// WindowFraction is the fraction (0..1) of stations with picked windows.
	WindowFraction float64
}

// EventStatus is the report block of a single event.
type EventStatus struct {
	Event string
	Lines []string
}

// StatusReport is the textual state of an iteration.
type StatusReport struct {
	Header string
	Events []EventStatus
}

// BuildStatusReport renders the status of an iteration. Events keep the given order;
// the "Lacks ..." lines only appear for events that actually lack data.
func BuildStatusReport(iteration string, counts []EventCounts) StatusReport {
	r := StatusReport{
		// Singular for one event. Older releases printed "1 events:".
		Header: fmt.Sprintf("Iteration %s is defined for %s:", iteration, Plural(len(counts), "event")),
		Events: make([]EventStatus, 0, len(counts)),
	}

	for _, c := range counts {
		lines := []string{
			fmt.Sprintf("%.2f %% of the events stations have picked windows", c.WindowFraction*100),
		}
		if k := c.Total - c.Processed; k > 0 {
			lines = append(lines, fmt.Sprintf("Lacks processed data for %d stations", k))
		}
		if k := c.Total - c.Synthetics; k > 0 {
			lines = append(lines, fmt.Sprintf("Lacks synthetic data for %d stations", k))
		}
		r.Events = append(r.Events, EventStatus{Event: c.Event, Lines: lines})
	}
	return r
}

// Lines flattens the report: header, then per event its id followed by its lines.
func (r StatusReport) Lines() []string {
	out := []string{r.Header}
	for _, ev := range r.Events {
		out = append(out, ev.Event)
		out = append(out, ev.Lines...)
	}
	return out
}
