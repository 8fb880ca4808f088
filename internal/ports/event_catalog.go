package ports

// EventCatalog lists the events known to a project.
type EventCatalog interface {
	ListEvents() ([]string, error)
}
