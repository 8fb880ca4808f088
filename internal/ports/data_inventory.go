package ports

// DataInventory answers per-event data availability questions.
// Station counts are taken over the given station selection only.
type DataInventory interface {
	RawStations(event string) ([]string, error)
	ProcessedStations(event, processingTag string, stations []string) (int, error)
	SyntheticStations(event, iteration string, stations []string) (int, error)
	WindowFraction(event, iteration string, stations []string) (float64, error)
}

// ProjectCounter provides the aggregate file counts shown by `lasif info`.
type ProjectCounter interface {
	CountStationFiles() (int, error)
	CountRawWaveforms() (int, error)
	CountProcessedWaveforms() (int, error)
	CountSyntheticWaveforms() (int, error)
	ListModels() ([]string, error)
}
