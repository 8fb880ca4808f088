package domain

import "path/filepath"

// ConfigFileName is the project configuration file looked up at the project root.
const ConfigFileName = "config.yaml"

// ProjectPaths holds the fixed folder layout of a LASIF project.
type ProjectPaths struct {
	Root        string
	Config      string
	Adjoint     string
	Windows     string
	Cache       string
	Data        string
	Events      string
	Iterations  string
	Kernels     string
	Logs        string
	Models      string
	Output      string
	Stations    string
	Synthetics  string
	Wavefields  string
	StationSEED string
	StationRESP string
	StationXML  string
}

// NewProjectPaths derives every project folder from the root.
func NewProjectPaths(root string) ProjectPaths {
	root = filepath.Clean(root)
	adjoint := filepath.Join(root, "ADJOINT_SOURCES_AND_WINDOWS")
	stations := filepath.Join(root, "STATIONS")
	return ProjectPaths{
		Root:        root,
		Config:      filepath.Join(root, ConfigFileName),
		Adjoint:     adjoint,
		Windows:     filepath.Join(adjoint, "WINDOWS"),
		Cache:       filepath.Join(root, "CACHE"),
		Data:        filepath.Join(root, "DATA"),
		Events:      filepath.Join(root, "EVENTS"),
		Iterations:  filepath.Join(root, "ITERATIONS"),
		Kernels:     filepath.Join(root, "KERNELS"),
		Logs:        filepath.Join(root, "LOGS"),
		Models:      filepath.Join(root, "MODELS"),
		Output:      filepath.Join(root, "OUTPUT"),
		Stations:    stations,
		Synthetics:  filepath.Join(root, "SYNTHETICS"),
		Wavefields:  filepath.Join(root, "WAVEFIELDS"),
		StationSEED: filepath.Join(stations, "SEED"),
		StationRESP: filepath.Join(stations, "RESP"),
		StationXML:  filepath.Join(stations, "StationXML"),
	}
}

// Folders returns every directory a freshly initialized project contains.
func (p ProjectPaths) Folders() []string {
	return []string{
		p.Adjoint,
		p.Cache,
		p.Data,
		p.Events,
		p.Iterations,
		p.Kernels,
		p.Logs,
		p.Models,
		p.Output,
		p.Stations,
		p.StationSEED,
		p.StationRESP,
		p.StationXML,
		p.Synthetics,
		p.Wavefields,
	}
}

// ProjectSpec describes a project to scaffold.
type ProjectSpec struct {
	Root string
	Name string
}

// ProjectSummary aggregates file counts reported by `lasif info`.
type ProjectSummary struct {
	Config Config
	Root   string

	Events             int
	StationFiles       int
	RawWaveforms       int
	ProcessedWaveforms int
	SyntheticWaveforms int
}
