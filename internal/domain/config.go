package domain

// Config represents a LASIF project configuration loaded from config.yaml.
type Config struct {
	Name        string
	Description string
	Download    DownloadConfig
	Domain      DomainConfig
}

type DownloadConfig struct {
	SecondsBeforeEvent      float64
	SecondsAfterEvent       float64
	InterstationDistanceInM float64
	ChannelPriorities       []string
	LocationPriorities      []string
}

// DomainConfig describes the simulation domain.
type DomainConfig struct {
	Global bool

	MinLongitude float64
	MaxLongitude float64
	MinLatitude  float64
	MaxLatitude  float64
	MinDepthKM   float64
	MaxDepthKM   float64

	BoundaryWidthDeg float64

	RotationAxis     [3]float64
	RotationAngleDeg float64
}

// DefaultConfig provides sane defaults if config.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Download: DownloadConfig{
			SecondsBeforeEvent:      300,
			SecondsAfterEvent:       3600,
			InterstationDistanceInM: 1000,
			ChannelPriorities: []string{
				"BH[Z,N,E]", "LH[Z,N,E]", "HH[Z,N,E]", "EH[Z,N,E]", "MH[Z,N,E]",
			},
			LocationPriorities: []string{"", "00", "10", "20", "01", "02"},
		},
		Domain: DomainConfig{
			MinLongitude:     -20,
			MaxLongitude:     20,
			MinLatitude:      -20,
			MaxLatitude:      20,
			MinDepthKM:       0,
			MaxDepthKM:       200,
			BoundaryWidthDeg: 3,
			RotationAxis:     [3]float64{1, 1, 1},
			RotationAngleDeg: -45,
		},
	}
}
