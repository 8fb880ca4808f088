package projectconfig

type YAMLFile struct {
	Project *YAMLProject `yaml:"lasif_project"`
}

type YAMLProject struct {
	Name             string        `yaml:"name"`
	Description      string        `yaml:"description"`
	DownloadSettings *YAMLDownload `yaml:"download_settings"`
	Domain           *YAMLDomain   `yaml:"domain"`
}

type YAMLDownload struct {
	SecondsBeforeEvent      *float64 `yaml:"seconds_before_event"`
	SecondsAfterEvent       *float64 `yaml:"seconds_after_event"`
	InterstationDistanceInM *float64 `yaml:"interstation_distance_in_m"`
	ChannelPriorities       []string `yaml:"channel_priorities"`
	LocationPriorities      []string `yaml:"location_priorities"`
}

type YAMLDomain struct {
	Global           bool      `yaml:"global"`
	MinLongitude     *float64  `yaml:"minimum_longitude"`
	MaxLongitude     *float64  `yaml:"maximum_longitude"`
	MinLatitude      *float64  `yaml:"minimum_latitude"`
	MaxLatitude      *float64  `yaml:"maximum_latitude"`
	MinDepthKM       *float64  `yaml:"minimum_depth_in_km"`
	MaxDepthKM       *float64  `yaml:"maximum_depth_in_km"`
	BoundaryWidthDeg *float64  `yaml:"boundary_width_in_degree"`
	RotationAxis     []float64 `yaml:"rotation_axis"`
	RotationAngleDeg *float64  `yaml:"rotation_angle_in_degree"`
}
