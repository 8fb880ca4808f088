package projectconfig

import (
	"fmt"
	"strings"

	"github.com/SuwenJunliu/LASIF/internal/domain"
)

// MapConfig applies the parsed file on top of domain.DefaultConfig.
func MapConfig(path string, yf YAMLFile) (domain.Config, error) {
	if yf.Project == nil {
		return domain.Config{}, invalidField(path, "lasif_project", "section is required")
	}
	p := yf.Project
	if strings.TrimSpace(p.Name) == "" {
		return domain.Config{}, invalidField(path, "lasif_project.name", "project name is required")
	}

	cfg := domain.DefaultConfig()
	cfg.Name = p.Name
	cfg.Description = p.Description

	if d := p.DownloadSettings; d != nil {
		setFloat(&cfg.Download.SecondsBeforeEvent, d.SecondsBeforeEvent)
		setFloat(&cfg.Download.SecondsAfterEvent, d.SecondsAfterEvent)
		setFloat(&cfg.Download.InterstationDistanceInM, d.InterstationDistanceInM)
		if d.ChannelPriorities != nil {
			cfg.Download.ChannelPriorities = append([]string(nil), d.ChannelPriorities...)
		}
		if d.LocationPriorities != nil {
			cfg.Download.LocationPriorities = append([]string(nil), d.LocationPriorities...)
		}
	}

	if d := p.Domain; d != nil {
		cfg.Domain.Global = d.Global
		setFloat(&cfg.Domain.MinLongitude, d.MinLongitude)
		setFloat(&cfg.Domain.MaxLongitude, d.MaxLongitude)
		setFloat(&cfg.Domain.MinLatitude, d.MinLatitude)
		setFloat(&cfg.Domain.MaxLatitude, d.MaxLatitude)
		setFloat(&cfg.Domain.MinDepthKM, d.MinDepthKM)
		setFloat(&cfg.Domain.MaxDepthKM, d.MaxDepthKM)
		setFloat(&cfg.Domain.BoundaryWidthDeg, d.BoundaryWidthDeg)
		setFloat(&cfg.Domain.RotationAngleDeg, d.RotationAngleDeg)
		if d.RotationAxis != nil {
			if len(d.RotationAxis) != 3 {
				return domain.Config{}, invalidField(path, "lasif_project.domain.rotation_axis", "expected three components")
			}
			copy(cfg.Domain.RotationAxis[:], d.RotationAxis)
		}
	}

	if cfg.Download.SecondsBeforeEvent < 0 || cfg.Download.SecondsAfterEvent < 0 {
		return domain.Config{}, invalidField(path, "lasif_project.download_settings", "seconds must be non-negative")
	}
	if cfg.Domain.MinDepthKM > cfg.Domain.MaxDepthKM {
		return domain.Config{}, invalidField(path, "lasif_project.domain", "minimum depth exceeds maximum depth")
	}

	return cfg, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "projectconfig.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%s: %s", field, msg),
	}
}
