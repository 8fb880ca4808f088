package projectconfig

import (
	"os"

	"github.com/SuwenJunliu/LASIF/internal/domain"
	"gopkg.in/yaml.v3"
)

// Load reads the config.yaml of the project rooted at root.
func Load(root string) (domain.Config, error) {
	return LoadFile(domain.NewProjectPaths(root).Config)
}

func LoadFile(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "projectconfig.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "projectconfig.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}
