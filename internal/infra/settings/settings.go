// Package settings loads per-user preferences that apply across projects.
package settings

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/SuwenJunliu/LASIF/internal/domain"
)

const (
	EnvPrefix     = "LASIF"
	DefaultSolver = "ses3d_4_1"
)

// Settings holds user preferences. Env vars use the LASIF_ prefix.
type Settings struct {
	Project       string `mapstructure:"project"`
	Debug         bool   `mapstructure:"debug"`
	DefaultSolver string `mapstructure:"default_solver"`
}

type Options struct {
	// ConfigFile overrides the lookup in <Home>/.config/lasif.
	ConfigFile string
	Home       string
	// Flags, when set, are bound so an explicit flag beats file and env.
	Flags *pflag.FlagSet
}

func Load(opts Options) (Settings, error) {
	v := viper.New()

	v.SetDefault("project", "")
	v.SetDefault("debug", false)
	v.SetDefault("default_solver", DefaultSolver)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		if opts.Home != "" {
			v.AddConfigPath(filepath.Join(opts.Home, ".config", "lasif"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for _, name := range []string{"project", "debug"} {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return Settings{}, invalid(opts.ConfigFile, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// No user config; defaults and env apply.
		case opts.ConfigFile != "":
			return Settings{}, invalid(opts.ConfigFile, err)
		default:
			return Settings{}, invalid(v.ConfigFileUsed(), err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, invalid(v.ConfigFileUsed(), err)
	}
	if strings.TrimSpace(s.DefaultSolver) == "" {
		s.DefaultSolver = DefaultSolver
	}
	return s, nil
}

func invalid(path string, err error) error {
	return &domain.OpError{
		Op:   "settings.load",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  err,
	}
}
