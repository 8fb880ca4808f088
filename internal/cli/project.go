package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/SuwenJunliu/LASIF/internal/buildinfo"
	"github.com/SuwenJunliu/LASIF/internal/domain"
	"github.com/SuwenJunliu/LASIF/internal/infra/fsdata"
	"github.com/SuwenJunliu/LASIF/internal/infra/iterstore"
	"github.com/SuwenJunliu/LASIF/internal/infra/iterxml"
	"github.com/SuwenJunliu/LASIF/internal/infra/logger"
	"github.com/SuwenJunliu/LASIF/internal/infra/projectconfig"
	"github.com/SuwenJunliu/LASIF/internal/infra/projectfinder"
	"github.com/SuwenJunliu/LASIF/internal/infra/settings"
	"github.com/SuwenJunliu/LASIF/internal/ports"
)

type app struct {
	stdout io.Writer
	stderr io.Writer

	projectFlag string
	configFlag  string
	debug       bool

	settings settings.Settings
	locator  ports.ProjectLocator
	proj     *projectCtx
	cleanup  []func() error
}

type projectCtx struct {
	root  string
	paths domain.ProjectPaths
	cfg   domain.Config
	log   *slog.Logger

	codec      *iterxml.Codec
	iterations *iterstore.Store
	events     *fsdata.Events
	inventory  *fsdata.Inventory
}

// project opens the project once per invocation and starts its log file.
func (a *app) project() (*projectCtx, error) {
	if a.proj != nil {
		return a.proj, nil
	}

	root, err := resolveProjectRoot(a.settings.Project, a.locator)
	if err != nil {
		return nil, err
	}

	cfg, err := projectconfig.Load(root)
	if err != nil {
		return nil, err
	}

	cleanup, logErr := logger.Setup(logger.Config{Root: root, Debug: a.settings.Debug})
	if cleanup != nil {
		a.cleanup = append(a.cleanup, cleanup)
	}
	log := logger.L()
	if logErr != nil {
		fmt.Fprintf(a.stderr, "warning: logging disabled: %v\n", logErr)
	}

	paths := domain.NewProjectPaths(root)
	codec := iterxml.NewCodec()
	a.proj = &projectCtx{
		root:       root,
		paths:      paths,
		cfg:        cfg,
		log:        log,
		codec:      codec,
		iterations: iterstore.New(paths.Iterations, codec, iterstore.WithLogger(log)),
		events:     fsdata.NewEvents(paths),
		inventory:  fsdata.NewInventory(paths, fsdata.WithLogger(log)),
	}
	log.Debug("project.opened", "root", root, "name", cfg.Name, "build", buildinfo.Details())
	return a.proj, nil
}

func (a *app) close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		_ = a.cleanup[i]()
	}
	a.cleanup = nil
}

// resolveProjectRoot prefers an explicit project path and otherwise asks the
// locator, starting from the working directory.
func resolveProjectRoot(projectFlag string, locator ports.ProjectLocator) (string, error) {
	p := strings.TrimSpace(projectFlag)
	if p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("invalid project path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	if locator == nil {
		locator = projectfinder.NewFinder()
	}
	return locator.FindRoot(wd)
}
