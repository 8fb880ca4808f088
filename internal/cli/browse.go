package cli

import (
	"github.com/spf13/cobra"

	"github.com/SuwenJunliu/LASIF/internal/infra/logger"
	"github.com/SuwenJunliu/LASIF/internal/ui/tui"
	"github.com/SuwenJunliu/LASIF/internal/usecase"
)

func browseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the iterations of the project interactively",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := a.project()
			if err != nil {
				return err
			}
			return tui.Run(tui.Deps{
				ProjectName: p.cfg.Name,
				ProjectRoot: p.root,
				Iterations:  p.iterations,
				Status:      usecase.NewIterationStatus(p.iterations, p.inventory),
				Logger:      p.log,
				Debug:       a.settings.Debug,
				LogPath:     logger.Path(),
			})
		},
	}
}
