package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SuwenJunliu/LASIF/internal/domain"
	"github.com/SuwenJunliu/LASIF/internal/infra/fsproject"
	"github.com/SuwenJunliu/LASIF/internal/usecase"
)

func initProjectCmd(a *app) *cobra.Command {
	var name string
	var force bool

	c := &cobra.Command{
		Use:   "init_project <folder>",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			uc := usecase.NewInitProject(fsproject.NewInitializer())
			root, err := uc.Execute(args[0], name, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Initialized project in:\n\t%s\n", root)
			return nil
		},
	}

	c.Flags().StringVar(&name, "name", "", "Project name (defaults to the folder name)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return c
}

func infoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print a summary of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.project()
			if err != nil {
				return err
			}

			uc := usecase.NewProjectInfo(p.events, p.inventory)
			sum, err := uc.Execute(cmd.Context(), p.root, p.cfg)
			if err != nil {
				return err
			}

			desc := sum.Config.Description
			if desc == "" {
				desc = "None"
			}
			w := a.stdout
			fmt.Fprintf(w, "LASIF project %q\n", sum.Config.Name)
			fmt.Fprintf(w, "\tDescription: %s\n", desc)
			fmt.Fprintf(w, "\tProject root: %s\n", sum.Root)
			fmt.Fprintf(w, "\tContent:\n")
			fmt.Fprintf(w, "\t\t%s\n", domain.Plural(sum.Events, "event"))
			fmt.Fprintf(w, "\t\t%s\n", domain.Plural(sum.StationFiles, "station file"))
			fmt.Fprintf(w, "\t\t%s\n", domain.Plural(sum.RawWaveforms, "raw waveform file"))
			fmt.Fprintf(w, "\t\t%s\n", domain.Plural(sum.ProcessedWaveforms, "processed waveform file"))
			fmt.Fprintf(w, "\t\t%s\n", domain.Plural(sum.SyntheticWaveforms, "synthetic waveform file"))
			return nil
		},
	}
}
