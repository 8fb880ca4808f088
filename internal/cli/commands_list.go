package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SuwenJunliu/LASIF/internal/domain"
)

func listEventsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list_events",
		Short: "Print a list of all events in the project",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := a.project()
			if err != nil {
				return err
			}
			events, err := p.events.ListEvents()
			if err != nil {
				return err
			}
			printList(a.stdout, events, "event")
			return nil
		},
	}
}

func listModelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list_models",
		Short: "Print a list of all models in the project",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := a.project()
			if err != nil {
				return err
			}
			models, err := p.inventory.ListModels()
			if err != nil {
				return err
			}
			printList(a.stdout, models, "model")
			return nil
		},
	}
}

func listIterationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list_iterations",
		Short: "Print a list of all iterations in the project",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := a.project()
			if err != nil {
				return err
			}
			names, err := p.iterations.List()
			if err != nil {
				return err
			}
			printList(a.stdout, names, "iteration")
			return nil
		},
	}
}

func printList(w io.Writer, items []string, noun string) {
	fmt.Fprintf(w, "%s in project:\n", domain.Plural(len(items), noun))
	for _, it := range items {
		fmt.Fprintf(w, "\t%s\n", it)
	}
}
