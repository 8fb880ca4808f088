package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SuwenJunliu/LASIF/internal/domain"
	"github.com/SuwenJunliu/LASIF/internal/usecase"
)

func createNewIterationCmd(a *app) *cobra.Command {
	var events []string

	c := &cobra.Command{
		Use:   "create_new_iteration <name> <min_period> <max_period> [solver]",
		Short: "Create a new iteration covering the events and stations with raw data",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.project()
			if err != nil {
				return err
			}

			minP, err := parsePeriod("min_period", args[1])
			if err != nil {
				return err
			}
			maxP, err := parsePeriod("max_period", args[2])
			if err != nil {
				return err
			}
			solver := a.settings.DefaultSolver
			if len(args) == 4 {
				solver = args[3]
			}

			uc := usecase.NewCreateIteration(p.iterations, p.events, p.inventory, p.log)
			res, err := uc.Execute(cmd.Context(), usecase.CreateIterationInput{
				Name:      args[0],
				Solver:    solver,
				MinPeriod: minP,
				MaxPeriod: maxP,
				Events:    events,
			})
			for _, m := range res.Missing {
				if m.Suggestion != "" {
					fmt.Fprintf(a.stdout, "Event '%s' not found. Did you mean '%s'?\n", m.Name, m.Suggestion)
				} else {
					fmt.Fprintf(a.stdout, "Event '%s' not found.\n", m.Name)
				}
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "Created iteration %s with %s and %s.\n",
				args[0], domain.Plural(res.Events, "event"), domain.Plural(res.Stations, "station"))
			return nil
		},
	}

	c.Flags().StringSliceVar(&events, "event", nil, "Limit the iteration to these events (repeatable)")
	return c
}

func createSuccessiveIterationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create_successive_iteration <existing> <new>",
		Short: "Create an iteration based on an existing one",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := a.project()
			if err != nil {
				return err
			}
			if err := usecase.NewCloneIteration(p.iterations, p.log).Execute(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Created iteration %s based on iteration %s.\n", args[1], args[0])
			return nil
		},
	}
}

func iterationInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "iteration_info <name>",
		Short: "Print information about a single iteration",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := a.project()
			if err != nil {
				return err
			}
			it, err := p.iterations.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(a.stdout, it.Describe())
			return nil
		},
	}
}

func iterationStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "iteration_status <name>",
		Short: "Print the data availability of an iteration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.project()
			if err != nil {
				return err
			}
			report, err := usecase.NewIterationStatus(p.iterations, p.inventory).Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(a.stdout, report.Header)
			for _, ev := range report.Events {
				fmt.Fprintf(a.stdout, "\t%s\n", ev.Event)
				for _, l := range ev.Lines {
					fmt.Fprintf(a.stdout, "\t\t%s\n", l)
				}
			}
			return nil
		},
	}
}

func compareIterationsCmd(a *app) *cobra.Command {
	var full bool

	c := &cobra.Command{
		Use:   "compare_iterations <a> <b>",
		Short: "Show the differences between two iterations",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := a.project()
			if err != nil {
				return err
			}
			diff, err := usecase.NewCompareIterations(p.iterations, p.codec).Execute(args[0], args[1])
			if err != nil {
				return err
			}
			if diff.Identical {
				fmt.Fprintf(a.stdout, "Iterations %s and %s are identical.\n", args[0], args[1])
				return nil
			}

			fmt.Fprintf(a.stdout, "--- %s\n+++ %s\n",
				domain.IterationFileName(args[0]), domain.IterationFileName(args[1]))
			lines := diff.Changes()
			if full {
				lines = diff.Lines
			}
			for _, l := range lines {
				fmt.Fprintln(a.stdout, l.String())
			}
			return nil
		},
	}

	c.Flags().BoolVar(&full, "full", false, "Print unchanged lines too")
	return c
}

func parsePeriod(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &domain.OpError{
			Op:   "cli.parse_period",
			Kind: domain.KindInvalidConfig,
			Key:  field,
			Err:  fmt.Errorf("%s must be a number, got %q", field, s),
		}
	}
	return v, nil
}
