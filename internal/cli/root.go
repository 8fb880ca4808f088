package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/SuwenJunliu/LASIF/internal/buildinfo"
	"github.com/SuwenJunliu/LASIF/internal/dispatch"
	"github.com/SuwenJunliu/LASIF/internal/infra/projectfinder"
	"github.com/SuwenJunliu/LASIF/internal/infra/settings"
)

const prog = "lasif"

func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes one lasif invocation and returns the process exit code.
// The subcommand token is resolved case-insensitively before cobra sees it;
// unknown tokens get close-match suggestions instead of cobra's own message.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, locator: projectfinder.NewFinder()}
	defer a.close()

	root := newRootCmd(a)
	root.SetOut(stdout)
	root.SetErr(stderr)

	table, err := commandTable(root)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}

	args = append([]string(nil), args...)
	if i := commandIndex(root.PersistentFlags(), args); i >= 0 {
		out := table.Resolve(args[i])
		if !out.Resolved {
			_ = dispatch.RenderUnknown(stderr, prog, args[i], out.Candidates)
			return 1
		}
		args[i] = out.Canonical

		if out.Canonical == "help" && hasHelpFlag(args[i+1:]) {
			fmt.Fprintf(stderr, "%s: Invalid command. See '%s --help'.\n", prog, prog)
			return 1
		}
	}

	root.SetArgs(args)
	cmd, err := root.ExecuteContextC(ctx)
	if err != nil {
		name := prog
		if cmd != nil && cmd != root {
			name = prog + " " + cmd.Name()
		}
		fmt.Fprintf(stderr, "%s: %s\n", name, userMessage(err))
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           prog,
		Short:         "LASIF: Large-scale Seismic Inversion Framework",
		Long:          "LASIF manages the data and iterations of a full waveform inversion project.",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadSettings(cmd.Flags())
		},
	}
	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	cmd.PersistentFlags().StringVarP(&a.projectFlag, "project", "p", "", "Project root (optional; autodetected from the working directory)")
	cmd.PersistentFlags().StringVar(&a.configFlag, "config", "", "User settings file (default ~/.config/lasif/config.yaml)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable verbose logging to LOGS/lasif.log")

	cmd.AddCommand(
		initProjectCmd(a),
		infoCmd(a),
		listEventsCmd(a),
		listModelsCmd(a),
		listIterationsCmd(a),
		createNewIterationCmd(a),
		createSuccessiveIterationCmd(a),
		iterationInfoCmd(a),
		iterationStatusCmd(a),
		compareIterationsCmd(a),
		browseCmd(a),
	)
	cmd.InitDefaultHelpCmd()
	return cmd
}

func commandTable(root *cobra.Command) (dispatch.Table[*cobra.Command], error) {
	entries := make(map[string]*cobra.Command)
	for _, c := range root.Commands() {
		entries[c.Name()] = c
	}
	return dispatch.NewTable(entries)
}

// commandIndex returns the position of the subcommand token in args, or -1.
// Values of root flags that take an argument are skipped.
func commandIndex(flags *pflag.FlagSet, args []string) int {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			if i+1 < len(args) {
				return i + 1
			}
			return -1
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			return i
		}
		if strings.Contains(arg, "=") {
			continue
		}

		var f *pflag.Flag
		if strings.HasPrefix(arg, "--") {
			f = flags.Lookup(arg[2:])
		} else if len(arg) == 2 {
			f = flags.ShorthandLookup(arg[1:])
		}
		if f != nil && f.NoOptDefVal == "" {
			i++
		}
	}
	return -1
}

func hasHelpFlag(args []string) bool {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return true
		}
	}
	return false
}

func (a *app) loadSettings(flags *pflag.FlagSet) error {
	home, _ := os.UserHomeDir()
	s, err := settings.Load(settings.Options{
		ConfigFile: a.configFlag,
		Home:       home,
		Flags:      flags,
	})
	if err != nil {
		return err
	}
	a.settings = s
	return nil
}
