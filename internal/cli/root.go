package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anselmoo/moplots/pkg/buildinfo"
	moerrors "github.com/anselmoo/moplots/pkg/errors"
	"github.com/anselmoo/moplots/pkg/orbital"
	"github.com/anselmoo/moplots/pkg/theme"
)

// RootCommand returns the root cobra command with all subcommands attached.
// The root command itself plots an orbital series.
func (c *CLI) RootCommand() *cobra.Command {
	opts := plotOpts{
		spin:   string(orbital.SpinAlpha),
		grid:   defaultGrid,
		format: string(orbital.FormatBinary),
	}

	root := &cobra.Command{
		Use:   appName + " [flags] <infile>",
		Short: "Plot a series of molecular orbitals with ORCA's orca_plot",
		Long: `moplots renders a contiguous range of molecular orbitals from an ORCA
orbital file. For every orbital it writes the interactive orca_plot script
to a temporary file, runs orca_plot with the script on stdin and keeps the
renderer output in <script>.log next to it.

Orbital files: ` + strings.Join(moerrors.OrbitalSuffixes, ", ") + `

` + buildinfo.Repository,
		Example: `  moplots --mo0 10 --mo1 15 water.gbw
  moplots --mo0 40 --mo1 42 -s both -g 120 -o CUBE complex.uno
  moplots --mo0 1 --mo1 3 -c nord --plain benzene.qro`,
		Version:       buildinfo.Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			registerHooks(c.Logger)
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			exts := make([]string, len(moerrors.OrbitalSuffixes))
			for i, s := range moerrors.OrbitalSuffixes {
				exts[i] = strings.TrimPrefix(s, ".")
			}
			return exts, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlot(cmd.Context(), args[0], opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	f := root.Flags()
	f.IntVar(&opts.first, "mo0", 0, "first orbital index (inclusive)")
	f.IntVar(&opts.last, "mo1", 0, "last orbital index (inclusive)")
	f.StringVarP(&opts.spin, "spin", "s", opts.spin, "spin channel: alpha, beta, both")
	f.IntVarP(&opts.grid, "grid", "g", opts.grid, "grid points per axis")
	f.StringVarP(&opts.format, "output", "o", opts.format, "output format: "+joinFormats())
	f.StringVarP(&opts.color, "color", "c", "", "color theme (stored for later runs): "+strings.Join(theme.Names(), ", "))
	f.StringVar(&opts.renderer, "orca-plot", "", "path to the orca_plot executable")
	f.StringVar(&opts.workDir, "workdir", "", "directory for scripts and logs (default: system temp dir)")
	f.BoolVar(&opts.plain, "plain", false, "log progress lines instead of the progress bar")

	_ = root.MarkFlagRequired("mo0")
	_ = root.MarkFlagRequired("mo1")
	_ = root.MarkFlagFilename("orca-plot")
	_ = root.MarkFlagDirname("workdir")

	_ = root.RegisterFlagCompletionFunc("spin", fixedCompletion(spinNames()...))
	_ = root.RegisterFlagCompletionFunc("output", fixedCompletion(formatNames()...))
	_ = root.RegisterFlagCompletionFunc("color", fixedCompletion(theme.Names()...))

	root.AddCommand(c.themeCommand())
	root.AddCommand(c.scriptCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// fixedCompletion completes a flag from a static list of values.
func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

func spinNames() []string {
	names := make([]string, len(orbital.SpinSelections))
	for i, s := range orbital.SpinSelections {
		names[i] = string(s)
	}
	return names
}

func formatNames() []string {
	names := make([]string, len(orbital.OutputFormats))
	for i, f := range orbital.OutputFormats {
		names[i] = string(f)
	}
	return names
}

func joinFormats() string {
	parts := make([]string, len(orbital.OutputFormats))
	for i, f := range orbital.OutputFormats {
		parts[i] = fmt.Sprintf("%s (%d)", f, f.Value())
	}
	return strings.Join(parts, ", ")
}
