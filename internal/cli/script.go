package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	moerrors "github.com/anselmoo/moplots/pkg/errors"
	"github.com/anselmoo/moplots/pkg/orbital"
)

// scriptOpts holds the flags for the script command.
type scriptOpts struct {
	orbital int
	spin    string
	grid    int
	format  string
	check   string
}

// scriptCommand creates the script command, which prints the orca_plot
// input for a single orbital without running the renderer.
func (c *CLI) scriptCommand() *cobra.Command {
	opts := scriptOpts{
		spin:   string(orbital.SpinAlpha),
		grid:   defaultGrid,
		format: string(orbital.FormatBinary),
	}

	cmd := &cobra.Command{
		Use:   "script",
		Short: "Print the orca_plot script for one orbital",
		Long: `Print the command script that moplots feeds to orca_plot for one orbital.

The output can be piped into orca_plot by hand:

  moplots script --mo 12 -s beta | orca_plot water.gbw -i

With --check, an existing script (or a moplots-*.inp file left in the work
directory) is decoded instead. Use - to read from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.check != "" {
				return runScriptCheck(cmd, opts.check)
			}
			return runScriptPrint(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.orbital, "mo", 0, "orbital index")
	f.StringVarP(&opts.spin, "spin", "s", opts.spin, "spin channel: alpha, beta")
	f.IntVarP(&opts.grid, "grid", "g", opts.grid, "grid points per axis")
	f.StringVarP(&opts.format, "output", "o", opts.format, "output format: "+joinFormats())
	f.StringVar(&opts.check, "check", "", "decode an existing script file instead of printing one")

	_ = cmd.MarkFlagFilename("check", "inp")
	_ = cmd.RegisterFlagCompletionFunc("spin", fixedCompletion(string(orbital.SpinAlpha), string(orbital.SpinBeta)))
	_ = cmd.RegisterFlagCompletionFunc("output", fixedCompletion(formatNames()...))

	return cmd
}

func runScriptPrint(w io.Writer, opts scriptOpts) error {
	if _, err := orbital.NewRange(opts.orbital, opts.orbital); err != nil {
		return err
	}
	sel, err := orbital.ParseSpinSelection(opts.spin)
	if err != nil {
		return err
	}
	channels := sel.Channels()
	if len(channels) != 1 {
		return moerrors.New(moerrors.ErrCodeInvalidSpin,
			"a script covers one spin channel, use alpha or beta")
	}
	format, err := orbital.ParseOutputFormat(opts.format)
	if err != nil {
		return err
	}
	if err := moerrors.ValidateGrid(opts.grid); err != nil {
		return err
	}

	_, err = io.WriteString(w, orbital.BuildScript(opts.orbital, channels[0], opts.grid, format.Value()))
	return err
}

func runScriptCheck(cmd *cobra.Command, path string) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return moerrors.Wrap(moerrors.ErrCodeFilesystem, err, "read script %s", path)
	}

	s, err := orbital.ParseScript(string(data))
	if err != nil {
		return err
	}

	formatName := fmt.Sprintf("unknown (%d)", s.Format)
	if f, ok := s.OutputFormat(); ok {
		formatName = fmt.Sprintf("%s (%d)", f, s.Format)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "orbital: %d\n", s.Orbital)
	fmt.Fprintf(out, "spin:    %s\n", s.Spin)
	fmt.Fprintf(out, "grid:    %d\n", s.Grid)
	fmt.Fprintf(out, "output:  %s\n", formatName)
	return nil
}
