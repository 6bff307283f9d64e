package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	moerrors "github.com/anselmoo/moplots/pkg/errors"
	"github.com/anselmoo/moplots/pkg/theme"
)

// themeCommand creates the theme management command.
func (c *CLI) themeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "List, preview and select color themes",
	}

	cmd.AddCommand(c.themeListCommand())
	cmd.AddCommand(c.themeShowCommand())
	cmd.AddCommand(c.themeSetCommand())

	return cmd
}

// themeListCommand creates the "theme list" subcommand.
func (c *CLI) themeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := c.currentTheme(cmd)
			out := cmd.OutOrStdout()
			for _, name := range theme.Names() {
				marker := "  "
				if name == current {
					marker = ui.iconSuccess.Render(iconSuccess) + " "
				}
				fmt.Fprintf(out, "%s%-16s %s\n", marker, name, renderSwatch(theme.LookupOrDefault(name)))
			}
			return nil
		},
	}
}

// themeShowCommand creates the "theme show" subcommand.
func (c *CLI) themeShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "show [name]",
		Short:             "Show the colors of a theme (default: the stored theme)",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: fixedCompletion(theme.Names()...),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := c.currentTheme(cmd)
			if len(args) == 1 {
				name = args[0]
			}
			p, err := theme.Lookup(name)
			if err != nil {
				return err
			}
			applyTheme(p)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.title.Render(theme.Normalize(name)))
			for _, row := range [][2]string{
				{"background", p.Background},
				{"current line", p.CurrentLine},
				{"foreground", p.Foreground},
				{"comment", p.Comment},
				{"cyan", p.Cyan},
				{"green", p.Green},
				{"orange", p.Orange},
				{"pink", p.Pink},
				{"purple", p.Purple},
				{"red", p.Red},
				{"yellow", p.Yellow},
			} {
				fmt.Fprintf(out, "  %-14s %s %s\n", row[0], swatch(row[1]), row[1])
			}
			return nil
		},
	}
}

// themeSetCommand creates the "theme set" subcommand.
func (c *CLI) themeSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "set <name>",
		Short:             "Store the theme used by later runs",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: fixedCompletion(theme.Names()...),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.configStore()
			if err != nil {
				return err
			}
			cfg, err := store.SetTheme(args[0])
			if err != nil {
				return err
			}
			applyTheme(theme.LookupOrDefault(cfg.Theme))
			printSuccess("Theme set to %s", cfg.Theme)
			printDetail("Config: %s", store.Path())
			printNextStep("Preview", appName+" theme show")
			return nil
		},
	}
}

// currentTheme returns the stored theme, or the default if the config
// cannot be read.
func (c *CLI) currentTheme(cmd *cobra.Command) string {
	store, err := c.configStore()
	if err != nil {
		return theme.Default
	}
	cfg, err := store.Load()
	if err != nil {
		loggerFromContext(cmd.Context()).Warn("config unavailable", "err", moerrors.UserMessage(err))
		return theme.Default
	}
	return cfg.Theme
}
