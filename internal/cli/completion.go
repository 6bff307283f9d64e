package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// shells maps each supported shell to its completion generator.
var shells = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for moplots.

Completion knows the orbital file types and the fixed flag values:

  moplots --mo0 10 --mo1 15 <TAB>     lists *.gbw, *.qro, *.uno, *.uco
  moplots -s <TAB>                    alpha  beta  both
  moplots -o <TAB>                    BINARY  ASCII  CUBE
  moplots -c <TAB>                    dracula  material  monokai  nord ...
  moplots theme set <TAB>             the same theme names

Load it for the current session:

  bash:        source <(moplots completion bash)
  zsh:         source <(moplots completion zsh)
  fish:        moplots completion fish | source
  powershell:  moplots completion powershell | Out-String | Invoke-Expression

To keep it, write the script where your shell loads completions from, e.g.
  moplots completion zsh > "${fpath[1]}/_moplots"
  moplots completion fish > ~/.config/fish/completions/moplots.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return shells[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}
