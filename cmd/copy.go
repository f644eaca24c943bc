package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shyamenk/cmdx/internal/config"
)

var copyCmd = &cobra.Command{
	Use:     "copy <query>",
	Aliases: []string{"cp"},
	Short:   "Copy a command to the clipboard",
	Long: `Copy a command to the system clipboard.

Supports fuzzy matching: if the exact path is not found, the best
unambiguous match is used. Falls back to printing the command if the
clipboard is unavailable.

The clipboard tool can be configured in ~/.config/cmdx/config.yaml:
    clipboard:
      tool: auto    # auto | wl-copy | xclip | xsel

EXAMPLES:
    cmdx cp docker/prune       # Copy by exact path
    cmdx cp prune              # Fuzzy match, copies best match`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return copyQuery(cfg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

func copyQuery(cfg *config.Config, query string) error {
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	entry, err := resolveQuery(st, query)
	if err != nil {
		return err
	}

	if copyToClipboard(entry.Command, cfg.Clipboard.Tool) {
		printOK(fmt.Sprintf("Copied: %s", stylePath.Render(entry.Path)))
		return nil
	}

	// No clipboard available; printing the command is still useful.
	printWarn("clipboard unavailable, printing instead")
	printEntry(entry)
	return nil
}
