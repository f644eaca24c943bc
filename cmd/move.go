package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shyamenk/cmdx/internal/config"
)

var moveCmd = &cobra.Command{
	Use:     "move <src> <dst>",
	Aliases: []string{"mv"},
	Short:   "Move/rename a command",
	Long: `Move or rename a command.

EXAMPLES:
    cmdx mv docker/prune docker/cleanup    # Rename
    cmdx mv git/stash git/saved            # Move to different category`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

func runMove(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	src, dst := args[0], args[1]
	if err := st.Rename(src, dst); err != nil {
		return err
	}
	printOK(fmt.Sprintf("Moved %s → %s", stylePath.Render(src), stylePath.Render(dst)))
	return nil
}
