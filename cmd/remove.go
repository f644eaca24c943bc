package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/shyamenk/cmdx/internal/config"
)

var flagRemoveForce bool

var removeCmd = &cobra.Command{
	Use:     "remove <path>",
	Aliases: []string{"rm"},
	Short:   "Remove a command",
	Long: `Remove a command from the store.

Prompts for confirmation unless --force is specified.

EXAMPLES:
    cmdx rm docker/prune       # Prompts for confirmation
    cmdx rm docker/prune -f    # Skip confirmation`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&flagRemoveForce, "force", "f", false, "Skip confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	path := args[0]
	entry, err := st.Get(path)
	if err != nil {
		return err
	}

	if !flagRemoveForce {
		ok := false
		if err := huh.NewConfirm().
			Title(fmt.Sprintf("Remove %s?", entry.Path)).
			Description(entry.Command).
			Value(&ok).
			Run(); err != nil {
			return err
		}
		if !ok {
			printInfo("Cancelled.")
			return nil
		}
	}

	if err := st.Remove(path); err != nil {
		return err
	}
	printOK(fmt.Sprintf("Removed %s", stylePath.Render(path)))
	return nil
}
