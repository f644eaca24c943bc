package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shyamenk/cmdx/internal/config"
)

var showCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Show a command",
	Long: `Display a command and its explanation.

EXAMPLES:
    cmdx show docker/prune
    cmdx show git/stash/pop`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return showPath(cfg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func showPath(cfg *config.Config, path string) error {
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	entry, err := st.Get(path)
	if err != nil {
		return err
	}
	printEntry(entry)
	return nil
}
