package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/shyamenk/cmdx/internal/config"
)

var flagRunConfirm bool

var runCmd = &cobra.Command{
	Use:   "run <query>",
	Short: "Execute a command",
	Long: `Execute a stored command.

Supports fuzzy matching: if the exact path is not found, the best
unambiguous match is used. Use --confirm to review the command before
execution.

EXAMPLES:
    cmdx run docker/prune      # Execute immediately
    cmdx run docker/prune -c   # Confirm before executing
    cmdx run prune             # Fuzzy match, runs best match`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runQuery(cfg, args[0], flagRunConfirm)
	},
}

func init() {
	runCmd.Flags().BoolVarP(&flagRunConfirm, "confirm", "c", false, "Show command and confirm before executing")
	rootCmd.AddCommand(runCmd)
}

func runQuery(cfg *config.Config, query string, confirm bool) error {
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	entry, err := resolveQuery(st, query)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", styleDim.Render("Running:"), styleCmd.Render(entry.Command))

	if confirm {
		ok := false
		if err := huh.NewConfirm().
			Title("Execute this command?").
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

	shell := cfg.Core.Shell
	if shell == "" {
		shell = "bash"
	}
	c := exec.Command(shell, "-c", entry.Command)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}
