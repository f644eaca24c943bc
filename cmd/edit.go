package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/shyamenk/cmdx/internal/config"
)

var editCmd = &cobra.Command{
	Use:   "edit <path>",
	Short: "Edit a command in $EDITOR",
	Long: `Open a command file in your default editor ($EDITOR).

The file format is plain text:
    Line 1: The command itself
    Line 2: Single-line explanation (optional)

EXAMPLES:
    cmdx edit docker/prune
    EDITOR=vim cmdx edit git/stash/pop`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	path := args[0]
	if _, err := st.Get(path); err != nil {
		return err
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vi"
	}

	printInfo(fmt.Sprintf("Opening %s in %s", stylePath.Render(path), editor))

	c := exec.Command(editor, st.FilePath(path))
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	// Re-parse so a broken edit is reported immediately.
	if _, err := st.Get(path); err != nil {
		return err
	}
	printOK(fmt.Sprintf("Updated %s", stylePath.Render(path)))
	return nil
}
