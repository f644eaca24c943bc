package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shyamenk/cmdx/internal/config"
	"github.com/shyamenk/cmdx/internal/store"
)

var flagImportForce bool

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import commands from JSON",
	Long: `Import commands from a JSON file produced by 'cmdx export'.

Reads from stdin by default, or from a file given as argument.
Use --force to overwrite existing commands.

EXAMPLES:
    cmdx import commands.json            # Import from file
    cmdx import < backup.json            # Redirect from file
    cmdx import commands.json --force    # Overwrite existing commands`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&flagImportForce, "force", "f", false, "Overwrite existing commands")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	var raw []byte
	if len(args) > 0 {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", args[0], err)
		}
	} else {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("cannot read stdin: %w", err)
		}
	}

	var data exportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if data.Version != exportVersion {
		return fmt.Errorf("unsupported export version: %d", data.Version)
	}

	imported, skipped := 0, 0
	for _, entry := range data.Commands {
		err := st.Add(entry, flagImportForce)
		switch {
		case err == nil:
			fmt.Printf("%s %s\n", styleOK.Render("+"), entry.Path)
			imported++
		case errors.As(err, new(*store.ExistsError)):
			fmt.Printf("%s %s (exists)\n", styleWarn.Render("~"), entry.Path)
			skipped++
		default:
			printErr(fmt.Sprintf("%s: %v", entry.Path, err))
		}
	}

	fmt.Println()
	summary := fmt.Sprintf("Imported %d commands", imported)
	if skipped > 0 {
		summary += fmt.Sprintf(", skipped %d (use --force to overwrite)", skipped)
	}
	printOK(summary)
	return nil
}
