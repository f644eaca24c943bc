package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shyamenk/cmdx/internal/config"
	"github.com/shyamenk/cmdx/internal/store"
)

// exportVersion guards the interchange format between machines.
const exportVersion = 1

// exportData is the portable JSON envelope written by export and read
// back by import.
type exportData struct {
	Version  int             `json:"version"`
	Commands []store.Command `json:"commands"`
}

var flagExportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all commands to JSON",
	Long: `Export all commands to a portable JSON file.

Use this to back up your commands or transfer them to another machine.
Output goes to stdout by default, or to a file with --output.

EXAMPLES:
    cmdx export                          # Print JSON to stdout
    cmdx export -o commands.json         # Save to file
    cmdx export > backup.json            # Redirect to file`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Output file (prints to stdout if omitted)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	commands, err := st.List("")
	if err != nil {
		return err
	}
	if len(commands) == 0 {
		printWarn("No commands to export")
		return nil
	}

	data, err := json.MarshalIndent(exportData{Version: exportVersion, Commands: commands}, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize commands: %w", err)
	}
	data = append(data, '\n')

	if flagExportOutput == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(flagExportOutput, data, 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", flagExportOutput, err)
	}
	printOK(fmt.Sprintf("Exported %d commands to %s", len(commands), flagExportOutput))
	return nil
}
