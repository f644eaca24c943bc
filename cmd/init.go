package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shyamenk/cmdx/internal/config"
	"github.com/shyamenk/cmdx/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the command store",
	Long: `Initialize the command store.

Creates the configuration directory (~/.config/cmdx) and an empty command
store. Run this once before using other commands.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	cfg := config.Default()
	root, err := cfg.StorePath()
	if err != nil {
		return err
	}

	st := store.New(root)
	if st.Exists() {
		printOK(fmt.Sprintf("Store already initialized at %s", st.Root()))
		return nil
	}

	if err := st.Init(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	cfgPath, err := config.Path()
	if err != nil {
		return err
	}
	printOK(fmt.Sprintf("Initialized cmdx store at %s", st.Root()))
	printOK(fmt.Sprintf("Config created at %s", cfgPath))
	return nil
}
