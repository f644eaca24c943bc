package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/shyamenk/cmdx/internal/config"
	"github.com/shyamenk/cmdx/internal/match"
	"github.com/shyamenk/cmdx/internal/store"
)

var pickCmd = &cobra.Command{
	Use:     "pick [query]",
	Aliases: []string{"s"},
	Short:   "Interactive command picker",
	Long: `Interactive picker for commands.

Opens a selector over all stored commands; type to filter the list. An
optional query argument narrows the list with fuzzy matching first. The
selected command is copied to the clipboard.

EXAMPLES:
    cmdx pick          # Pick from all commands
    cmdx pick docker   # Pick from fuzzy matches for 'docker'
    cmdx s             # Same as pick (alias)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	corpus, err := st.List("")
	if err != nil {
		return err
	}
	if len(corpus) == 0 {
		printInfo("No commands found. Add some with 'cmdx add'.")
		return nil
	}

	candidates := corpus
	if len(args) > 0 {
		matches := match.Rank(args[0], corpus)
		if len(matches) == 0 {
			printErr(fmt.Sprintf("No matches for %q", args[0]))
			return nil
		}
		candidates = make([]store.Command, 0, len(matches))
		for _, m := range matches {
			candidates = append(candidates, m.Entry)
		}
	}

	byPath := make(map[string]store.Command, len(candidates))
	options := make([]huh.Option[string], 0, len(candidates))
	for _, c := range candidates {
		byPath[c.Path] = c
		options = append(options, huh.NewOption(fmt.Sprintf("%s  —  %s", c.Path, c.Command), c.Path))
	}

	var selected string
	err = huh.NewSelect[string]().
		Title("Pick a command").
		Options(options...).
		Height(15).
		Value(&selected).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	entry := byPath[selected]
	if copyToClipboard(entry.Command, cfg.Clipboard.Tool) {
		printOK(fmt.Sprintf("Copied: %s", stylePath.Render(entry.Path)))
		return nil
	}
	printEntry(entry)
	return nil
}
