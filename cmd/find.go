package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shyamenk/cmdx/internal/config"
	"github.com/shyamenk/cmdx/internal/match"
)

var flagFindLimit int

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Fuzzy search commands",
	Long: `Search for commands using fuzzy matching.

Matches against the command path, the command itself and the explanation;
path matches rank highest. Returns the best matches first.

EXAMPLES:
    cmdx find prune            # Find commands matching 'prune'
    cmdx find "git stash"      # Find commands matching 'git stash'
    cmdx find pods             # Find kubernetes pod commands`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().IntVarP(&flagFindLimit, "limit", "n", 10, "Maximum number of results to show")
	rootCmd.AddCommand(findCmd)
}

func runFind(_ *cobra.Command, args []string) error {
	query := strings.TrimSpace(args[0])
	if query == "" {
		return errors.New("query cannot be empty")
	}

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

	matches := match.Rank(query, corpus)
	log.Debug("ranked corpus", "query", query, "entries", len(corpus), "matches", len(matches))

	if len(matches) == 0 {
		printErr(fmt.Sprintf("No matches for %q", query))
		return nil
	}

	printCandidates(matches, flagFindLimit)
	return nil
}
