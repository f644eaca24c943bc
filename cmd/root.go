package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shyamenk/cmdx/internal/config"
	"github.com/shyamenk/cmdx/internal/match"
	"github.com/shyamenk/cmdx/internal/store"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:          "cmdx [path]",
	Short:        "Your command memory, without memorization",
	SilenceUsage: true, // don't print usage on operational errors
	Args:         cobra.MaximumNArgs(1),
	Long: `cmdx is a CLI-first command memory manager that lets you save, organize,
and quickly recall commands you use frequently. Commands are stored in a
hierarchical structure (like pass) and can be searched using fuzzy matching.

QUICK START:
    cmdx init                                    # Initialize the store
    cmdx add docker/prune "docker system prune -af" -e "Remove unused containers"
    cmdx ls                                      # List all commands
    cmdx cp docker/prune                         # Copy to clipboard
    cmdx run docker/prune                        # Execute the command

Invoking cmdx with a bare path ("cmdx docker/prune") performs the default
action from the config file: copy, run or show.

Config file:    ~/.config/cmdx/config.yaml
Command store:  ~/.config/cmdx/store/`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
		setupColor()
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", styleErr.Render("error:"), err)
		os.Exit(1)
	}
}

// runRoot handles bare-path invocations like "cmdx docker/prune" by
// dispatching to the configured default action.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch cfg.Core.DefaultAction {
	case "run":
		return runQuery(cfg, args[0], false)
	case "show":
		return showPath(cfg, args[0])
	default:
		return copyQuery(cfg, args[0])
	}
}

// openStore loads the store named by the config and verifies it exists.
func openStore(cfg *config.Config) (*store.Store, error) {
	root, err := cfg.StorePath()
	if err != nil {
		return nil, err
	}
	st := store.New(root)
	if !st.Exists() {
		return nil, store.ErrNotInitialized
	}
	return st, nil
}

// resolveQuery resolves a query to exactly one entry, printing the
// candidate list first when the query is ambiguous.
func resolveQuery(st *store.Store, query string) (store.Command, error) {
	if strings.TrimSpace(query) == "" {
		return store.Command{}, errors.New("query cannot be empty")
	}

	corpus, err := st.List("")
	if err != nil {
		return store.Command{}, err
	}
	log.Debug("loaded corpus", "entries", len(corpus))

	entry, err := match.Resolve(query, corpus)
	if err != nil {
		var amb *match.AmbiguousError
		if errors.As(err, &amb) {
			printWarn(fmt.Sprintf("%q matches several commands:", query))
			printCandidates(amb.Candidates, 10)
			return store.Command{}, errors.New("refine the query to a single command")
		}
		return store.Command{}, err
	}
	log.Debug("resolved query", "query", query, "path", entry.Path)
	return entry, nil
}
