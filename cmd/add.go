package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shyamenk/cmdx/internal/config"
	"github.com/shyamenk/cmdx/internal/store"
)

var (
	flagAddExplain string
	flagAddForce   bool
)

var addCmd = &cobra.Command{
	Use:   "add <path> [command]",
	Short: "Add a new command",
	Long: `Add a new command to the store.

Commands are organized in a hierarchical path structure using '/' as
separator. If COMMAND is omitted, cmdx prompts for it interactively.

EXAMPLES:
    cmdx add docker/prune "docker system prune -af" -e "Remove unused containers"
    cmdx add git/stash/pop "git stash pop"
    cmdx add k8s/pods "kubectl get pods -A" -e "List all pods"
    cmdx add docker/prune "..." --force          # Overwrite existing`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddExplain, "explain", "e", "", "Single-line explanation of what the command does")
	addCmd.Flags().BoolVarP(&flagAddForce, "force", "f", false, "Overwrite if the command already exists")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	path := args[0]
	if err := store.ValidatePath(path); err != nil {
		return err
	}

	cmdText := ""
	if len(args) > 1 {
		cmdText = strings.TrimSpace(args[1])
	}
	if cmdText == "" {
		cmdText, err = prompt("Command: ")
		if err != nil {
			return err
		}
	}
	if cmdText == "" {
		return fmt.Errorf("command cannot be empty")
	}

	explanation := flagAddExplain
	if !cmd.Flags().Changed("explain") {
		explanation, err = prompt("Explanation: ")
		if err != nil {
			return err
		}
	}

	entry := store.Command{Path: path, Command: cmdText, Explanation: explanation}
	if err := st.Add(entry, flagAddForce); err != nil {
		return err
	}

	printOK(fmt.Sprintf("Added %s", stylePath.Render(path)))
	return nil
}

func prompt(msg string) (string, error) {
	fmt.Print(msg)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
