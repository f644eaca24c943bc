package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shyamenk/cmdx/internal/config"
)

var listCmd = &cobra.Command{
	Use:     "list [prefix]",
	Aliases: []string{"ls"},
	Short:   "List commands (tree view)",
	Long: `List all commands in a tree view.

Optionally filter by path prefix to show only commands under a specific
category.

EXAMPLES:
    cmdx ls                    # List all commands
    cmdx ls docker             # List only docker/* commands
    cmdx ls git/stash          # List only git/stash/* commands`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}

	commands, err := st.List(prefix)
	if err != nil {
		return err
	}
	if len(commands) == 0 {
		printInfo("No commands found.")
		return nil
	}

	paths := make([]string, 0, len(commands))
	for _, c := range commands {
		paths = append(paths, c.Path)
	}

	title := "cmdx"
	if prefix != "" {
		title = "cmdx/" + prefix
	}
	fmt.Println(styleTitle.Render(title))
	renderTree(buildTree(paths), "", treeConnectors(cfg.Display.TreeStyle))
	return nil
}

// treeNode is one level of the rendered hierarchy. Children are stored in
// a map and sorted at render time.
type treeNode struct {
	children map[string]*treeNode
	leaf     bool
}

func newTreeNode() *treeNode {
	return &treeNode{children: make(map[string]*treeNode)}
}

// buildTree folds flat slash-separated paths into a nested tree.
func buildTree(paths []string) *treeNode {
	root := newTreeNode()
	for _, path := range paths {
		node := root
		parts := strings.Split(path, "/")
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = newTreeNode()
				node.children[part] = child
			}
			if i == len(parts)-1 {
				child.leaf = true
			}
			node = child
		}
	}
	return root
}

// connectors holds the branch glyphs for one tree style.
type connectors struct {
	tee, elbow, pipe, blank string
}

func treeConnectors(style string) connectors {
	if style == "ascii" {
		return connectors{tee: "|-- ", elbow: "`-- ", pipe: "|   ", blank: "    "}
	}
	return connectors{tee: "├── ", elbow: "└── ", pipe: "│   ", blank: "    "}
}

func renderTree(node *treeNode, indent string, c connectors) {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		child := node.children[name]
		connector := c.tee
		childIndent := indent + c.pipe
		if i == len(names)-1 {
			connector = c.elbow
			childIndent = indent + c.blank
		}

		label := styleGroup.Render(name)
		if child.leaf {
			label = styleLeaf.Render(name)
		}
		fmt.Println(indent + connector + label)

		if len(child.children) > 0 {
			renderTree(child, childIndent, c)
		}
	}
}
