package store

import (
	"fmt"
	"strings"
)

// Command is one stored entry: a hierarchical path like "docker/prune",
// the shell command itself, and an optional one-line explanation.
type Command struct {
	Path        string `json:"path"`
	Command     string `json:"command"`
	Explanation string `json:"explanation"`
}

// parseCommand reads the two-line on-disk format:
//
//	line 1: the command (required, non-empty)
//	line 2: the explanation (optional)
func parseCommand(path, content string) (Command, error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 {
		return Command{}, &FormatError{Path: path}
	}

	cmd := strings.TrimSpace(lines[0])
	if cmd == "" {
		return Command{}, &FormatError{Path: path}
	}

	explanation := ""
	if len(lines) > 1 {
		explanation = strings.TrimSpace(lines[1])
	}

	return Command{Path: path, Command: cmd, Explanation: explanation}, nil
}

// fileContent renders the two-line on-disk format.
func (c Command) fileContent() string {
	return fmt.Sprintf("%s\n%s\n", c.Command, c.Explanation)
}

// ValidatePath rejects paths that would escape the store root or collide
// with the directory hierarchy: empty paths, absolute paths, ".." segments,
// and empty segments like "docker//prune".
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return &InvalidPathError{Path: path}
	}
	if strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
		return &InvalidPathError{Path: path}
	}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return &InvalidPathError{Path: path}
		}
	}
	return nil
}
