package cmd

import (
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
)

// copyToClipboard places text on the system clipboard and reports whether
// it worked. With tool=auto the native clipboard library is tried first,
// then the common external helpers; a named tool is used exclusively.
func copyToClipboard(text, tool string) bool {
	switch tool {
	case "wl-copy":
		return pipeTo(text, "wl-copy")
	case "xclip":
		return pipeTo(text, "xclip", "-selection", "clipboard")
	case "xsel":
		return pipeTo(text, "xsel", "--clipboard", "--input")
	default:
		if err := clipboard.WriteAll(text); err == nil {
			return true
		}
		return pipeTo(text, "wl-copy") ||
			pipeTo(text, "xclip", "-selection", "clipboard") ||
			pipeTo(text, "xsel", "--clipboard", "--input")
	}
}

// pipeTo feeds text to an external clipboard helper over stdin.
func pipeTo(text, name string, args ...string) bool {
	if _, err := exec.LookPath(name); err != nil {
		return false
	}
	c := exec.Command(name, args...)
	c.Stdin = strings.NewReader(text)
	if err := c.Run(); err != nil {
		log.Debug("clipboard helper failed", "tool", name, "err", err)
		return false
	}
	return true
}
