package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/shyamenk/cmdx/internal/config"
	"github.com/shyamenk/cmdx/internal/match"
	"github.com/shyamenk/cmdx/internal/store"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// All commands use these functions to ensure consistent icon usage and
// styling throughout cmdx's CLI output.
//
// Icon semantics:
//   ✓  success
//   ✗  error / failure          (written to stderr)
//   ⚠  warning / ambiguity
//   ~  neutral info / state change
//   →  explanation line

var (
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleErr   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	stylePath  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	styleGroup = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleLeaf  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleCmd   = lipgloss.NewStyle().Bold(true)
	styleDim   = lipgloss.NewStyle().Faint(true)
)

// setupColor drops to plain output when the user or the environment asks
// for it: NO_COLOR, a non-terminal stdout, or display.color=false.
func setupColor() {
	if os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	if cfg, err := config.Load(); err == nil && !cfg.Display.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func printOK(msg string) {
	fmt.Printf("%s %s\n", styleOK.Render("✓"), msg)
}

func printErr(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleErr.Render("✗"), msg)
}

func printWarn(msg string) {
	fmt.Printf("%s %s\n", styleWarn.Render("⚠"), msg)
}

func printInfo(msg string) {
	fmt.Printf("%s %s\n", styleDim.Render("~"), msg)
}

// printEntry shows one entry in the canonical path/command/explanation form.
func printEntry(c store.Command) {
	fmt.Println(stylePath.Render(c.Path))
	fmt.Println(styleCmd.Render(c.Command))
	if c.Explanation != "" {
		fmt.Printf("%s %s\n", styleDim.Render("→"), styleDim.Render(c.Explanation))
	}
}

// printCandidates lists ranked matches, at most limit of them.
func printCandidates(matches []match.Match, limit int) {
	for i, m := range matches {
		if limit > 0 && i >= limit {
			fmt.Println(styleDim.Render(fmt.Sprintf("  … and %d more", len(matches)-limit)))
			break
		}
		fmt.Printf("%s %s\n", stylePath.Render(fmt.Sprintf("%-24s", m.Entry.Path)), m.Entry.Command)
		if m.Entry.Explanation != "" {
			fmt.Printf("%-24s %s %s\n", "", styleDim.Render("→"), styleDim.Render(m.Entry.Explanation))
		}
	}
}
