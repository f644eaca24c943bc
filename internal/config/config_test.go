package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Core.DefaultAction != "copy" {
		t.Fatalf("default action = %q, want copy", cfg.Core.DefaultAction)
	}
	if !cfg.Display.Color {
		t.Fatal("color should default to true")
	}
	if cfg.Clipboard.Tool != "auto" {
		t.Fatalf("clipboard tool = %q, want auto", cfg.Clipboard.Tool)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("relies on XDG_CONFIG_HOME")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir := filepath.Join(base, "cmdx")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "core:\n  default_action: run\ndisplay:\n  color: true\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Core.DefaultAction != "run" {
		t.Fatalf("default action = %q, want run", cfg.Core.DefaultAction)
	}
	if cfg.Core.Shell != "bash" {
		t.Fatalf("shell should keep its default, got %q", cfg.Core.Shell)
	}
	if cfg.Display.TreeStyle != "unicode" {
		t.Fatalf("tree style should keep its default, got %q", cfg.Display.TreeStyle)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Default()
	want.Core.DefaultAction = "show"
	want.Clipboard.Tool = "xclip"
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Core.DefaultAction != "show" || got.Clipboard.Tool != "xclip" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}

	got, err := ExpandPath("~/.config/cmdx/store")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	want := filepath.Join(home, ".config", "cmdx", "store")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}

	got, err = ExpandPath("/absolute/path")
	if err != nil || got != "/absolute/path" {
		t.Fatalf("absolute paths must pass through, got %q, %v", got, err)
	}
}
