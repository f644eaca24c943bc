package store

import "testing"

func TestParseCommand(t *testing.T) {
	cmd, err := parseCommand("docker/prune", "docker system prune -af\nRemove all containers\n")
	if err != nil {
		t.Fatalf("parseCommand: %v", err)
	}
	if cmd.Command != "docker system prune -af" {
		t.Fatalf("unexpected command: %q", cmd.Command)
	}
	if cmd.Explanation != "Remove all containers" {
		t.Fatalf("unexpected explanation: %q", cmd.Explanation)
	}
}

func TestParseCommandNoExplanation(t *testing.T) {
	cmd, err := parseCommand("git/status", "git status")
	if err != nil {
		t.Fatalf("parseCommand: %v", err)
	}
	if cmd.Command != "git status" {
		t.Fatalf("unexpected command: %q", cmd.Command)
	}
	if cmd.Explanation != "" {
		t.Fatalf("expected empty explanation, got %q", cmd.Explanation)
	}
}

func TestParseCommandInvalid(t *testing.T) {
	for _, content := range []string{"", "\n", "   \nexplanation"} {
		if _, err := parseCommand("x", content); err == nil {
			t.Fatalf("content %q should be rejected", content)
		}
	}
}

func TestFileContentRoundTrip(t *testing.T) {
	in := Command{Path: "k8s/pods", Command: "kubectl get pods -A", Explanation: "List all pods"}
	out, err := parseCommand(in.Path, in.fileContent())
	if err != nil {
		t.Fatalf("parseCommand: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestValidatePath(t *testing.T) {
	valid := []string{"docker/prune", "git/stash/pop", "single"}
	for _, p := range valid {
		if err := ValidatePath(p); err != nil {
			t.Fatalf("ValidatePath(%q) = %v, want nil", p, err)
		}
	}

	invalid := []string{"", "  ", "/abs", "trailing/", "a//b", "../escape", "a/../b", "a/./b"}
	for _, p := range invalid {
		if err := ValidatePath(p); err == nil {
			t.Fatalf("ValidatePath(%q) should fail", p)
		}
	}
}
