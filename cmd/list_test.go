package cmd

import "testing"

func TestBuildTree(t *testing.T) {
	root := buildTree([]string{
		"docker/logs/follow",
		"docker/prune",
		"git/status",
	})

	docker, ok := root.children["docker"]
	if !ok {
		t.Fatal("missing docker node")
	}
	if docker.leaf {
		t.Fatal("docker is a category, not a leaf")
	}
	if !docker.children["prune"].leaf {
		t.Fatal("docker/prune should be a leaf")
	}
	logs := docker.children["logs"]
	if logs == nil || logs.leaf {
		t.Fatal("docker/logs should be a non-leaf category")
	}
	if !logs.children["follow"].leaf {
		t.Fatal("docker/logs/follow should be a leaf")
	}
	if !root.children["git"].children["status"].leaf {
		t.Fatal("git/status should be a leaf")
	}
}

func TestBuildTreeCategoryThatIsAlsoLeaf(t *testing.T) {
	// "git" is both an entry and a category for "git/status".
	root := buildTree([]string{"git", "git/status"})

	git := root.children["git"]
	if git == nil || !git.leaf {
		t.Fatal("git should be a leaf")
	}
	if !git.children["status"].leaf {
		t.Fatal("git/status should survive under a leaf parent")
	}
}

func TestTreeConnectors(t *testing.T) {
	if c := treeConnectors("ascii"); c.elbow != "`-- " || c.tee != "|-- " {
		t.Fatalf("unexpected ascii connectors: %+v", c)
	}
	if c := treeConnectors("unicode"); c.elbow != "└── " {
		t.Fatalf("unexpected unicode connectors: %+v", c)
	}
	// Unknown styles fall back to unicode.
	if c := treeConnectors(""); c.tee != "├── " {
		t.Fatalf("unexpected default connectors: %+v", c)
	}
}
