package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyamenk/cmdx/internal/store"
)

func corpus(cmds ...store.Command) []store.Command {
	return cmds
}

func entry(path, command, explanation string) store.Command {
	return store.Command{Path: path, Command: command, Explanation: explanation}
}

func TestRank_RequiresSubsequence(t *testing.T) {
	c := corpus(
		entry("docker/prune", "docker system prune -af --volumes", "Remove unused containers"),
		entry("docker/logs/follow", "docker logs -f", "Follow container logs"),
	)

	matches := Rank("prune", c)
	require.Len(t, matches, 1)
	assert.Equal(t, "docker/prune", matches[0].Entry.Path)
	assert.Equal(t, FieldPath, matches[0].Field)
	assert.Greater(t, matches[0].Score, 0)
}

func TestRank_SortedByScoreThenPath(t *testing.T) {
	c := corpus(
		entry("docker/prune", "docker system prune -af", ""),
		entry("docker/cleanup", "docker system prune -af", ""),
		entry("git/status", "git status", ""),
	)

	matches := Rank("docker", c)
	require.Len(t, matches, 2)

	// Identical prefix matches score the same; the tie breaks on path.
	assert.Equal(t, "docker/cleanup", matches[0].Entry.Path)
	assert.Equal(t, "docker/prune", matches[1].Entry.Path)
	assert.Equal(t, matches[0].Score, matches[1].Score)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}

func TestRank_DeterministicAcrossEnumerationOrder(t *testing.T) {
	a := entry("docker/prune", "docker system prune -af", "Remove unused data")
	b := entry("docker/ps", "docker ps -a", "List containers")
	c := entry("dig/any", "dig +short any", "DNS lookup")

	first := Rank("d", corpus(a, b, c))
	second := Rank("d", corpus(c, b, a))

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Entry.Path, second[i].Entry.Path)
		assert.Equal(t, first[i].Score, second[i].Score)
		assert.Equal(t, first[i].Field, second[i].Field)
	}
}

func TestRank_Idempotent(t *testing.T) {
	c := corpus(
		entry("k8s/pods", "kubectl get pods -A", "List all pods"),
		entry("k8s/nodes", "kubectl get nodes", ""),
	)

	assert.Equal(t, Rank("pods", c), Rank("pods", c))
}

func TestRank_MonotonicityOnBrokenSubsequence(t *testing.T) {
	c := corpus(entry("git/status", "git status", ""))

	require.Len(t, Rank("gst", c), 1)
	assert.Empty(t, Rank("gstz", c), "a query that is no longer a subsequence must drop the entry")
}

func TestRank_EmptyInputs(t *testing.T) {
	assert.Empty(t, Rank("", nil))
	assert.Empty(t, Rank("anything", nil))
	assert.Empty(t, Rank("", corpus(entry("a/b", "x", ""))))
	assert.Empty(t, Rank("   ", corpus(entry("a/b", "x", ""))))
}

func TestRank_CaseInsensitive(t *testing.T) {
	c := corpus(entry("docker/prune", "docker system prune -af", ""))

	assert.Len(t, Rank("PRUNE", c), 1)
	assert.Len(t, Rank("Docker/Prune", c), 1)
}

func TestRank_PathFieldOutweighsCommand(t *testing.T) {
	c := corpus(
		entry("k8s/pods", "kubectl get pods -A", ""),
		entry("misc/watch", "watch kubectl get pods", ""),
	)

	matches := Rank("pods", c)
	require.Len(t, matches, 2)
	assert.Equal(t, "k8s/pods", matches[0].Entry.Path)
	assert.Equal(t, FieldPath, matches[0].Field)
	assert.Equal(t, FieldCommand, matches[1].Field)
}

func TestRank_MatchedFieldRecorded(t *testing.T) {
	c := corpus(entry("net/flush", "ipconfig /flushdns", "clear the dns cache"))

	matches := Rank("cache", c)
	require.Len(t, matches, 1)
	assert.Equal(t, FieldExplanation, matches[0].Field)
}

func TestRank_BoundaryMatchBeatsScattered(t *testing.T) {
	c := corpus(
		entry("docker/prune", "docker system prune -af", ""),
		// "prune" is a scattered subsequence of this path only.
		entry("pkg/runtime-env", "make runtime-env", ""),
	)

	matches := Rank("prune", c)
	require.Len(t, matches, 2)
	assert.Equal(t, "docker/prune", matches[0].Entry.Path)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestResolve_ExactPathBypassesScoring(t *testing.T) {
	c := corpus(
		entry("docker/prune", "docker system prune -af", ""),
		entry("docker/prune-all", "docker system prune -af --volumes", ""),
	)

	got, err := Resolve("docker/prune", c)
	require.NoError(t, err)
	assert.Equal(t, "docker/prune", got.Path)
}

func TestResolve_ExactMatchIsCaseSensitive(t *testing.T) {
	c := corpus(entry("docker/prune", "docker system prune -af", ""))

	// Not an exact hit, but still an unambiguous fuzzy one.
	got, err := Resolve("Docker/Prune", c)
	require.NoError(t, err)
	assert.Equal(t, "docker/prune", got.Path)
}

func TestResolve_AmbiguousSurfacesCandidates(t *testing.T) {
	c := corpus(
		entry("docker/prune", "docker system prune -af", ""),
		entry("docker/prune-all", "docker system prune -af --volumes", ""),
	)

	_, err := Resolve("docker/prun", c)
	var amb *AmbiguousError
	require.ErrorAs(t, err, &amb)
	assert.Len(t, amb.Candidates, 2)
	assert.Equal(t, "docker/prun", amb.Query)
}

func TestResolve_ClearWinner(t *testing.T) {
	c := corpus(
		entry("docker/prune", "docker system prune -af", ""),
		entry("backup/sync", "rsync -av /home /backup", "periodic rsync of home"),
	)

	got, err := Resolve("prune", c)
	require.NoError(t, err)
	assert.Equal(t, "docker/prune", got.Path)
}

func TestResolve_SingleCandidateWins(t *testing.T) {
	c := corpus(
		entry("git/stash/pop", "git stash pop", ""),
		entry("docker/ps", "docker ps -a", ""),
	)

	got, err := Resolve("stash", c)
	require.NoError(t, err)
	assert.Equal(t, "git/stash/pop", got.Path)
}

func TestResolve_NoMatch(t *testing.T) {
	_, err := Resolve("anything", nil)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Resolve("zzzzzz", corpus(entry("git/status", "git status", "")))
	assert.ErrorIs(t, err, ErrNoMatch)
}
