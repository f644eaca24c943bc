// Package match ranks stored commands against a partial query using
// case-insensitive subsequence matching. Every character of the query must
// appear in a field in order for that field to match at all; contiguous
// runs and word-boundary hits push a candidate up, scattered matches and
// long leading gaps push it down. The ranking is pure and deterministic:
// the same query over the same set of entries always yields the same
// ordered result.
package match

import (
	"sort"
	"strings"
	"unicode"

	"github.com/shyamenk/cmdx/internal/store"
)

// Field identifies which part of an entry produced its winning score.
type Field int

const (
	FieldPath Field = iota
	FieldCommand
	FieldExplanation
)

func (f Field) String() string {
	switch f {
	case FieldPath:
		return "path"
	case FieldCommand:
		return "command"
	case FieldExplanation:
		return "explanation"
	}
	return "unknown"
}

// Match pairs an entry with its relevance score for one query.
type Match struct {
	Entry store.Command
	Score int
	Field Field
}

// Scoring constants. A successful subsequence match always scores at least
// 1, so scoreFloor excludes exactly the entries where no field contains
// the query as a subsequence.
const (
	scoreFloor = 0

	firstCharBonus        = 15
	boundaryBonus         = 12
	adjacentBonus         = 10
	leadingCharPenalty    = -3
	maxLeadingCharPenalty = -9

	// Field weights: users search primarily by path, then by the command
	// text, and only last by the explanation.
	weightPath        = 3
	weightCommand     = 2
	weightExplanation = 1
)

// Rank scores every entry in the corpus against query and returns the
// matches sorted by score descending, ties broken by path ascending. The
// result is empty when nothing clears the relevance floor.
func Rank(query string, corpus []store.Command) []Match {
	q := []rune(strings.TrimSpace(query))
	if len(q) == 0 {
		return nil
	}

	var out []Match
	for _, c := range corpus {
		m, ok := scoreEntry(q, c)
		if !ok || m.Score <= scoreFloor {
			continue
		}
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score == out[j].Score {
			return out[i].Entry.Path < out[j].Entry.Path
		}
		return out[i].Score > out[j].Score
	})
	return out
}

// scoreEntry returns the best weighted field score for one entry. Fields
// are tried in priority order, so on equal weighted scores the
// higher-priority field wins.
func scoreEntry(query []rune, c store.Command) (Match, bool) {
	fields := []struct {
		text   string
		weight int
		field  Field
	}{
		{c.Path, weightPath, FieldPath},
		{c.Command, weightCommand, FieldCommand},
		{c.Explanation, weightExplanation, FieldExplanation},
	}

	best := Match{Entry: c}
	matched := false
	for _, f := range fields {
		s, ok := scoreField(query, f.text)
		if !ok {
			continue
		}
		weighted := s * f.weight
		if !matched || weighted > best.Score {
			best.Score = weighted
			best.Field = f.field
			matched = true
		}
	}
	return best, matched
}

// scoreField computes the subsequence score of query against one field.
// It reports false when the query is not a subsequence of the field.
//
// Matched characters earn a base point each, plus bonuses for matching the
// field's first character, matching right after a separator or word
// boundary, and extending a contiguous run (the run bonus escalates, so
// long exact substrings dominate scattered hits). Unmatched leading
// characters and gaps inside the matched span are penalized.
func scoreField(query []rune, field string) (int, bool) {
	if field == "" {
		return 0, false
	}

	runes := []rune(field)
	score := 0
	qi := 0
	first := -1
	last := -2
	run := 0

	for i := 0; i < len(runes) && qi < len(query); i++ {
		if !runeFoldEq(runes[i], query[qi]) {
			continue
		}

		score++
		switch {
		case i == 0:
			score += firstCharBonus
		case isBoundary(runes[i-1]):
			score += boundaryBonus
		}
		if i == last+1 {
			run++
			score += adjacentBonus * run
		} else {
			run = 0
		}

		if first < 0 {
			first = i
		}
		last = i
		qi++
	}

	if qi < len(query) {
		return 0, false
	}

	if first > 0 {
		penalty := first * leadingCharPenalty
		if penalty < maxLeadingCharPenalty {
			penalty = maxLeadingCharPenalty
		}
		score += penalty
	}

	// Penalize gaps between matched characters inside the span.
	score -= (last - first + 1) - len(query)

	if score < 1 {
		score = 1
	}
	return score, true
}

// isBoundary reports whether r separates words within a field, so the
// character after it counts as a boundary match.
func isBoundary(r rune) bool {
	return r == '/' || r == ' ' || r == '-' || r == '_' || r == '.' || r == ':'
}

// runeFoldEq compares two runes case-insensitively.
func runeFoldEq(a, b rune) bool {
	return a == b || unicode.ToLower(a) == unicode.ToLower(b)
}
