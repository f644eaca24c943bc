package match

import (
	"errors"
	"fmt"

	"github.com/shyamenk/cmdx/internal/store"
)

// ErrNoMatch is returned by Resolve when no entry clears the relevance
// floor. An empty corpus resolves to this, not to a failure.
var ErrNoMatch = errors.New("no matching command found")

// AmbiguousError is returned by Resolve when several entries score too
// close together to pick one safely. Candidates holds the full ranked
// list so the caller can show it and let the user refine the query.
type AmbiguousError struct {
	Query      string
	Candidates []Match
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous query %q matches %d commands", e.Query, len(e.Candidates))
}

// resolveMargin is how far the top score must clear the runner-up before
// Resolve commits to it. Picking the wrong command silently is a safety
// hazard when the result may be executed, so close calls are surfaced as
// ambiguous instead.
const resolveMargin = 20

// Resolve picks the single entry a query refers to.
//
// An exact, case-sensitive path match wins immediately without any
// scoring, so full hierarchical paths like "docker/prune" always resolve
// deterministically. Otherwise the corpus is ranked and the top match is
// accepted only when it beats the runner-up by resolveMargin.
func Resolve(query string, corpus []store.Command) (store.Command, error) {
	for _, c := range corpus {
		if c.Path == query {
			return c, nil
		}
	}

	ranked := Rank(query, corpus)
	switch {
	case len(ranked) == 0:
		return store.Command{}, ErrNoMatch
	case len(ranked) == 1:
		return ranked[0].Entry, nil
	case ranked[0].Score-ranked[1].Score >= resolveMargin:
		return ranked[0].Entry, nil
	default:
		return store.Command{}, &AmbiguousError{Query: query, Candidates: ranked}
	}
}
