package automaton

import (
	"sort"
	"strings"
)

// DeadState is the name of the empty state set: the implicit non-accepting sink reached on undefined
// transitions. It is never materialized as a state.
const DeadState = "∅"

// CompositeName returns the canonical name of a set of state identifiers: the members sorted and
// concatenated without separator. The input order is irrelevant and duplicates count once. The empty set
// yields DeadState.
func CompositeName(ids []string) string {
	if len(ids) == 0 {
		return DeadState
	}
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	var sb strings.Builder
	prev := ""
	for i, id := range sorted {
		if i > 0 && id == prev {
			continue
		}
		sb.WriteString(id)
		prev = id
	}
	return sb.String()
}

// setName names a set of state indices of a.
func (a *Automaton) setName(set IndexSet) string {
	return CompositeName(a.names(set.bitmap()))
}
