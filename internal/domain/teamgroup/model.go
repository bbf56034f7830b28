package teamgroup

import "sort"

// Group is a named collection of team names, owned by the persistence layer.
type Group struct {
	Name  string
	Teams []string
}

// Snapshot is a read-only view of every group at one point in time. The
// analytics core receives a fresh snapshot per request and never caches it.
type Snapshot map[string][]string

// Resolve flattens the named groups into a deduplicated, sorted team list.
// Unknown group names are skipped.
func (s Snapshot) Resolve(groupNames []string) []string {
	seen := make(map[string]struct{})
	for _, name := range groupNames {
		for _, t := range s[name] {
			seen[t] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
