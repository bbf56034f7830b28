package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
)

// MatchRepository keeps the whole corpus in memory, sorted by date.
type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	sorted := make([]match.Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	return &MatchRepository{matches: sorted}
}

func (r *MatchRepository) ListBetween(_ context.Context, from, to time.Time) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		if m.Date.Before(from) || m.Date.After(to) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *MatchRepository) ListTeams(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(r.matches)*2)
	for _, m := range r.matches {
		seen[m.HomeTeam] = struct{}{}
		seen[m.AwayTeam] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		if name != "" {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *MatchRepository) DateBounds(_ context.Context) (time.Time, time.Time, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.matches) == 0 {
		return time.Time{}, time.Time{}, false, nil
	}
	return r.matches[0].Date, r.matches[len(r.matches)-1].Date, true, nil
}
