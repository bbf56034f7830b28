package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/kwdash/soccer-analytics/internal/domain/teamgroup"
)

type TeamGroupRepository struct {
	mu     sync.RWMutex
	groups map[string][]string
}

func NewTeamGroupRepository(groups []teamgroup.Group) *TeamGroupRepository {
	byName := make(map[string][]string, len(groups))
	for _, g := range groups {
		byName[g.Name] = append([]string(nil), g.Teams...)
	}
	return &TeamGroupRepository{groups: byName}
}

func (r *TeamGroupRepository) Snapshot(_ context.Context) (teamgroup.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(teamgroup.Snapshot, len(r.groups))
	for name, teams := range r.groups {
		snapshot[name] = append([]string(nil), teams...)
	}
	return snapshot, nil
}

func (r *TeamGroupRepository) List(_ context.Context) ([]teamgroup.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]teamgroup.Group, 0, len(r.groups))
	for name, teams := range r.groups {
		out = append(out, teamgroup.Group{
			Name:  name,
			Teams: append([]string(nil), teams...),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *TeamGroupRepository) Save(_ context.Context, group teamgroup.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.groups[group.Name] = append([]string(nil), group.Teams...)
	return nil
}

func (r *TeamGroupRepository) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.groups, name)
	return nil
}
