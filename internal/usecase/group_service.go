package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/kwdash/soccer-analytics/internal/domain/teamgroup"
)

// GroupService wraps the team-group store with input validation. Group
// lifecycle lives outside the analytics core; the core only ever sees the
// snapshot this store produces.
type GroupService struct {
	groupRepo teamgroup.Repository
}

func NewGroupService(groupRepo teamgroup.Repository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

func (s *GroupService) List(ctx context.Context) ([]teamgroup.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.List")
	defer span.End()

	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team groups: %w", err)
	}
	return groups, nil
}

func (s *GroupService) Save(ctx context.Context, group teamgroup.Group) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.Save")
	defer span.End()

	group.Name = strings.TrimSpace(group.Name)
	if group.Name == "" {
		return fmt.Errorf("%w: group name is required", ErrInvalidInput)
	}

	teams := make([]string, 0, len(group.Teams))
	seen := make(map[string]struct{}, len(group.Teams))
	for _, t := range group.Teams {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		teams = append(teams, t)
	}
	if len(teams) == 0 {
		return fmt.Errorf("%w: group needs at least one team", ErrInvalidInput)
	}
	group.Teams = teams

	if err := s.groupRepo.Save(ctx, group); err != nil {
		return fmt.Errorf("save team group: %w", err)
	}
	return nil
}

func (s *GroupService) Delete(ctx context.Context, name string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.Delete")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: group name is required", ErrInvalidInput)
	}
	if err := s.groupRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete team group: %w", err)
	}
	return nil
}
