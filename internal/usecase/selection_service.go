package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
	"github.com/kwdash/soccer-analytics/internal/platform/logging"
)

// teamScopedLister is an optional repository capability that pushes the
// subject's team filter down to storage. Combined subjects match by name
// variant and cannot use it.
type teamScopedLister interface {
	ListBetweenForTeams(ctx context.Context, from, to time.Time, teams []string) ([]match.Match, error)
}

// SelectionService turns the raw corpus into perspective-annotated match sets
// for a subject and date range.
type SelectionService struct {
	matchRepo match.Repository
	logger    *logging.Logger
}

func NewSelectionService(matchRepo match.Repository, logger *logging.Logger) *SelectionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SelectionService{
		matchRepo: matchRepo,
		logger:    logger,
	}
}

// SelectMatches returns every match in the range where the subject plays
// either side, annotated from the subject's perspective, in ascending date
// order. An empty subject yields an empty result, not an error. The home side
// is tested first, so a match between two members of the same group resolves
// to the home perspective.
func (s *SelectionService) SelectMatches(ctx context.Context, subject match.Subject, dateRange match.DateRange) ([]match.PerspectiveMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.SelectMatches")
	defer span.End()

	if subject.Empty() {
		s.logger.DebugContext(ctx, "empty subject, returning no matches", "kind", string(subject.Kind))
		return []match.PerspectiveMatch{}, nil
	}

	rows, err := s.listWindow(ctx, subject, dateRange)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.PerspectiveMatch, 0, len(rows))
	for _, m := range rows {
		switch {
		case subject.MatchesSide(m.HomeTeam):
			out = append(out, match.FromHomePerspective(m))
		case subject.MatchesSide(m.AwayTeam):
			out = append(out, match.FromAwayPerspective(m))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	s.logger.DebugContext(ctx, "selected matches",
		"subject", subject.Name,
		"kind", string(subject.Kind),
		"matches", len(out),
	)

	return out, nil
}

func (s *SelectionService) listWindow(ctx context.Context, subject match.Subject, dateRange match.DateRange) ([]match.Match, error) {
	if scoped, ok := s.matchRepo.(teamScopedLister); ok {
		switch subject.Kind {
		case match.SubjectTeam:
			return scoped.ListBetweenForTeams(ctx, dateRange.Start, dateRange.End, []string{subject.Name})
		case match.SubjectGroup:
			return scoped.ListBetweenForTeams(ctx, dateRange.Start, dateRange.End, subject.Teams)
		}
	}
	return s.matchRepo.ListBetween(ctx, dateRange.Start, dateRange.End)
}
