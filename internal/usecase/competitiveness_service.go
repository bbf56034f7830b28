package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
	"github.com/kwdash/soccer-analytics/internal/domain/team"
	"github.com/kwdash/soccer-analytics/internal/platform/logging"
)

const (
	competitivenessLossWeight   = 0.7
	competitivenessMarginWeight = 0.3

	// DefaultWorthyThreshold matches the dashboard's slider default.
	DefaultWorthyThreshold = 30.0
)

// CompetitivenessService scores opponents and decides which qualify as worthy
// adversaries.
type CompetitivenessService struct {
	logger *logging.Logger
}

func NewCompetitivenessService(logger *logging.Logger) *CompetitivenessService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CompetitivenessService{logger: logger}
}

// CompetitivenessScore blends loss rate (70%) with an inverted, capped average
// goal margin (30%) into a 0-100 score. Matches without a result count toward
// the loss-rate denominator but are excluded from the margin mean.
func (s *CompetitivenessService) CompetitivenessScore(matches []match.PerspectiveMatch) float64 {
	if len(matches) == 0 {
		return 0
	}

	losses := 0
	marginSum := 0.0
	decided := 0
	for _, m := range matches {
		if m.Result == match.ResultLoss {
			losses++
		}
		if m.Decided() && m.TeamScore != nil && m.OpponentScore != nil {
			marginSum += math.Abs(float64(*m.TeamScore - *m.OpponentScore))
			decided++
		}
	}

	lossRate := float64(losses) / float64(len(matches))
	lossFactor := lossRate * 100

	avgMargin := 0.0
	if decided > 0 {
		avgMargin = marginSum / float64(decided)
	}
	marginFactor := math.Max(0, 100-math.Min(avgMargin*20, 100))

	return lossFactor*competitivenessLossWeight + marginFactor*competitivenessMarginWeight
}

// ClassifyWorthy returns the opponents that qualify as worthy adversaries at
// the given threshold, as display names sorted alphabetically. An opponent is
// worthy when it has ever beaten the subject, when its name is a Key West
// spelling, or when its competitiveness score clears the threshold.
func (s *CompetitivenessService) ClassifyWorthy(ctx context.Context, matches []match.PerspectiveMatch, threshold float64) []string {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitivenessService.ClassifyWorthy")
	defer span.End()

	if len(matches) == 0 {
		return []string{}
	}

	groups := groupByOpponent(ctx, s.logger, matches)

	worthy := make([]string, 0, len(groups))
	for _, g := range groups {
		if isWorthy(g, threshold, s) {
			worthy = append(worthy, g.displayName)
		}
	}
	sort.Strings(worthy)

	s.logger.DebugContext(ctx, "classified worthy opponents",
		"threshold", threshold,
		"opponents", len(groups),
		"worthy", len(worthy),
	)

	return worthy
}

func isWorthy(g opponentGroup, threshold float64, s *CompetitivenessService) bool {
	for _, m := range g.matches {
		if m.Result == match.ResultLoss {
			return true
		}
	}
	if team.IsKeyWestName(g.displayName) {
		return true
	}
	return s.CompetitivenessScore(g.matches) >= threshold
}

type opponentGroup struct {
	displayName string
	matches     []match.PerspectiveMatch
}

// groupByOpponent groups by normalized opponent name. The first-seen original
// spelling becomes the display name; later distinct spellings of the same
// normalized key are logged rather than silently folded in.
func groupByOpponent(ctx context.Context, logger *logging.Logger, matches []match.PerspectiveMatch) []opponentGroup {
	index := make(map[string]int)
	groups := make([]opponentGroup, 0)

	for _, m := range matches {
		key := team.NormalizeName(m.OpponentTeam)
		if key == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, opponentGroup{displayName: m.OpponentTeam})
			i = len(groups) - 1
		} else if groups[i].displayName != m.OpponentTeam {
			logger.DebugContext(ctx, "opponent name variant folded into first-seen spelling",
				"display", groups[i].displayName,
				"variant", m.OpponentTeam,
			)
		}
		groups[i].matches = append(groups[i].matches, m)
	}

	return groups
}
