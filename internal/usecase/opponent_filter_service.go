package usecase

import (
	"context"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
	"github.com/kwdash/soccer-analytics/internal/domain/team"
	"github.com/kwdash/soccer-analytics/internal/domain/teamgroup"
	"github.com/kwdash/soccer-analytics/internal/platform/logging"
)

type OpponentFilterMode string

const (
	FilterAll        OpponentFilterMode = "all"
	FilterSpecific   OpponentFilterMode = "specific"
	FilterTeamGroups OpponentFilterMode = "team_groups"
	FilterWorthy     OpponentFilterMode = "worthy"
)

// OpponentFilterParams carries the per-mode inputs. Groups resolves against
// Snapshot, which the caller supplies fresh per request.
type OpponentFilterParams struct {
	Opponents []string
	Groups    []string
	Threshold float64
	Snapshot  teamgroup.Snapshot
}

type OpponentFilterResult struct {
	Matches []match.PerspectiveMatch
	// Opponents is the opponent set the filter actually applied; empty for
	// mode "all".
	Opponents []string
	// ShowAnalysis is computed purely from the final filtered count.
	ShowAnalysis bool
}

// OpponentFilterService narrows a perspective match set to matches against a
// chosen opponent set.
type OpponentFilterService struct {
	competitiveness *CompetitivenessService
	logger          *logging.Logger
}

func NewOpponentFilterService(competitiveness *CompetitivenessService, logger *logging.Logger) *OpponentFilterService {
	if logger == nil {
		logger = logging.Default()
	}
	return &OpponentFilterService{
		competitiveness: competitiveness,
		logger:          logger,
	}
}

func (s *OpponentFilterService) Filter(ctx context.Context, matches []match.PerspectiveMatch, mode OpponentFilterMode, params OpponentFilterParams) (OpponentFilterResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OpponentFilterService.Filter")
	defer span.End()

	filtered := matches
	var opponents []string

	switch mode {
	case FilterAll, "":
		// Identity.

	case FilterSpecific:
		if hasSelection(params.Opponents) && len(filtered) > 0 {
			opponents = params.Opponents
			filtered = filterByOpponents(filtered, opponents)
		}

	case FilterTeamGroups:
		if len(params.Groups) > 0 && len(filtered) > 0 {
			opponents = params.Snapshot.Resolve(params.Groups)
			if len(opponents) == 0 {
				filtered = []match.PerspectiveMatch{}
			} else {
				filtered = filterByOpponents(filtered, opponents)
			}
		}

	case FilterWorthy:
		if len(filtered) > 0 {
			if overridesClassification(params.Opponents) {
				opponents = params.Opponents
			} else {
				opponents = s.competitiveness.ClassifyWorthy(ctx, filtered, params.Threshold)
			}
			if len(opponents) == 0 {
				filtered = []match.PerspectiveMatch{}
			} else {
				filtered = filterByOpponents(filtered, opponents)
			}
		}

	default:
		return OpponentFilterResult{}, ErrInvalidInput
	}

	s.logger.DebugContext(ctx, "applied opponent filter",
		"mode", string(mode),
		"opponents", len(opponents),
		"matches_in", len(matches),
		"matches_out", len(filtered),
	)

	return OpponentFilterResult{
		Matches:      filtered,
		Opponents:    opponents,
		ShowAnalysis: len(filtered) > 0,
	}, nil
}

// hasSelection reports whether the selection contains anything meaningful; a
// selection made up entirely of empty strings counts as no selection.
func hasSelection(opponents []string) bool {
	for _, o := range opponents {
		if o != "" {
			return true
		}
	}
	return false
}

// overridesClassification reports whether a manual selection replaces the
// automatic worthy classification. Any empty entry invalidates the whole
// selection and automatic classification applies instead.
func overridesClassification(opponents []string) bool {
	if len(opponents) == 0 {
		return false
	}
	for _, o := range opponents {
		if o == "" {
			return false
		}
	}
	return true
}

// filterByOpponents keeps matches whose opponent matches the selection by
// exact name. When the exact pass finds fewer matches than there are distinct
// normalized targets, matches found via normalized-name comparison are
// unioned in to absorb name-variant drift.
func filterByOpponents(matches []match.PerspectiveMatch, opponents []string) []match.PerspectiveMatch {
	if len(matches) == 0 || len(opponents) == 0 {
		return matches
	}

	exact := make(map[string]struct{}, len(opponents))
	for _, o := range opponents {
		exact[o] = struct{}{}
	}
	normalized := team.NormalizeAll(opponents)

	keep := make([]bool, len(matches))
	exactHits := 0
	for i, m := range matches {
		if _, ok := exact[m.OpponentTeam]; ok {
			keep[i] = true
			exactHits++
		}
	}

	if exactHits < len(normalized) {
		for i, m := range matches {
			if keep[i] {
				continue
			}
			if _, ok := normalized[team.NormalizeName(m.OpponentTeam)]; ok {
				keep[i] = true
			}
		}
	}

	out := make([]match.PerspectiveMatch, 0, len(matches))
	for i, m := range matches {
		if keep[i] {
			out = append(out, m)
		}
	}
	return out
}
