package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
	"github.com/kwdash/soccer-analytics/internal/domain/team"
	"github.com/kwdash/soccer-analytics/internal/domain/teamgroup"
	"github.com/kwdash/soccer-analytics/internal/platform/logging"
)

const (
	SelectionIndividual = "individual"
	SelectionGroup      = "group"

	defaultLookbackDays = 365
)

// DashboardQuery is one analytics request: a subject, a date range, and an
// opponent filter.
type DashboardQuery struct {
	SelectionType string
	Team          string
	TeamGroup     string
	StartDate     string
	EndDate       string

	OpponentFilter OpponentFilterMode
	Opponents      []string
	OpponentGroups []string
	Threshold      float64
}

// TableRow is one display row of the filtered match list. Matches without
// scores keep their NA marker here even though they contribute nothing to the
// aggregate figures.
type TableRow struct {
	Date     string
	HomeTeam string
	AwayTeam string
	Score    string
	Result   string
	Opponent string
}

// Dashboard is the full derived state for one query.
type Dashboard struct {
	DisplayName          string
	Metrics              Metrics
	Matches              []match.PerspectiveMatch
	Table                []TableRow
	OpponentComparison   []OpponentStats
	OpponentGoalStats    []OpponentStats
	DayStats             []DayStat
	PeriodDayStats       []PeriodDayStat
	OpponentsConsidered  []string
	ShowOpponentAnalysis bool
}

// DashboardService composes the selector, opponent filter, aggregator, and
// temporal analyzer into one request pipeline. It is stateless; the team-group
// snapshot is fetched fresh on every call.
type DashboardService struct {
	selection       *SelectionService
	opponentFilter  *OpponentFilterService
	metrics         *MetricsService
	dayStats        *DayStatsService
	groupRepo       teamgroup.Repository
	logger          *logging.Logger
	now             func() time.Time
}

func NewDashboardService(
	selection *SelectionService,
	opponentFilter *OpponentFilterService,
	metrics *MetricsService,
	dayStats *DayStatsService,
	groupRepo teamgroup.Repository,
	logger *logging.Logger,
) *DashboardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DashboardService{
		selection:      selection,
		opponentFilter: opponentFilter,
		metrics:        metrics,
		dayStats:       dayStats,
		groupRepo:      groupRepo,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *DashboardService) Get(ctx context.Context, q DashboardQuery) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	dateRange, err := s.resolveDateRange(q.StartDate, q.EndDate)
	if err != nil {
		return Dashboard{}, err
	}

	snapshot, err := s.groupRepo.Snapshot(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("load team group snapshot: %w", err)
	}

	subject, displayName := resolveSubject(q, snapshot)

	selected, err := s.selection.SelectMatches(ctx, subject, dateRange)
	if err != nil {
		return Dashboard{}, fmt.Errorf("select matches: %w", err)
	}

	filtered, err := s.opponentFilter.Filter(ctx, selected, q.OpponentFilter, OpponentFilterParams{
		Opponents: q.Opponents,
		Groups:    q.OpponentGroups,
		Threshold: q.Threshold,
		Snapshot:  snapshot,
	})
	if err != nil {
		return Dashboard{}, fmt.Errorf("filter by opponents: %w", err)
	}

	overallDays, periodDays := s.dayStats.DayOfWeekStats(filtered.Matches)

	s.logger.DebugContext(ctx, "dashboard computed",
		"subject", displayName,
		"selected", len(selected),
		"filtered", len(filtered.Matches),
	)

	return Dashboard{
		DisplayName:          displayName,
		Metrics:              s.metrics.Aggregate(filtered.Matches),
		Matches:              filtered.Matches,
		Table:                buildTable(filtered.Matches),
		OpponentComparison:   s.metrics.AggregateByOpponent(filtered.Matches, OpponentSortWinRate),
		OpponentGoalStats:    s.metrics.AggregateByOpponent(filtered.Matches, OpponentSortGoalDifference),
		DayStats:             overallDays,
		PeriodDayStats:       periodDays,
		OpponentsConsidered:  filtered.Opponents,
		ShowOpponentAnalysis: filtered.ShowAnalysis,
	}, nil
}

// resolveDateRange applies the trailing-year default when either bound is
// absent and validates the result.
func (s *DashboardService) resolveDateRange(start, end string) (match.DateRange, error) {
	now := s.now().UTC().Truncate(24 * time.Hour)
	if end == "" {
		end = now.Format("2006-01-02")
	}
	if start == "" {
		start = now.AddDate(0, 0, -defaultLookbackDays).Format("2006-01-02")
	}
	return match.ParseDateRange(start, end)
}

func resolveSubject(q DashboardQuery, snapshot teamgroup.Snapshot) (match.Subject, string) {
	if q.SelectionType == SelectionGroup {
		members, ok := snapshot[q.TeamGroup]
		if !ok || q.TeamGroup == "" {
			return match.GroupSubject(q.TeamGroup, nil), "No group selected"
		}
		return match.GroupSubject(q.TeamGroup, members), "Group: " + q.TeamGroup
	}

	if q.Team == team.CombinedDisplayName {
		return match.CombinedSubject(), team.CombinedDisplayName
	}
	return match.TeamSubject(q.Team), q.Team
}

func buildTable(matches []match.PerspectiveMatch) []TableRow {
	rows := make([]TableRow, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, TableRow{
			Date:     m.Date.Format("2006-01-02"),
			HomeTeam: m.HomeTeam,
			AwayTeam: m.AwayTeam,
			Score:    m.FormatScore(),
			Result:   m.Result,
			Opponent: m.OpponentTeam,
		})
	}
	return rows
}
