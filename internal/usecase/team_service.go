package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
	"github.com/kwdash/soccer-analytics/internal/domain/team"
	"github.com/kwdash/soccer-analytics/internal/platform/cache"
)

const (
	teamListCacheKey   = "teams:list"
	dateBoundsCacheKey = "teams:date-bounds"
)

// DateRangeOption is one selectable preset for the dashboard's date picker.
type DateRangeOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// TeamService exposes the corpus's team directory and date extent. Both are
// derived from immutable match facts, so they are safe to cache.
type TeamService struct {
	matchRepo match.Repository
	store     *cache.Store
}

func NewTeamService(matchRepo match.Repository, store *cache.Store) *TeamService {
	return &TeamService{
		matchRepo: matchRepo,
		store:     store,
	}
}

// ListTeams returns every distinct team name in the corpus, sorted, with the
// combined Key West subject prepended when any variant is present.
func (s *TeamService) ListTeams(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	load := func(ctx context.Context) (any, error) {
		names, err := s.matchRepo.ListTeams(ctx)
		if err != nil {
			return nil, fmt.Errorf("list teams: %w", err)
		}

		hasKeyWest := false
		for _, name := range names {
			if team.IsKeyWestVariant(name) {
				hasKeyWest = true
				break
			}
		}
		if hasKeyWest {
			names = append([]string{team.CombinedDisplayName}, names...)
		}
		return names, nil
	}

	if s.store == nil {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return value.([]string), nil
	}

	value, err := s.store.GetOrLoad(ctx, teamListCacheKey, load)
	if err != nil {
		return nil, err
	}
	return value.([]string), nil
}

type dateBounds struct {
	min time.Time
	max time.Time
	ok  bool
}

// DateBounds returns the corpus's min and max match dates; ok is false for an
// empty corpus.
func (s *TeamService) DateBounds(ctx context.Context) (min, max time.Time, ok bool, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DateBounds")
	defer span.End()

	load := func(ctx context.Context) (any, error) {
		lo, hi, present, loadErr := s.matchRepo.DateBounds(ctx)
		if loadErr != nil {
			return nil, fmt.Errorf("date bounds: %w", loadErr)
		}
		return dateBounds{min: lo, max: hi, ok: present}, nil
	}

	var value any
	if s.store == nil {
		value, err = load(ctx)
	} else {
		value, err = s.store.GetOrLoad(ctx, dateBoundsCacheKey, load)
	}
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}

	bounds := value.(dateBounds)
	return bounds.min, bounds.max, bounds.ok, nil
}

// DateRangeOptions lists the date presets plus a per-year entry for every
// year present in the corpus, newest first.
func (s *TeamService) DateRangeOptions(ctx context.Context) ([]DateRangeOption, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DateRangeOptions")
	defer span.End()

	options := []DateRangeOption{
		{Label: "Last 30 Days", Value: "last_30_days"},
		{Label: "Last 90 Days", Value: "last_90_days"},
		{Label: "This Year", Value: "this_year"},
		{Label: "Last Year", Value: "last_year"},
		{Label: "All Time", Value: "all_time"},
	}

	min, max, ok, err := s.DateBounds(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		for year := max.Year(); year >= min.Year(); year-- {
			options = append(options, DateRangeOption{
				Label: fmt.Sprintf("Year %d", year),
				Value: fmt.Sprintf("year_%d", year),
			})
		}
	}

	return options, nil
}

// ResolveDateRangePreset turns a preset value into a concrete inclusive date
// range relative to now.
func (s *TeamService) ResolveDateRangePreset(ctx context.Context, preset string, now time.Time) (match.DateRange, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ResolveDateRangePreset")
	defer span.End()

	today := now.UTC().Truncate(24 * time.Hour)

	switch preset {
	case "last_30_days":
		return match.NewDateRange(today.AddDate(0, 0, -30), today)
	case "last_90_days":
		return match.NewDateRange(today.AddDate(0, 0, -90), today)
	case "this_year":
		return match.NewDateRange(time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC), today)
	case "last_year":
		start := time.Date(today.Year()-1, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(today.Year()-1, 12, 31, 0, 0, 0, 0, time.UTC)
		return match.NewDateRange(start, end)
	case "all_time":
		min, max, ok, err := s.DateBounds(ctx)
		if err != nil {
			return match.DateRange{}, err
		}
		if !ok {
			return match.NewDateRange(today, today)
		}
		return match.NewDateRange(min, max)
	}

	if year, found := strings.CutPrefix(preset, "year_"); found {
		y, err := strconv.Atoi(year)
		if err == nil && y > 0 {
			start := time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)
			end := time.Date(y, 12, 31, 0, 0, 0, 0, time.UTC)
			return match.NewDateRange(start, end)
		}
	}

	return match.DateRange{}, fmt.Errorf("%w: unknown date range preset %q", ErrInvalidInput, preset)
}
