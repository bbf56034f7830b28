package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/kwdash/soccer-analytics/internal/platform/logging"
)

const (
	defaultComparisonWorkers = 4
	maxComparisonWorkers     = 16
	maxComparisonQueries     = 50
)

// ComparisonInput asks for dashboards over several subjects at once, e.g. to
// compare every team in a group side by side.
type ComparisonInput struct {
	Queries    []DashboardQuery
	MaxWorkers int
}

type ComparisonEntry struct {
	Query     DashboardQuery `json:"query"`
	Dashboard Dashboard      `json:"dashboard"`
	Error     string         `json:"error,omitempty"`
}

type ComparisonResult struct {
	Entries      []ComparisonEntry `json:"entries"`
	SuccessCount int               `json:"success_count"`
	FailedCount  int               `json:"failed_count"`
	WorkerCount  int               `json:"worker_count"`
}

// ComparisonService fans dashboard computations out over a worker pool. Each
// computation is independent; only the result slice slot is shared per task.
type ComparisonService struct {
	dashboard *DashboardService
	logger    *logging.Logger
}

func NewComparisonService(dashboard *DashboardService, logger *logging.Logger) *ComparisonService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ComparisonService{
		dashboard: dashboard,
		logger:    logger,
	}
}

func (s *ComparisonService) Run(ctx context.Context, input ComparisonInput) (ComparisonResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ComparisonService.Run")
	defer span.End()

	if len(input.Queries) == 0 {
		return ComparisonResult{}, fmt.Errorf("%w: at least one query is required", ErrInvalidInput)
	}
	if len(input.Queries) > maxComparisonQueries {
		return ComparisonResult{}, fmt.Errorf("%w: at most %d queries per comparison", ErrInvalidInput, maxComparisonQueries)
	}

	workers := input.MaxWorkers
	if workers <= 0 {
		workers = defaultComparisonWorkers
	}
	if workers > maxComparisonWorkers {
		workers = maxComparisonWorkers
	}
	if workers > len(input.Queries) {
		workers = len(input.Queries)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return ComparisonResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	entries := make([]ComparisonEntry, len(input.Queries))
	var succeeded, failed atomic.Int64
	var wg sync.WaitGroup

	for i, query := range input.Queries {
		i, query := i, query
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			dashboard, runErr := s.dashboard.Get(ctx, query)
			entry := ComparisonEntry{Query: query}
			if runErr != nil {
				entry.Error = runErr.Error()
				failed.Add(1)
			} else {
				entry.Dashboard = dashboard
				succeeded.Add(1)
			}
			entries[i] = entry
		})
		if submitErr != nil {
			wg.Done()
			entries[i] = ComparisonEntry{Query: query, Error: submitErr.Error()}
			failed.Add(1)
		}
	}
	wg.Wait()

	s.logger.InfoContext(ctx, "comparison finished",
		"queries", len(input.Queries),
		"workers", workers,
		"succeeded", succeeded.Load(),
		"failed", failed.Load(),
	)

	return ComparisonResult{
		Entries:      entries,
		SuccessCount: int(succeeded.Load()),
		FailedCount:  int(failed.Load()),
		WorkerCount:  workers,
	}, nil
}
