package match

import (
	"context"
	"time"
)

type Repository interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]Match, error)
	ListTeams(ctx context.Context) ([]string, error)
	DateBounds(ctx context.Context) (min, max time.Time, ok bool, err error)
}
