package usecase

import (
	"errors"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")

	// ErrInvalidDateRange propagates the domain validation failure so HTTP
	// callers can map it without importing the domain package.
	ErrInvalidDateRange = match.ErrInvalidDateRange
)
