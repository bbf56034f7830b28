package httpapi

import (
	"net/http"

	"github.com/kwdash/soccer-analytics/internal/usecase"
)

type comparisonRequest struct {
	Queries    []dashboardRequest `json:"queries" validate:"required,min=1,max=50,dive"`
	MaxWorkers int                `json:"maxWorkers" validate:"gte=0,lte=16"`
}

type comparisonEntryDTO struct {
	DisplayName string       `json:"displayName"`
	Dashboard   dashboardDTO `json:"dashboard"`
	Error       string       `json:"error,omitempty"`
}

type comparisonResultDTO struct {
	Entries      []comparisonEntryDTO `json:"entries"`
	SuccessCount int                  `json:"successCount"`
	FailedCount  int                  `json:"failedCount"`
	WorkerCount  int                  `json:"workerCount"`
}

func (h *Handler) RunComparison(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunComparison")
	defer span.End()

	var req comparisonRequest
	if err := h.decodeBody(r.Body, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(w, err)
		return
	}

	queries := make([]usecase.DashboardQuery, 0, len(req.Queries))
	for _, q := range req.Queries {
		queries = append(queries, toDashboardQuery(q))
	}

	result, err := h.comparisonService.Run(ctx, usecase.ComparisonInput{
		Queries:    queries,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "comparison failed", "queries", len(queries), "error", err)
		writeError(w, err)
		return
	}

	entries := make([]comparisonEntryDTO, 0, len(result.Entries))
	for _, entry := range result.Entries {
		entries = append(entries, comparisonEntryDTO{
			DisplayName: entry.Dashboard.DisplayName,
			Dashboard:   dashboardToDTO(entry.Dashboard),
			Error:       entry.Error,
		})
	}

	writeSuccess(w, http.StatusOK, comparisonResultDTO{
		Entries:      entries,
		SuccessCount: result.SuccessCount,
		FailedCount:  result.FailedCount,
		WorkerCount:  result.WorkerCount,
	})
}
