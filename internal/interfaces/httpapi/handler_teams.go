package httpapi

import (
	"net/http"
	"strings"
	"time"
)

type dateBoundsDTO struct {
	MinDate string `json:"minDate,omitempty"`
	MaxDate string `json:"maxDate,omitempty"`
	HasData bool   `json:"hasData"`
}

type dateRangeOptionDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type resolvedDateRangeDTO struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teams)
}

func (h *Handler) GetDateBounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDateBounds")
	defer span.End()

	min, max, ok, err := h.teamService.DateBounds(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "date bounds failed", "error", err)
		writeError(w, err)
		return
	}

	dto := dateBoundsDTO{HasData: ok}
	if ok {
		dto.MinDate = min.Format("2006-01-02")
		dto.MaxDate = max.Format("2006-01-02")
	}
	writeSuccess(w, http.StatusOK, dto)
}

func (h *Handler) ListDateRangeOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDateRangeOptions")
	defer span.End()

	options, err := h.teamService.DateRangeOptions(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "date range options failed", "error", err)
		writeError(w, err)
		return
	}

	items := make([]dateRangeOptionDTO, 0, len(options))
	for _, opt := range options {
		items = append(items, dateRangeOptionDTO{Label: opt.Label, Value: opt.Value})
	}
	writeSuccess(w, http.StatusOK, items)
}

func (h *Handler) ResolveDateRangePreset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolveDateRangePreset")
	defer span.End()

	preset := strings.TrimSpace(r.PathValue("preset"))
	dateRange, err := h.teamService.ResolveDateRangePreset(ctx, preset, time.Now())
	if err != nil {
		h.logger.WarnContext(ctx, "resolve date range preset failed", "preset", preset, "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, resolvedDateRangeDTO{
		StartDate: dateRange.Start.Format("2006-01-02"),
		EndDate:   dateRange.End.Format("2006-01-02"),
	})
}
