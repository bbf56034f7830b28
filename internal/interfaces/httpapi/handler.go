package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/kwdash/soccer-analytics/internal/platform/logging"
	"github.com/kwdash/soccer-analytics/internal/usecase"
)

type Handler struct {
	dashboardService  *usecase.DashboardService
	comparisonService *usecase.ComparisonService
	teamService       *usecase.TeamService
	groupService      *usecase.GroupService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	dashboardService *usecase.DashboardService,
	comparisonService *usecase.ComparisonService,
	teamService *usecase.TeamService,
	groupService *usecase.GroupService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		dashboardService:  dashboardService,
		comparisonService: comparisonService,
		teamService:       teamService,
		groupService:      groupService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeBody(body io.Reader, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
