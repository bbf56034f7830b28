package httpapi

import (
	"net/http"
	"strings"

	"github.com/kwdash/soccer-analytics/internal/domain/teamgroup"
)

type teamGroupDTO struct {
	Name  string   `json:"name"`
	Teams []string `json:"teams"`
}

type saveTeamGroupRequest struct {
	Name  string   `json:"name" validate:"required,max=100"`
	Teams []string `json:"teams" validate:"required,min=1,max=100,dive,required"`
}

func (h *Handler) ListTeamGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamGroups")
	defer span.End()

	groups, err := h.groupService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list team groups failed", "error", err)
		writeError(w, err)
		return
	}

	items := make([]teamGroupDTO, 0, len(groups))
	for _, g := range groups {
		items = append(items, teamGroupDTO{Name: g.Name, Teams: g.Teams})
	}
	writeSuccess(w, http.StatusOK, items)
}

func (h *Handler) SaveTeamGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveTeamGroup")
	defer span.End()

	var req saveTeamGroupRequest
	if err := h.decodeBody(r.Body, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.groupService.Save(ctx, teamgroup.Group{Name: req.Name, Teams: req.Teams}); err != nil {
		h.logger.WarnContext(ctx, "save team group failed", "group", req.Name, "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teamGroupDTO{Name: req.Name, Teams: req.Teams})
}

func (h *Handler) DeleteTeamGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeamGroup")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	if err := h.groupService.Delete(ctx, name); err != nil {
		h.logger.WarnContext(ctx, "delete team group failed", "group", name, "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]string{"deleted": name})
}
