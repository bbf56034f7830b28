package httpapi

import (
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
	"github.com/kwdash/soccer-analytics/internal/usecase"
)

const (
	apiVersion  = "1.0"
	errorDomain = "soccer-analytics"
)

type responseEnvelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, responseEnvelope{
		APIVersion: apiVersion,
		Data:       data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	status, reason, statusText := mapError(err)
	writeJSON(w, status, responseEnvelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    status,
			Message: err.Error(),
			Status:  statusText,
			Domain:  errorDomain,
			Reason:  reason,
		},
	})
}

func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, responseEnvelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
			Status:  "INTERNAL",
			Domain:  errorDomain,
			Reason:  "internal",
		},
	})
}

func mapError(err error) (status int, reason, statusText string) {
	switch {
	case errors.Is(err, match.ErrInvalidDateRange):
		return http.StatusBadRequest, "invalidDateRange", "INVALID_ARGUMENT"
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound, "notFound", "NOT_FOUND"
	default:
		return http.StatusInternalServerError, "internal", "INTERNAL"
	}
}
