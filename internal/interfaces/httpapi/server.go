package httpapi

import (
	"net/http"

	"github.com/kwdash/soccer-analytics/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handler.Healthz)

	mux.HandleFunc("GET /api/v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/v1/teams/date-bounds", handler.GetDateBounds)
	mux.HandleFunc("GET /api/v1/date-ranges", handler.ListDateRangeOptions)
	mux.HandleFunc("GET /api/v1/date-ranges/{preset}", handler.ResolveDateRangePreset)

	mux.HandleFunc("POST /api/v1/dashboard", handler.GetDashboard)
	mux.HandleFunc("POST /api/v1/comparison", handler.RunComparison)

	mux.HandleFunc("GET /api/v1/team-groups", handler.ListTeamGroups)
	mux.HandleFunc("PUT /api/v1/team-groups", handler.SaveTeamGroup)
	mux.HandleFunc("DELETE /api/v1/team-groups/{name}", handler.DeleteTeamGroup)

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(r.Context(), "panic recovered", "panic", rec)
				writeInternalError(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
