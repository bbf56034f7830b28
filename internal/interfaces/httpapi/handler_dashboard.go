package httpapi

import (
	"net/http"

	"github.com/kwdash/soccer-analytics/internal/usecase"
)

type dashboardRequest struct {
	SelectionType  string   `json:"selectionType" validate:"omitempty,oneof=individual group"`
	Team           string   `json:"team"`
	TeamGroup      string   `json:"teamGroup"`
	StartDate      string   `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate        string   `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	OpponentFilter string   `json:"opponentFilter" validate:"omitempty,oneof=all specific team_groups worthy"`
	Opponents      []string `json:"opponents" validate:"max=100"`
	OpponentGroups []string `json:"opponentGroups" validate:"max=50"`
	// Threshold is a pointer so an explicit 0 is distinguishable from an
	// absent field; absent falls back to the default.
	Threshold *float64 `json:"threshold" validate:"omitempty,gte=0,lte=100"`
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	var req dashboardRequest
	if err := h.decodeBody(r.Body, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(w, err)
		return
	}

	dashboard, err := h.dashboardService.Get(ctx, toDashboardQuery(req))
	if err != nil {
		h.logger.WarnContext(ctx, "get dashboard failed", "team", req.Team, "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, dashboardToDTO(dashboard))
}

func toDashboardQuery(req dashboardRequest) usecase.DashboardQuery {
	selection := req.SelectionType
	if selection == "" {
		selection = usecase.SelectionIndividual
	}
	mode := usecase.OpponentFilterMode(req.OpponentFilter)
	if mode == "" {
		mode = usecase.FilterAll
	}
	threshold := usecase.DefaultWorthyThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	return usecase.DashboardQuery{
		SelectionType:  selection,
		Team:           req.Team,
		TeamGroup:      req.TeamGroup,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		OpponentFilter: mode,
		Opponents:      req.Opponents,
		OpponentGroups: req.OpponentGroups,
		Threshold:      threshold,
	}
}

type dashboardDTO struct {
	DisplayName          string             `json:"displayName"`
	Metrics              metricsDTO         `json:"metrics"`
	Matches              []matchRowDTO      `json:"matches"`
	OpponentComparison   []opponentStatsDTO `json:"opponentComparison"`
	OpponentGoalStats    []opponentStatsDTO `json:"opponentGoalStats"`
	DayStats             []dayStatDTO       `json:"dayStats"`
	PeriodDayStats       []periodDayStatDTO `json:"periodDayStats"`
	OpponentsConsidered  []string           `json:"opponentsConsidered"`
	ShowOpponentAnalysis bool               `json:"showOpponentAnalysis"`
}

type metricsDTO struct {
	GamesPlayed   int     `json:"gamesPlayed"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Draws         int     `json:"draws"`
	WinRate       float64 `json:"winRate"`
	LossRate      float64 `json:"lossRate"`
	GoalsScored   int     `json:"goalsScored"`
	GoalsConceded int     `json:"goalsConceded"`
	GoalDiff      int     `json:"goalDiff"`
}

type matchRowDTO struct {
	Date     string `json:"date"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Score    string `json:"score"`
	Result   string `json:"result"`
	Opponent string `json:"opponent"`
}

type opponentStatsDTO struct {
	Opponent       string  `json:"opponent"`
	TotalMatches   int     `json:"totalMatches"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	Draws          int     `json:"draws"`
	WinRate        float64 `json:"winRate"`
	LossRate       float64 `json:"lossRate"`
	DrawRate       float64 `json:"drawRate"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
}

type dayStatDTO struct {
	Day          string  `json:"day"`
	TotalMatches int     `json:"totalMatches"`
	WinRate      float64 `json:"winRate"`
	CILower      float64 `json:"ciLower"`
	CIUpper      float64 `json:"ciUpper"`
}

type periodDayStatDTO struct {
	Period       string  `json:"period"`
	Day          string  `json:"day"`
	TotalMatches int     `json:"totalMatches"`
	WinRate      float64 `json:"winRate"`
	CILower      float64 `json:"ciLower"`
	CIUpper      float64 `json:"ciUpper"`
}

func dashboardToDTO(d usecase.Dashboard) dashboardDTO {
	rows := make([]matchRowDTO, 0, len(d.Table))
	for _, row := range d.Table {
		rows = append(rows, matchRowDTO{
			Date:     row.Date,
			HomeTeam: row.HomeTeam,
			AwayTeam: row.AwayTeam,
			Score:    row.Score,
			Result:   row.Result,
			Opponent: row.Opponent,
		})
	}

	return dashboardDTO{
		DisplayName:          d.DisplayName,
		Metrics:              metricsToDTO(d.Metrics),
		Matches:              rows,
		OpponentComparison:   opponentStatsToDTO(d.OpponentComparison),
		OpponentGoalStats:    opponentStatsToDTO(d.OpponentGoalStats),
		DayStats:             dayStatsToDTO(d.DayStats),
		PeriodDayStats:       periodDayStatsToDTO(d.PeriodDayStats),
		OpponentsConsidered:  d.OpponentsConsidered,
		ShowOpponentAnalysis: d.ShowOpponentAnalysis,
	}
}

func metricsToDTO(m usecase.Metrics) metricsDTO {
	return metricsDTO{
		GamesPlayed:   m.GamesPlayed,
		Wins:          m.Wins,
		Losses:        m.Losses,
		Draws:         m.Draws,
		WinRate:       m.WinRate,
		LossRate:      m.LossRate,
		GoalsScored:   m.GoalsScored,
		GoalsConceded: m.GoalsConceded,
		GoalDiff:      m.GoalDiff,
	}
}

func opponentStatsToDTO(stats []usecase.OpponentStats) []opponentStatsDTO {
	items := make([]opponentStatsDTO, 0, len(stats))
	for _, s := range stats {
		items = append(items, opponentStatsDTO{
			Opponent:       s.Opponent,
			TotalMatches:   s.TotalMatches,
			Wins:           s.Wins,
			Losses:         s.Losses,
			Draws:          s.Draws,
			WinRate:        s.WinRate,
			LossRate:       s.LossRate,
			DrawRate:       s.DrawRate,
			GoalsFor:       s.GoalsFor,
			GoalsAgainst:   s.GoalsAgainst,
			GoalDifference: s.GoalDifference,
		})
	}
	return items
}

func dayStatsToDTO(stats []usecase.DayStat) []dayStatDTO {
	items := make([]dayStatDTO, 0, len(stats))
	for _, s := range stats {
		items = append(items, dayStatDTO{
			Day:          s.Day,
			TotalMatches: s.TotalMatches,
			WinRate:      s.WinRate,
			CILower:      s.CILower,
			CIUpper:      s.CIUpper,
		})
	}
	return items
}

func periodDayStatsToDTO(stats []usecase.PeriodDayStat) []periodDayStatDTO {
	items := make([]periodDayStatDTO, 0, len(stats))
	for _, s := range stats {
		items = append(items, periodDayStatDTO{
			Period:       s.Period,
			Day:          s.Day,
			TotalMatches: s.TotalMatches,
			WinRate:      s.WinRate,
			CILower:      s.CILower,
			CIUpper:      s.CIUpper,
		})
	}
	return items
}
