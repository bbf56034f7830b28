package usecase

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
)

// wilsonZ is the z-score for a 95% confidence level.
const wilsonZ = 1.96

// DayStat is the win-rate row for one weekday. WinRate and the interval
// bounds are fractions in [0, 1].
type DayStat struct {
	Day          string
	TotalMatches int
	WinRate      float64
	CILower      float64
	CIUpper      float64
}

// PeriodDayStat is the same row keyed by quarter-year period and weekday.
type PeriodDayStat struct {
	Period       string
	Day          string
	TotalMatches int
	WinRate      float64
	CILower      float64
	CIUpper      float64
}

var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var weekdayRank = func() map[string]int {
	m := make(map[string]int, len(weekdayOrder))
	for i, d := range weekdayOrder {
		m[d] = i
	}
	return m
}()

// DayStatsService buckets matches by weekday and quarter-year period and
// computes win rates with Wilson score intervals.
type DayStatsService struct{}

func NewDayStatsService() *DayStatsService {
	return &DayStatsService{}
}

// DayOfWeekStats returns overall per-weekday statistics and the weekday-by-
// period breakdown. Matches without a result are excluded. Every weekday
// appears in the overall output, zero-filled when nothing was played; the
// period breakdown only contains buckets that occurred.
func (s *DayStatsService) DayOfWeekStats(matches []match.PerspectiveMatch) ([]DayStat, []PeriodDayStat) {
	type bucket struct {
		total int
		wins  int
	}

	byDay := make(map[string]*bucket)
	type periodKey struct {
		period string
		day    string
	}
	byPeriodDay := make(map[periodKey]*bucket)

	for _, m := range matches {
		if !m.Decided() {
			continue
		}
		day := m.Date.Weekday().String()
		period := quarterPeriod(m.Date)

		if byDay[day] == nil {
			byDay[day] = &bucket{}
		}
		byDay[day].total++

		key := periodKey{period: period, day: day}
		if byPeriodDay[key] == nil {
			byPeriodDay[key] = &bucket{}
		}
		byPeriodDay[key].total++

		if m.Result == match.ResultWin {
			byDay[day].wins++
			byPeriodDay[key].wins++
		}
	}

	overall := make([]DayStat, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		b := byDay[day]
		if b == nil {
			overall = append(overall, DayStat{Day: day})
			continue
		}
		winRate := float64(b.wins) / float64(b.total)
		lower, upper := wilsonInterval(winRate, b.total)
		overall = append(overall, DayStat{
			Day:          day,
			TotalMatches: b.total,
			WinRate:      winRate,
			CILower:      lower,
			CIUpper:      upper,
		})
	}

	byPeriod := make([]PeriodDayStat, 0, len(byPeriodDay))
	for key, b := range byPeriodDay {
		winRate := float64(b.wins) / float64(b.total)
		lower, upper := wilsonInterval(winRate, b.total)
		byPeriod = append(byPeriod, PeriodDayStat{
			Period:       key.period,
			Day:          key.day,
			TotalMatches: b.total,
			WinRate:      winRate,
			CILower:      lower,
			CIUpper:      upper,
		})
	}
	sort.SliceStable(byPeriod, func(i, j int) bool {
		if byPeriod[i].Period != byPeriod[j].Period {
			return byPeriod[i].Period < byPeriod[j].Period
		}
		return weekdayRank[byPeriod[i].Day] < weekdayRank[byPeriod[j].Day]
	})

	return overall, byPeriod
}

// quarterPeriod labels a date as "YYYY-Qn".
func quarterPeriod(t time.Time) string {
	quarter := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("%d-Q%d", t.Year(), quarter)
}

// wilsonInterval computes the 95% Wilson score interval for a binomial
// proportion, clamped to [0, 1].
func wilsonInterval(p float64, n int) (lower, upper float64) {
	if n <= 0 {
		return 0, 0
	}

	nf := float64(n)
	z2 := wilsonZ * wilsonZ
	denom := 1 + z2/nf
	center := (p + z2/(2*nf)) / denom
	err := wilsonZ * math.Sqrt((p*(1-p)+z2/(4*nf))/nf) / denom

	return math.Max(0, center-err), math.Min(1, center+err)
}
