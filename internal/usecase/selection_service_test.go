package usecase

import (
	"testing"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
	"github.com/kwdash/soccer-analytics/internal/infrastructure/repository/memory"
	"github.com/kwdash/soccer-analytics/internal/platform/logging"
)

func selectionFixture() *SelectionService {
	repo := memory.NewMatchRepository([]match.Match{
		{Date: day("2024-03-09"), HomeTeam: "Orlando Rovers", AwayTeam: "Miami United", HomeScore: score(2), AwayScore: score(2)},
		{Date: day("2024-03-02"), HomeTeam: "Miami United", AwayTeam: "Naples City", HomeScore: score(3), AwayScore: score(1)},
		{Date: day("2024-04-06"), HomeTeam: "Naples City", AwayTeam: "Tampa Bay Rangers", HomeScore: score(1), AwayScore: score(0)},
		{Date: day("2024-05-04"), HomeTeam: "Key West FC", AwayTeam: "Miami United", HomeScore: score(1), AwayScore: score(2)},
		{Date: day("2024-06-01"), HomeTeam: "Keywest FC", AwayTeam: "Naples City", HomeScore: nil, AwayScore: nil},
	})
	return NewSelectionService(repo, logging.NewNop())
}

func fullYear(t *testing.T) match.DateRange {
	t.Helper()
	r, err := match.ParseDateRange("2024-01-01", "2024-12-31")
	if err != nil {
		t.Fatalf("parse range: %v", err)
	}
	return r
}

func TestSelectionService_TeamSubject(t *testing.T) {
	svc := selectionFixture()

	got, err := svc.SelectMatches(t.Context(), match.TeamSubject("Miami United"), fullYear(t))
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}

	// Ascending date order regardless of corpus order.
	for i := 1; i < len(got); i++ {
		if got[i].Date.Before(got[i-1].Date) {
			t.Fatalf("matches out of order at index %d", i)
		}
	}

	// The away fixture is annotated from the away perspective.
	last := got[2]
	if last.OpponentTeam != "Key West FC" || last.Result != match.ResultWin {
		t.Fatalf("unexpected away annotation: opponent=%q result=%q", last.OpponentTeam, last.Result)
	}
}

func TestSelectionService_GroupHomePrecedence(t *testing.T) {
	svc := selectionFixture()
	subject := match.GroupSubject("Florida", []string{"Miami United", "Naples City"})

	got, err := svc.SelectMatches(t.Context(), subject, fullYear(t))
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}

	// 2024-03-02 is between two group members; the home side wins the
	// perspective.
	var internal *match.PerspectiveMatch
	for i := range got {
		if got[i].Date.Equal(day("2024-03-02")) {
			internal = &got[i]
		}
	}
	if internal == nil {
		t.Fatal("missing intra-group match")
	}
	if internal.OpponentTeam != "Naples City" {
		t.Fatalf("intra-group match must take the home perspective, opponent=%q", internal.OpponentTeam)
	}
	if internal.Result != match.ResultWin {
		t.Fatalf("unexpected result %q", internal.Result)
	}
}

func TestSelectionService_CombinedSubject(t *testing.T) {
	svc := selectionFixture()

	got, err := svc.SelectMatches(t.Context(), match.CombinedSubject(), fullYear(t))
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 Key West fixtures, got %d", len(got))
	}
	if got[1].Result != match.ResultNA {
		t.Fatalf("unscored fixture must stay NA, got %q", got[1].Result)
	}
}

func TestSelectionService_EmptySubject(t *testing.T) {
	svc := selectionFixture()

	got, err := svc.SelectMatches(t.Context(), match.TeamSubject(""), fullYear(t))
	if err != nil {
		t.Fatalf("empty subject must not error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("empty subject must yield no matches, got %d", len(got))
	}

	got, err = svc.SelectMatches(t.Context(), match.GroupSubject("Empty", nil), fullYear(t))
	if err != nil || len(got) != 0 {
		t.Fatalf("empty group must yield no matches, got %d err %v", len(got), err)
	}
}

func TestSelectionService_DateRangeBounds(t *testing.T) {
	svc := selectionFixture()
	r, err := match.ParseDateRange("2024-03-02", "2024-03-09")
	if err != nil {
		t.Fatalf("parse range: %v", err)
	}

	got, err := svc.SelectMatches(t.Context(), match.TeamSubject("Miami United"), r)
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("inclusive bounds should keep both edge matches, got %d", len(got))
	}
}
