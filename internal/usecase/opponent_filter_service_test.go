package usecase

import (
	"errors"
	"testing"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
	"github.com/kwdash/soccer-analytics/internal/domain/teamgroup"
	"github.com/kwdash/soccer-analytics/internal/platform/logging"
)

func filterFixture() *OpponentFilterService {
	return NewOpponentFilterService(NewCompetitivenessService(logging.NewNop()), logging.NewNop())
}

func filterCorpus() []match.PerspectiveMatch {
	return []match.PerspectiveMatch{
		perspective("2024-03-02", "Miami United", 3, 1),
		perspective("2024-03-09", "Orlando Rovers", 2, 2),
		perspective("2024-04-06", "Tampa Bay Rangers", 0, 1),
		perspective("2024-05-04", "Miami United", 1, 2),
	}
}

func TestOpponentFilter_All(t *testing.T) {
	svc := filterFixture()

	got, err := svc.Filter(t.Context(), filterCorpus(), FilterAll, OpponentFilterParams{})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(got.Matches) != 4 {
		t.Fatalf("mode all must keep every match, got %d", len(got.Matches))
	}
	if len(got.Opponents) != 0 {
		t.Fatalf("mode all applies no opponent set, got %v", got.Opponents)
	}
	if !got.ShowAnalysis {
		t.Fatal("non-empty result must enable analysis")
	}
}

func TestOpponentFilter_Specific_Exact(t *testing.T) {
	svc := filterFixture()

	got, err := svc.Filter(t.Context(), filterCorpus(), FilterSpecific, OpponentFilterParams{
		Opponents: []string{"Miami United"},
	})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(got.Matches) != 2 {
		t.Fatalf("expected 2 Miami matches, got %d", len(got.Matches))
	}
	for _, m := range got.Matches {
		if m.OpponentTeam != "Miami United" {
			t.Fatalf("unexpected opponent %q", m.OpponentTeam)
		}
	}
}

func TestOpponentFilter_Specific_NormalizedFallback(t *testing.T) {
	svc := filterFixture()

	// The selection spells the name differently from the corpus; the exact
	// pass finds nothing, so normalized matching kicks in.
	got, err := svc.Filter(t.Context(), filterCorpus(), FilterSpecific, OpponentFilterParams{
		Opponents: []string{"miami-united"},
	})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(got.Matches) != 2 {
		t.Fatalf("normalized fallback should find both Miami matches, got %d", len(got.Matches))
	}
}

func TestOpponentFilter_Specific_ExactSufficient(t *testing.T) {
	svc := filterFixture()

	corpus := append(filterCorpus(), perspective("2024-06-01", "Miami-United", 2, 0))

	// One target, and the exact pass already hits it, so the variant
	// spelling in the corpus is not pulled in.
	got, err := svc.Filter(t.Context(), corpus, FilterSpecific, OpponentFilterParams{
		Opponents: []string{"Miami United"},
	})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(got.Matches) != 2 {
		t.Fatalf("exact hits satisfy the target, got %d matches", len(got.Matches))
	}
}

func TestOpponentFilter_Specific_EmptySelection(t *testing.T) {
	svc := filterFixture()

	got, err := svc.Filter(t.Context(), filterCorpus(), FilterSpecific, OpponentFilterParams{
		Opponents: []string{"", ""},
	})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(got.Matches) != 4 {
		t.Fatalf("a selection of empty strings is no selection, got %d", len(got.Matches))
	}
}

func TestOpponentFilter_TeamGroups(t *testing.T) {
	svc := filterFixture()
	snapshot := teamgroup.Snapshot{
		"Rivals": {"Miami United", "Tampa Bay Rangers"},
	}

	got, err := svc.Filter(t.Context(), filterCorpus(), FilterTeamGroups, OpponentFilterParams{
		Groups:   []string{"Rivals"},
		Snapshot: snapshot,
	})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(got.Matches) != 3 {
		t.Fatalf("expected 3 matches against group members, got %d", len(got.Matches))
	}
}

func TestOpponentFilter_TeamGroups_UnknownGroup(t *testing.T) {
	svc := filterFixture()

	got, err := svc.Filter(t.Context(), filterCorpus(), FilterTeamGroups, OpponentFilterParams{
		Groups:   []string{"No Such Group"},
		Snapshot: teamgroup.Snapshot{},
	})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(got.Matches) != 0 {
		t.Fatalf("a group that resolves to nothing must yield nothing, got %d", len(got.Matches))
	}
	if got.ShowAnalysis {
		t.Fatal("empty result must disable analysis")
	}
}

func TestOpponentFilter_Worthy(t *testing.T) {
	svc := filterFixture()

	// Tampa beat the subject, Orlando drew; Miami never won and was beaten
	// comfortably enough overall, but the 1-2 loss makes them worthy too.
	got, err := svc.Filter(t.Context(), filterCorpus(), FilterWorthy, OpponentFilterParams{
		Threshold: DefaultWorthyThreshold,
	})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(got.Opponents) != 3 {
		t.Fatalf("expected 3 worthy opponents, got %v", got.Opponents)
	}
	if len(got.Matches) != 4 {
		t.Fatalf("every match is against a worthy opponent here, got %d", len(got.Matches))
	}
}

func TestOpponentFilter_Worthy_ManualOverride(t *testing.T) {
	svc := filterFixture()

	got, err := svc.Filter(t.Context(), filterCorpus(), FilterWorthy, OpponentFilterParams{
		Opponents: []string{"Orlando Rovers"},
		Threshold: DefaultWorthyThreshold,
	})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(got.Opponents) != 1 || got.Opponents[0] != "Orlando Rovers" {
		t.Fatalf("manual selection must override classification, got %v", got.Opponents)
	}
	if len(got.Matches) != 1 {
		t.Fatalf("expected only the Orlando match, got %d", len(got.Matches))
	}
}

func TestOpponentFilter_Worthy_SelectionWithEmptyEntryIsIgnored(t *testing.T) {
	svc := filterFixture()

	// An empty entry voids the manual selection, so classification runs
	// and the opponent that beat the subject comes back.
	got, err := svc.Filter(t.Context(), filterCorpus(), FilterWorthy, OpponentFilterParams{
		Opponents: []string{"", "Fort Myers Athletic"},
		Threshold: DefaultWorthyThreshold,
	})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(got.Opponents) != 3 {
		t.Fatalf("expected automatic classification, got %v", got.Opponents)
	}
	found := false
	for _, o := range got.Opponents {
		if o == "Tampa Bay Rangers" {
			found = true
		}
	}
	if !found {
		t.Fatalf("classification must include Tampa Bay Rangers, got %v", got.Opponents)
	}
	if len(got.Matches) != 4 {
		t.Fatalf("expected every match against a worthy opponent, got %d", len(got.Matches))
	}
}

func TestOpponentFilter_UnknownMode(t *testing.T) {
	svc := filterFixture()

	_, err := svc.Filter(t.Context(), filterCorpus(), OpponentFilterMode("bogus"), OpponentFilterParams{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
