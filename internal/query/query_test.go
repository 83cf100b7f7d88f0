package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"collabhub/internal/model"
	"collabhub/internal/store"
)

func intp(v int) *int         { return &v }
func f64p(v float64) *float64 { return &v }

func ids(infs []model.Influencer) []string {
	out := make([]string, len(infs))
	for i, inf := range infs {
		out[i] = inf.ID
	}
	return out
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func newEngine() (*store.Store, *Engine) {
	s := store.NewSeeded()
	return s, New(s, WithLatency(0))
}

func TestSearchScenarios(t *testing.T) {
	_, e := newEngine()
	ctx := context.Background()

	got, err := e.Search(ctx, Criteria{MinFollowers: intp(1_000_000)})
	if err != nil {
		t.Fatal(err)
	}
	if !contains(ids(got), "1") {
		t.Fatalf("expected id 1 in %v", ids(got))
	}
	got, _ = e.Search(ctx, Criteria{Country: "Canada"})
	if contains(ids(got), "1") || !contains(ids(got), "2") {
		t.Fatalf("country filter: %v", ids(got))
	}
}

func TestFilterCriteria(t *testing.T) {
	pool := store.NewSeeded().Influencers()
	tests := []struct {
		name string
		c    Criteria
		want []string
	}{
		{"empty criteria keeps all", Criteria{}, []string{"1", "2", "3", "4", "5", "6"}},
		{"term on name", Criteria{Term: "bella"}, []string{"2"}},
		{"term on handle", Criteria{Term: "EVANGAMES"}, []string{"5"}},
		{"term on category", Criteria{Term: "gaming"}, []string{"1", "5"}},
		{"platform any-of", Criteria{Platforms: []model.PlatformName{model.TikTok, model.X}}, []string{"2", "3", "5"}},
		{"follower range", Criteria{MinFollowers: intp(500_000), MaxFollowers: intp(1_000_000)}, []string{"2", "6"}},
		{"views range", Criteria{MinViews: intp(50_000), MaxViews: intp(200_000)}, []string{"1", "6"}},
		{"engagement", Criteria{MinEngagement: f64p(6.2)}, []string{"3", "5", "6"}},
		{"conjunction", Criteria{Country: "USA", Platforms: []model.PlatformName{model.X}}, []string{"5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(pool, tt.c))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestFilterMissingViews(t *testing.T) {
	pool := []model.Influencer{{ID: "a"}}
	if len(Filter(pool, Criteria{MinViews: intp(1)})) != 0 {
		t.Fatalf("missing views should fail a positive minimum")
	}
	if len(Filter(pool, Criteria{MinViews: intp(0)})) != 1 {
		t.Fatalf("missing views should pass a zero minimum")
	}
	if len(Filter(pool, Criteria{MaxViews: intp(10)})) != 0 {
		t.Fatalf("missing views are unbounded for the maximum")
	}
}

func TestFollowerBoundMonotonic(t *testing.T) {
	pool := store.NewSeeded().Influencers()
	prev := len(pool) + 1
	for _, min := range []int{0, 100_000, 500_000, 1_000_000, 3_000_000, 10_000_000} {
		n := len(Filter(pool, Criteria{MinFollowers: intp(min)}))
		if n > prev {
			t.Fatalf("min=%d grew result to %d from %d", min, n, prev)
		}
		prev = n
	}
}

func TestSearchHonorsContext(t *testing.T) {
	s := store.NewSeeded()
	e := New(s, WithLatency(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Search(ctx, Criteria{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestInfluencersForCampaign(t *testing.T) {
	_, e := newEngine()
	rows := e.InfluencersForCampaign("campaign1")
	if len(rows) != 2 || rows[0].Influencer.ID != "1" || rows[1].Influencer.ID != "5" {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].Detail.ProgressStatus != "Agreement Signed" || rows[0].CampaignName != "Q4 Tech Campaign" {
		t.Fatalf("detail not merged: %+v", rows[0])
	}
	if e.InfluencersForCampaign("nope") != nil {
		t.Fatalf("unknown campaign should be empty")
	}
}

func TestInfluencerWithDetails(t *testing.T) {
	s, e := newEngine()
	inf, _ := s.Influencer("1")
	s.AddInfluencerToCampaign(inf, "campaign3", nil)

	p, ok := e.InfluencerWithDetails("1")
	if !ok || len(p.Campaigns) != 2 {
		t.Fatalf("profile = %+v %v", p, ok)
	}
	if p.Campaigns[0].CampaignID != "campaign1" || p.Campaigns[1].CampaignName != "Global Travel Series" {
		t.Fatalf("campaign order: %+v", p.Campaigns)
	}
	s.AddInfluencerToCampaign(model.Influencer{ID: "solo"}, "none", nil)
	p, ok = e.InfluencerWithDetails("solo")
	if !ok || len(p.Campaigns) != 0 {
		t.Fatalf("found-without-campaigns expected, got %+v %v", p, ok)
	}
	if _, ok := e.InfluencerWithDetails("missing"); ok {
		t.Fatalf("unknown id must be not found")
	}
}

func TestFlattenedJoin(t *testing.T) {
	s, e := newEngine()
	rows := e.AllInfluencersWithCampaignDetails()
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
	inf, _ := s.Influencer("1")
	s.AddInfluencerToCampaign(inf, "campaign2", nil)
	rows = e.AllInfluencersWithCampaignDetails()
	seen := map[[2]string]bool{}
	for _, r := range rows {
		k := [2]string{r.CampaignID, r.Influencer.ID}
		if seen[k] {
			t.Fatalf("duplicate row %v", k)
		}
		seen[k] = true
	}
	if len(rows) != 6 || !seen[[2]string{"campaign2", "1"}] {
		t.Fatalf("join after add: %v", seen)
	}
}

func TestSuggestedInfluencers(t *testing.T) {
	_, e := newEngine()
	got := ids(e.SuggestedInfluencers("campaign1", 5))
	want := []string{"2", "3", "4"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if n := len(e.SuggestedInfluencers("campaign1", 2)); n != 2 {
		t.Fatalf("limit ignored: %d", n)
	}
	if e.SuggestedInfluencers("nope", 5) != nil {
		t.Fatalf("unknown campaign should be empty")
	}
}

func TestIsInfluencerInAnyCampaign(t *testing.T) {
	s, e := newEngine()
	if e.IsInfluencerInAnyCampaign("6") {
		t.Fatalf("6 is in no campaign")
	}
	inf, _ := s.Influencer("6")
	s.AddInfluencerToCampaign(inf, "campaign2", nil)
	if !e.IsInfluencerInAnyCampaign("6") {
		t.Fatalf("6 should now be a member")
	}
}

func TestKanban(t *testing.T) {
	s, e := newEngine()
	b, ok := e.Kanban("campaign2")
	if !ok || len(b.Columns) != len(model.DefaultKanbanColumns) {
		t.Fatalf("board = %+v", b)
	}
	if got := b.Columns[4]; got.Name != "Scope Done" || len(got.Members) != 2 {
		t.Fatalf("scope done column = %+v", got)
	}
	stray := "Archived"
	s.UpdateInfluencerDetail("campaign2", "2", model.DetailPatch{ProgressStatus: &stray})
	b, _ = e.Kanban("campaign2")
	if len(b.Columns[0].Members) != 1 || b.Columns[0].Members[0].Influencer.ID != "2" {
		t.Fatalf("unknown status should land in first column: %+v", b.Columns[0])
	}
	total := 0
	for _, c := range b.Columns {
		total += len(c.Members)
	}
	if total != 2 {
		t.Fatalf("members lost or duplicated: %d", total)
	}
	if _, ok := e.Kanban("nope"); ok {
		t.Fatalf("unknown campaign")
	}
}

func TestAddCandidates(t *testing.T) {
	_, e := newEngine()
	got := ids(e.AddCandidates("campaign1", "a"))
	if contains(got, "1") || contains(got, "5") {
		t.Fatalf("members must be excluded: %v", got)
	}
	if !contains(got, "2") || !contains(got, "3") {
		t.Fatalf("expected name matches: %v", got)
	}
	if e.AddCandidates("campaign1", "") != nil {
		t.Fatalf("empty term yields nothing")
	}
}
