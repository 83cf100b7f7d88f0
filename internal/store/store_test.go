package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"collabhub/internal/model"
)

func fixedClock() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) }

func newTestStore() *Store {
	n := 0
	return NewSeeded(WithClock(fixedClock), WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}))
}

func TestReadsAreCopies(t *testing.T) {
	s := newTestStore()
	pool := s.Influencers()
	pool[0].Name = "changed"
	pool[0].Categories[0] = "changed"
	if got, _ := s.Influencer(pool[0].ID); got.Name == "changed" || got.Categories[0] == "changed" {
		t.Fatalf("pool mutated through read copy")
	}
	cs := s.Campaigns()
	cs[0].Members.Add("99")
	cs[0].KanbanColumns[0] = "changed"
	c, _ := s.Campaign(cs[0].ID)
	if c.Members.Has("99") || c.KanbanColumns[0] == "changed" {
		t.Fatalf("campaign mutated through read copy")
	}
	d, ok := s.Detail("campaign1", "1")
	if !ok {
		t.Fatalf("seed detail missing")
	}
	d.CustomFields["col1"] = "changed"
	d.Budget.Value = 1
	again, _ := s.Detail("campaign1", "1")
	if again.CustomFields["col1"] != "Shipped" || again.Budget.Value != 5000 {
		t.Fatalf("detail mutated through read copy: %+v", again)
	}
}

func TestSeedKeepsLockstep(t *testing.T) {
	s := newTestStore()
	total := 0
	for _, c := range s.Campaigns() {
		for id := range c.Members {
			if _, ok := s.Detail(c.ID, id); !ok {
				t.Fatalf("member %s of %s has no record", id, c.ID)
			}
			total++
		}
	}
	if s.DetailCount() != total {
		t.Fatalf("records %d != memberships %d", s.DetailCount(), total)
	}
}

func TestSubscribeAndVersion(t *testing.T) {
	s := newTestStore()
	var got []Change
	cancel := s.Subscribe(func(c Change) { got = append(got, c) })
	v0 := s.Version()
	s.ReorderCampaigns(0, 2)
	s.ReorderCampaigns(1, 1)
	if s.Version() != v0+1 {
		t.Fatalf("version = %d, want %d", s.Version(), v0+1)
	}
	if len(got) != 1 || got[0].Kind != ChangeCampaignsReordered || got[0].Version != v0+1 {
		t.Fatalf("unexpected changes: %+v", got)
	}
	cancel()
	cancel()
	s.ReorderCampaigns(0, 1)
	if len(got) != 1 {
		t.Fatalf("listener called after cancel")
	}
}

func TestListenerCanReadStore(t *testing.T) {
	s := newTestStore()
	var names []string
	s.Subscribe(func(Change) {
		for _, c := range s.Campaigns() {
			names = append(names, c.Name)
		}
	})
	s.CreateCampaign(CampaignDraft{Name: "Spring Drop"})
	if len(names) != 4 || names[3] != "Spring Drop" {
		t.Fatalf("listener saw %v", names)
	}
}

func TestWatchCampaigns(t *testing.T) {
	s := newTestStore()
	ctx, cancel := context.WithCancel(context.Background())
	ch := s.WatchCampaigns(ctx)
	first := <-ch
	if len(first) != 3 {
		t.Fatalf("initial snapshot has %d campaigns", len(first))
	}
	s.DeleteCampaign("campaign2")
	select {
	case next := <-ch:
		if len(next) != 2 {
			t.Fatalf("snapshot after delete has %d campaigns", len(next))
		}
	case <-time.After(time.Second):
		t.Fatalf("no snapshot after mutation")
	}
	s.ReorderCampaigns(0, 1)
	s.ReorderCampaigns(0, 1)
	latest := <-ch
	if latest[0].ID != "campaign1" {
		t.Fatalf("expected latest snapshot only, got first=%s", latest[0].ID)
	}
	cancel()
	for range ch {
	}
}

func TestCreateAndReorderCampaigns(t *testing.T) {
	s := newTestStore()
	c := s.CreateCampaign(CampaignDraft{Name: "Holiday", Budget: 1000})
	if c.ID != "campaign_t1" || c.Members.Len() != 0 || len(c.KanbanColumns) != len(model.DefaultKanbanColumns) {
		t.Fatalf("unexpected campaign: %+v", c)
	}
	blank := s.CreateBlankCampaign()
	if blank.Name != "New Campaign 3/14/2025" || blank.Budget != 0 {
		t.Fatalf("unexpected blank campaign: %+v", blank)
	}
	s.ReorderCampaigns(4, 0)
	ids := []string{}
	for _, c := range s.Campaigns() {
		ids = append(ids, c.ID)
	}
	want := []string{blank.ID, "campaign1", "campaign2", "campaign3", c.ID}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("order = %v, want %v", ids, want)
		}
	}
}
