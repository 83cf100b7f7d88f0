package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"collabhub/internal/model"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestInbox() *Inbox {
	n := 0
	return NewSeeded(testNow,
		WithLatency(0, 0),
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string { n++; return string(rune('a' + n - 1)) }),
	)
}

func ids(convs []model.Conversation) []string {
	out := make([]string, len(convs))
	for i, c := range convs {
		out[i] = c.ID
	}
	return out
}

func TestListAndGet(t *testing.T) {
	in := newTestInbox()
	got, err := in.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "conv1" || got[1].ID != "conv2" {
		t.Fatalf("list: %v", ids(got))
	}
	c, ok, err := in.Get(context.Background(), "conv2")
	if err != nil || !ok || c.InfluencerName != "Bella Cooks" || len(c.Messages) != 3 {
		t.Fatalf("get conv2: %+v ok=%v err=%v", c, ok, err)
	}
	if _, ok, _ := in.Get(context.Background(), "nope"); ok {
		t.Fatal("unknown id must not be found")
	}
}

func TestListHonorsContext(t *testing.T) {
	in := NewSeeded(testNow, WithLatency(time.Minute, time.Minute))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := in.List(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	in := newTestInbox()
	snap := in.Snapshot()
	snap[0].Messages[0].Content = "mutated"
	snap[1].Deliverables[0] = "mutated"
	again := in.Snapshot()
	if again[0].Messages[0].Content == "mutated" || again[1].Deliverables[0] == "mutated" {
		t.Fatal("snapshot aliases internal state")
	}
}

func TestSendMessage(t *testing.T) {
	in := newTestInbox()
	if err := in.SendMessage("conv2", "Thanks again!"); err != nil {
		t.Fatalf("send: %v", err)
	}
	got := in.Snapshot()
	if ids(got)[0] != "conv2" {
		t.Fatalf("most recent conversation must be first: %v", ids(got))
	}
	c := got[0]
	last := c.Messages[len(c.Messages)-1]
	if last.ID != "m_a" || last.Sender != model.SenderUser || last.Content != "Thanks again!" || !last.Timestamp.Equal(testNow) {
		t.Fatalf("appended message: %+v", last)
	}
	if c.LastMessage != "Thanks again!" || c.Unread || !c.Timestamp.Equal(testNow) {
		t.Fatalf("conversation not updated: %+v", c)
	}
}

func TestSendMessageRejectsEmpty(t *testing.T) {
	in := newTestInbox()
	if err := in.SendMessage("conv1", "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if n := len(in.Snapshot()[0].Messages); n != 3 {
		t.Fatalf("messages changed: %d", n)
	}
}

func TestSendMessageUnknownID(t *testing.T) {
	in := newTestInbox()
	if err := in.SendMessage("nope", "hi"); err != nil {
		t.Fatalf("unknown id: %v", err)
	}
	for _, c := range in.Snapshot() {
		if c.LastMessage == "hi" {
			t.Fatal("unknown id must not change any conversation")
		}
	}
}

func TestReorder(t *testing.T) {
	in := newTestInbox()
	in.Reorder(0, 1)
	if got := ids(in.Snapshot()); got[0] != "conv2" || got[1] != "conv1" {
		t.Fatalf("reorder: %v", got)
	}
	in.Reorder(0, 5)
	if got := ids(in.Snapshot()); got[0] != "conv2" {
		t.Fatalf("out-of-range reorder must be a no-op: %v", got)
	}
}

func TestApply(t *testing.T) {
	convs := Seed(testNow)
	cases := []struct {
		name string
		f    Filter
		want []string
	}{
		{"empty", Filter{}, []string{"conv1", "conv2"}},
		{"term", Filter{Term: "bella"}, []string{"conv2"}},
		{"campaign", Filter{Campaign: "Q4 Tech Campaign"}, []string{"conv1"}},
		{"progress", Filter{Progress: "Scope Done"}, []string{"conv2"}},
		{"content", Filter{Content: model.ContentNotLiveYet}, []string{"conv1"}},
		{"payment", Filter{Payment: model.PaymentFulfilled}, []string{"conv2"}},
		{"conjunction", Filter{Term: "alex", Payment: model.PaymentFulfilled}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Apply(convs, tc.f))
			if len(got) != len(tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v want %v", got, tc.want)
				}
			}
		})
	}
}

func TestCampaignNames(t *testing.T) {
	convs := Seed(testNow)
	convs = append(convs, model.Conversation{ID: "x", CampaignName: "Q4 Tech Campaign"}, model.Conversation{ID: "y"})
	got := CampaignNames(convs)
	if len(got) != 2 || got[0] != "Q4 Tech Campaign" || got[1] != "Summer Wellness Promo" {
		t.Fatalf("campaign names: %v", got)
	}
}
