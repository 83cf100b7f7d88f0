// Package conversation holds the inbox: message threads with influencers,
// enriched with the campaign status they relate to.
package conversation

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"collabhub/internal/model"
	"collabhub/internal/ordering"
	"collabhub/internal/util"
)

// ErrEmptyMessage is returned when a message has no content.
var ErrEmptyMessage = errors.New("conversation: empty message")

const (
	DefaultListLatency = 300 * time.Millisecond
	DefaultGetLatency  = 100 * time.Millisecond
)

// Inbox is an ordered, in-memory list of conversations.
type Inbox struct {
	mu    sync.RWMutex
	convs []model.Conversation

	listLatency time.Duration
	getLatency  time.Duration
	now         func() time.Time
	newID       func() string
}

type Option func(*Inbox)

// WithLatency sets the simulated delays of List and Get.
func WithLatency(list, get time.Duration) Option {
	return func(in *Inbox) { in.listLatency, in.getLatency = list, get }
}

func WithClock(now func() time.Time) Option { return func(in *Inbox) { in.now = now } }

func WithIDGenerator(f func() string) Option { return func(in *Inbox) { in.newID = f } }

// New builds an inbox holding copies of seed, in the given order.
func New(seed []model.Conversation, opts ...Option) *Inbox {
	in := &Inbox{
		listLatency: DefaultListLatency,
		getLatency:  DefaultGetLatency,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, o := range opts {
		o(in)
	}
	for _, c := range seed {
		in.convs = append(in.convs, c.Clone())
	}
	return in
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// List returns every conversation after the list latency.
func (in *Inbox) List(ctx context.Context) ([]model.Conversation, error) {
	if err := wait(ctx, in.listLatency); err != nil {
		return nil, err
	}
	return in.Snapshot(), nil
}

// Get returns one conversation after the get latency; ok is false when the
// id is unknown.
func (in *Inbox) Get(ctx context.Context, id string) (c model.Conversation, ok bool, err error) {
	if err := wait(ctx, in.getLatency); err != nil {
		return model.Conversation{}, false, err
	}
	in.mu.RLock()
	defer in.mu.RUnlock()
	for _, c := range in.convs {
		if c.ID == id {
			return c.Clone(), true, nil
		}
	}
	return model.Conversation{}, false, nil
}

// Snapshot copies the current list without delay.
func (in *Inbox) Snapshot() []model.Conversation {
	in.mu.RLock()
	defer in.mu.RUnlock()
	out := make([]model.Conversation, len(in.convs))
	for i, c := range in.convs {
		out[i] = c.Clone()
	}
	return out
}

// SendMessage appends a user message to the conversation, marks it read
// and moves the most recent conversations to the top. Unknown ids change
// nothing but the order.
func (in *Inbox) SendMessage(id, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyMessage
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	now := in.now()
	for i := range in.convs {
		c := &in.convs[i]
		if c.ID != id {
			continue
		}
		c.Messages = append(c.Messages, model.Message{
			ID:        "m_" + in.newID(),
			Sender:    model.SenderUser,
			Content:   content,
			Timestamp: now,
		})
		c.LastMessage = content
		c.Timestamp = now
		c.Unread = false
		break
	}
	sort.SliceStable(in.convs, func(i, j int) bool {
		return in.convs[i].Timestamp.After(in.convs[j].Timestamp)
	})
	return nil
}

// Reorder moves the conversation at from to position to.
func (in *Inbox) Reorder(from, to int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.convs = ordering.Move(in.convs, from, to)
}

// Filter narrows an inbox listing. Empty fields match everything.
type Filter struct {
	Term     string // substring of the influencer name, case-insensitive
	Campaign string
	Progress string
	Content  model.ContentDeliveryStatus
	Payment  model.PaymentStatus
}

// Apply keeps the conversations matching every set field of f.
func Apply(convs []model.Conversation, f Filter) []model.Conversation {
	term := strings.TrimSpace(f.Term)
	var out []model.Conversation
	for _, c := range convs {
		if term != "" && !util.ContainsFold(c.InfluencerName, term) {
			continue
		}
		if f.Campaign != "" && c.CampaignName != f.Campaign {
			continue
		}
		if f.Progress != "" && c.ProgressStatus != f.Progress {
			continue
		}
		if f.Content != "" && c.ContentDeliveryStatus != f.Content {
			continue
		}
		if f.Payment != "" && c.PaymentStatus != f.Payment {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CampaignNames lists distinct non-empty campaign names in first-seen order.
func CampaignNames(convs []model.Conversation) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, c := range convs {
		if c.CampaignName == "" {
			continue
		}
		if _, ok := seen[c.CampaignName]; ok {
			continue
		}
		seen[c.CampaignName] = struct{}{}
		out = append(out, c.CampaignName)
	}
	return out
}
