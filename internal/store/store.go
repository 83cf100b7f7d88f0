// Package store holds the authoritative in-memory influencer pool, campaign
// sequence and per-(campaign, influencer) detail records.
//
// Reads return deep copies. Writes go through the relationship operations
// defined in this package; each committed write bumps Version and notifies
// subscribers synchronously, after the store lock has been released.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"collabhub/internal/model"
)

// DetailKey addresses one detail record.
type DetailKey struct {
	CampaignID   string
	InfluencerID string
}

// ChangeKind names the operation that produced a Change.
type ChangeKind string

const (
	ChangeInfluencerAdded    ChangeKind = "influencer_added"
	ChangeMembersRemoved     ChangeKind = "members_removed"
	ChangeMembersMoved       ChangeKind = "members_moved"
	ChangeDetailUpdated      ChangeKind = "detail_updated"
	ChangeCampaignCreated    ChangeKind = "campaign_created"
	ChangeCampaignDeleted    ChangeKind = "campaign_deleted"
	ChangeCampaignsReordered ChangeKind = "campaigns_reordered"
	ChangeColumnsUpdated     ChangeKind = "columns_updated"
	ChangeColumnRenamed      ChangeKind = "column_renamed"
	ChangeColumnRemoved      ChangeKind = "column_removed"
	ChangeCustomColumnAdded  ChangeKind = "custom_column_added"
)

// Change describes one committed mutation.
type Change struct {
	Kind          ChangeKind
	CampaignID    string
	InfluencerIDs []string
	Version       uint64
}

// Listener receives changes. It may read from the store but must not block.
type Listener func(Change)

// Store is safe for use by multiple goroutines.
type Store struct {
	mu          sync.RWMutex
	influencers []model.Influencer
	campaigns   []model.Campaign
	details     map[DetailKey]model.Detail
	version     uint64

	lmu       sync.Mutex
	listeners map[int]Listener
	nextID    int

	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for date auto-population and
// generated campaign names.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithIDGenerator overrides the id source for new campaigns and columns.
func WithIDGenerator(f func() string) Option { return func(s *Store) { s.newID = f } }

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		details:   make(map[DetailKey]model.Detail),
		listeners: make(map[int]Listener),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Version returns a stamp that increases with every committed mutation.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Subscribe registers fn and returns a function that unregisters it.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	s.lmu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.lmu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			s.lmu.Lock()
			delete(s.listeners, id)
			s.lmu.Unlock()
		})
	}
}

// commit bumps the version; callers hold s.mu.
func (s *Store) commit(kind ChangeKind, campaignID string, ids []string) Change {
	s.version++
	return Change{Kind: kind, CampaignID: campaignID, InfluencerIDs: append([]string(nil), ids...), Version: s.version}
}

// notify fans out to listeners; callers must not hold s.mu.
func (s *Store) notify(changes ...Change) {
	if len(changes) == 0 {
		return
	}
	s.lmu.Lock()
	ls := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	s.lmu.Unlock()
	for _, c := range changes {
		for _, l := range ls {
			l(c)
		}
	}
}

// Influencers returns the canonical pool in insertion order.
func (s *Store) Influencers() []model.Influencer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Influencer, len(s.influencers))
	for i, inf := range s.influencers {
		out[i] = inf.Clone()
	}
	return out
}

// Influencer looks up one pool entry.
func (s *Store) Influencer(id string) (model.Influencer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.influencerIndex(id); i >= 0 {
		return s.influencers[i].Clone(), true
	}
	return model.Influencer{}, false
}

// Campaigns returns the campaign sequence in display order.
func (s *Store) Campaigns() []model.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.campaignsLocked()
}

func (s *Store) campaignsLocked() []model.Campaign {
	out := make([]model.Campaign, len(s.campaigns))
	for i, c := range s.campaigns {
		out[i] = c.Clone()
	}
	return out
}

// Campaign looks up one campaign.
func (s *Store) Campaign(id string) (model.Campaign, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.campaignIndex(id); i >= 0 {
		return s.campaigns[i].Clone(), true
	}
	return model.Campaign{}, false
}

// Detail looks up the record for a campaign member.
func (s *Store) Detail(campaignID, influencerID string) (model.Detail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.details[DetailKey{campaignID, influencerID}]
	if !ok {
		return model.Detail{}, false
	}
	return d.Clone(), true
}

// DetailCount returns the number of detail records, across all campaigns.
func (s *Store) DetailCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.details)
}

// WatchCampaigns streams campaign snapshots: the current one immediately,
// then one after every mutation. A slow reader only sees the latest
// snapshot. The channel is closed once ctx is done.
func (s *Store) WatchCampaigns(ctx context.Context) <-chan []model.Campaign {
	out := make(chan []model.Campaign, 1)
	var (
		mu     sync.Mutex
		closed bool
	)
	push := func() {
		snap := s.Campaigns()
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case <-out:
		default:
		}
		out <- snap
	}
	cancel := s.Subscribe(func(Change) { push() })
	push()
	go func() {
		<-ctx.Done()
		cancel()
		mu.Lock()
		closed = true
		close(out)
		mu.Unlock()
	}()
	return out
}

func (s *Store) influencerIndex(id string) int {
	for i := range s.influencers {
		if s.influencers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) campaignIndex(id string) int {
	for i := range s.campaigns {
		if s.campaigns[i].ID == id {
			return i
		}
	}
	return -1
}
