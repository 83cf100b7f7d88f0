// Package query derives read-only views from the entity store: search
// filtering, campaign membership joins, kanban boards and suggestions.
package query

import (
	"context"
	"time"

	"collabhub/internal/metrics"
	"collabhub/internal/model"
)

// Reader is the read side of the entity store.
type Reader interface {
	Influencers() []model.Influencer
	Influencer(id string) (model.Influencer, bool)
	Campaigns() []model.Campaign
	Campaign(id string) (model.Campaign, bool)
	Detail(campaignID, influencerID string) (model.Detail, bool)
}

// DefaultLatency is the simulated network delay of Search.
const DefaultLatency = 500 * time.Millisecond

// Engine evaluates queries against a Reader. It never mutates the store.
type Engine struct {
	r       Reader
	latency time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithLatency sets the simulated delay of Search; zero disables it.
func WithLatency(d time.Duration) Option { return func(e *Engine) { e.latency = d } }

func New(r Reader, opts ...Option) *Engine {
	e := &Engine{r: r, latency: DefaultLatency}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Search filters the pool after the configured latency. The result is
// computed from the snapshot taken when the delay ends. Cancelling ctx
// abandons the call.
func (e *Engine) Search(ctx context.Context, c Criteria) ([]model.Influencer, error) {
	start := time.Now()
	metrics.SearchRuns.Inc()
	if e.latency > 0 {
		t := time.NewTimer(e.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			metrics.SearchErrors.Inc()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	out := Filter(e.r.Influencers(), c)
	metrics.ObserveSearchDuration(start)
	return out, nil
}

// InfluencersForCampaign returns the campaign's members in pool order, each
// joined with its record. Unknown campaigns yield nil.
func (e *Engine) InfluencersForCampaign(campaignID string) []model.CampaignInfluencer {
	c, ok := e.r.Campaign(campaignID)
	if !ok {
		return nil
	}
	return e.join(c, e.r.Influencers())
}

func (e *Engine) join(c model.Campaign, pool []model.Influencer) []model.CampaignInfluencer {
	var out []model.CampaignInfluencer
	for _, inf := range pool {
		if !c.Members.Has(inf.ID) {
			continue
		}
		d, ok := e.r.Detail(c.ID, inf.ID)
		if !ok {
			continue
		}
		out = append(out, model.CampaignInfluencer{Influencer: inf, Detail: d, CampaignID: c.ID, CampaignName: c.Name})
	}
	return out
}

// Profile is an influencer with its record in every campaign it belongs to.
type Profile struct {
	Influencer model.Influencer
	Campaigns  []model.CampaignInfluencer
}

// InfluencerWithDetails returns the influencer's profile; the entries
// follow campaign display order. ok is false only for unknown ids.
func (e *Engine) InfluencerWithDetails(influencerID string) (p Profile, ok bool) {
	inf, ok := e.r.Influencer(influencerID)
	if !ok {
		return Profile{}, false
	}
	p.Influencer = inf
	for _, c := range e.r.Campaigns() {
		if !c.Members.Has(influencerID) {
			continue
		}
		if d, ok := e.r.Detail(c.ID, influencerID); ok {
			p.Campaigns = append(p.Campaigns, model.CampaignInfluencer{Influencer: inf, Detail: d, CampaignID: c.ID, CampaignName: c.Name})
		}
	}
	return p, true
}

// AllInfluencersWithCampaignDetails flattens every (campaign, member) pair,
// campaigns in display order and members in pool order.
func (e *Engine) AllInfluencersWithCampaignDetails() []model.CampaignInfluencer {
	pool := e.r.Influencers()
	var out []model.CampaignInfluencer
	for _, c := range e.r.Campaigns() {
		out = append(out, e.join(c, pool)...)
	}
	return out
}

// SuggestedInfluencers returns up to limit influencers that belong to some
// other campaign but not to this one, in pool order.
func (e *Engine) SuggestedInfluencers(campaignID string, limit int) []model.Influencer {
	target, ok := e.r.Campaign(campaignID)
	if !ok || limit <= 0 {
		return nil
	}
	elsewhere := model.NewIDSet()
	for _, c := range e.r.Campaigns() {
		for id := range c.Members {
			if !target.Members.Has(id) {
				elsewhere.Add(id)
			}
		}
	}
	var out []model.Influencer
	for _, inf := range e.r.Influencers() {
		if len(out) == limit {
			break
		}
		if elsewhere.Has(inf.ID) {
			out = append(out, inf)
		}
	}
	return out
}

// IsInfluencerInAnyCampaign reports whether any campaign lists the id.
func (e *Engine) IsInfluencerInAnyCampaign(influencerID string) bool {
	for _, c := range e.r.Campaigns() {
		if c.Members.Has(influencerID) {
			return true
		}
	}
	return false
}
