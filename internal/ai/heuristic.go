package ai

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"collabhub/internal/model"
	"collabhub/internal/util"
)

// Heuristic answers without a network: discovery ranks Pool by how well
// each profile matches the description, text answers are templated.
type Heuristic struct {
	Pool  func() []model.Influencer
	Limit int // max discovery results; 0 means DiscoveryCount
}

func (h *Heuristic) limit() int {
	if h.Limit > 0 {
		return h.Limit
	}
	return DiscoveryCount
}

// relevance scores inf against description tokens. Category hits weigh
// double.
func relevance(inf model.Influencer, tokens []string) int {
	cats := util.Tokenize(strings.Join(inf.Categories, " "))
	ident := util.Tokenize(inf.Name + " " + inf.Handle + " " + inf.Country)
	var plats []string
	for _, p := range inf.Platforms {
		plats = append(plats, util.Fold(string(p.Name)))
	}
	score := 0
	for _, t := range tokens {
		if len(t) < 3 {
			continue
		}
		for _, c := range cats {
			if len(c) < 3 {
				continue
			}
			if strings.HasPrefix(c, t) || strings.HasPrefix(t, c) {
				score += 2
				break
			}
		}
		for _, w := range ident {
			if w == t {
				score++
				break
			}
		}
		for _, p := range plats {
			if p == t {
				score++
				break
			}
		}
	}
	return score
}

func (h *Heuristic) FindInfluencers(ctx context.Context, description string) ([]model.Influencer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if h.Pool == nil {
		return nil, ErrNotConfigured
	}
	tokens := util.Tokenize(description)
	type ranked struct {
		inf   model.Influencer
		score int
	}
	var rs []ranked
	for _, inf := range h.Pool() {
		if s := relevance(inf, tokens); s > 0 {
			rs = append(rs, ranked{inf, s})
		}
	}
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].score != rs[j].score {
			return rs[i].score > rs[j].score
		}
		return rs[i].inf.Followers > rs[j].inf.Followers
	})
	out := []model.Influencer{}
	for _, r := range rs {
		if len(out) == h.limit() {
			break
		}
		out = append(out, r.inf.Clone())
	}
	return out, nil
}

func (h *Heuristic) Summarize(ctx context.Context, inf model.Influencer) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("Based on recent interactions, %s is highly interested in a potential collaboration. "+
		"They have responded positively to outreach, showing particular excitement about creative freedom. "+
		"Key negotiation points will likely be the budget, which they feel is slightly below their usual rate, and the content approval timeline. "+
		"They are professional, responsive, and seem like a strong partner for this campaign.", inf.Name), nil
}

func (h *Heuristic) CampaignInsights(ctx context.Context, campaignName string, rows []model.CampaignInfluencer) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return fmt.Sprintf("Analysis for %s: no influencers yet. Add members to start tracking performance.", campaignName), nil
	}
	var sum float64
	best := rows[0]
	live := 0
	for _, r := range rows {
		sum += r.Influencer.EngagementRate
		if r.Influencer.EngagementRate > best.Influencer.EngagementRate {
			best = r
		}
		if r.Detail.ContentDeliveryStatus == model.ContentLive {
			live++
		}
	}
	avg := sum / float64(len(rows))
	return fmt.Sprintf("Analysis for %s: %d of %d influencers have live content, with an average engagement rate of %.1f%%. "+
		"%s leads at %.1f%%. Recommendation: prioritise follow-ups on content that is not live yet and lean on the strongest performers.",
		campaignName, live, len(rows), avg, best.Influencer.Name, best.Influencer.EngagementRate), nil
}
