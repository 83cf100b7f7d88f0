package store

import (
	"fmt"
	"math/rand/v2"

	"collabhub/internal/model"
	"collabhub/internal/ordering"
)

// CampaignDraft holds the user-editable fields of a new campaign.
type CampaignDraft struct {
	Name        string
	Description string
	Budget      float64
	AvatarURL   string
	BannerURL   string
}

// CreateCampaign appends a campaign with no members, no custom columns and
// the default kanban pipeline.
func (s *Store) CreateCampaign(draft CampaignDraft) model.Campaign {
	s.mu.Lock()
	c := model.Campaign{
		ID:            "campaign_" + s.newID(),
		Name:          draft.Name,
		Description:   draft.Description,
		Budget:        draft.Budget,
		AvatarURL:     draft.AvatarURL,
		BannerURL:     draft.BannerURL,
		Members:       model.NewIDSet(),
		CustomColumns: []model.CustomColumn{},
		KanbanColumns: append([]string(nil), model.DefaultKanbanColumns...),
	}
	s.campaigns = append(s.campaigns, c)
	ch := s.commit(ChangeCampaignCreated, c.ID, nil)
	s.mu.Unlock()
	s.notify(ch)
	return c.Clone()
}

// CreateBlankCampaign creates a placeholder campaign named after today.
func (s *Store) CreateBlankCampaign() model.Campaign {
	return s.CreateCampaign(CampaignDraft{
		Name:      "New Campaign " + s.now().Format("1/2/2006"),
		AvatarURL: fmt.Sprintf("https://picsum.photos/id/%d/40/40", rand.IntN(50)),
		BannerURL: fmt.Sprintf("https://picsum.photos/id/%d/600/300", rand.IntN(50)),
	})
}

// DeleteCampaign removes the campaign and every detail record under it.
func (s *Store) DeleteCampaign(campaignID string) {
	s.mu.Lock()
	var changes []Change
	ci := s.campaignIndex(campaignID)
	if ci >= 0 {
		s.campaigns = append(s.campaigns[:ci:ci], s.campaigns[ci+1:]...)
	}
	var dropped []string
	for key := range s.details {
		if key.CampaignID == campaignID {
			delete(s.details, key)
			dropped = append(dropped, key.InfluencerID)
		}
	}
	if ci >= 0 || len(dropped) > 0 {
		changes = append(changes, s.commit(ChangeCampaignDeleted, campaignID, dropped))
	}
	s.mu.Unlock()
	s.notify(changes...)
}

// ReorderCampaigns moves one campaign within the display sequence.
func (s *Store) ReorderCampaigns(from, to int) {
	s.mu.Lock()
	var changes []Change
	if ordering.Valid(len(s.campaigns), from, to) {
		s.campaigns = ordering.Move(s.campaigns, from, to)
		changes = append(changes, s.commit(ChangeCampaignsReordered, "", nil))
	}
	s.mu.Unlock()
	s.notify(changes...)
}
