package store

import (
	"strings"

	"collabhub/internal/model"
)

const isoDate = "2006-01-02"

func ptr[T any](v T) *T { return &v }

// AddInfluencerToCampaign puts inf into the pool if its id is unknown, adds
// it to the campaign's members and (re)computes its detail record. Defaults
// are applied first, then date-typed or "Start Date" custom columns get
// today's date, then overrides win over both. Documents and deliverables of
// an existing record survive a re-add. Unknown campaigns only affect the pool.
func (s *Store) AddInfluencerToCampaign(inf model.Influencer, campaignID string, overrides *model.DetailPatch) {
	s.mu.Lock()
	changes := s.addLocked(inf, campaignID, overrides)
	s.mu.Unlock()
	s.notify(changes...)
}

// AddInfluencersToCampaign adds each influencer in order. Entries are
// independent; there is no rollback.
func (s *Store) AddInfluencersToCampaign(list []model.Influencer, campaignID string) {
	for _, inf := range list {
		s.AddInfluencerToCampaign(inf, campaignID, nil)
	}
}

func (s *Store) addLocked(inf model.Influencer, campaignID string, overrides *model.DetailPatch) []Change {
	pooled := false
	if s.influencerIndex(inf.ID) < 0 {
		s.influencers = append(s.influencers, inf.Clone())
		pooled = true
	}
	ci := s.campaignIndex(campaignID)
	if ci < 0 {
		if pooled {
			return []Change{s.commit(ChangeInfluencerAdded, "", []string{inf.ID})}
		}
		return nil
	}
	c := &s.campaigns[ci]
	members := c.Members.Clone()
	members.Add(inf.ID)
	c.Members = members

	custom := make(map[string]string)
	today := s.now().Format(isoDate)
	for _, col := range c.CustomColumns {
		if col.Type == model.ColumnDate || strings.EqualFold(col.Name, "start date") {
			custom[col.ID] = today
		}
	}
	base := model.DetailPatch{
		Source:                ptr(model.Outbound),
		ProgressStatus:        ptr(model.DefaultProgressStatus),
		ContentDeliveryStatus: ptr(model.ContentNotLiveYet),
		PaymentStatus:         ptr(model.PaymentAwaiting),
		ClearBudget:           true,
		Notes:                 ptr(inf.Notes),
		CustomFields:          custom,
	}
	key := DetailKey{campaignID, inf.ID}
	existing, ok := s.details[key]
	if !ok {
		existing = model.DefaultDetail()
	}
	d := base.Apply(existing)
	if overrides != nil {
		d = overrides.Apply(d)
	}
	s.details[key] = d
	return []Change{s.commit(ChangeInfluencerAdded, campaignID, []string{inf.ID})}
}

// RemoveInfluencersFromCampaign drops the ids from the campaign and deletes
// their detail records. Ids that are not members are ignored.
func (s *Store) RemoveInfluencersFromCampaign(ids []string, campaignID string) {
	s.mu.Lock()
	changes := s.removeLocked(ids, campaignID)
	s.mu.Unlock()
	s.notify(changes...)
}

func (s *Store) removeLocked(ids []string, campaignID string) []Change {
	var removed []string
	if ci := s.campaignIndex(campaignID); ci >= 0 {
		c := &s.campaigns[ci]
		members := c.Members.Clone()
		for _, id := range ids {
			if members.Has(id) {
				members.Delete(id)
				removed = append(removed, id)
			}
		}
		c.Members = members
	}
	dropped := false
	for _, id := range ids {
		key := DetailKey{campaignID, id}
		if _, ok := s.details[key]; ok {
			delete(s.details, key)
			dropped = true
		}
	}
	if len(removed) == 0 && !dropped {
		return nil
	}
	return []Change{s.commit(ChangeMembersRemoved, campaignID, removed)}
}

// MoveInfluencersToCampaign relocates members of fromID to toID, carrying
// their detail records over unchanged. A record already present under the
// destination is replaced. Both campaigns must exist.
func (s *Store) MoveInfluencersToCampaign(ids []string, fromID, toID string) {
	s.mu.Lock()
	var changes []Change
	fi, ti := s.campaignIndex(fromID), s.campaignIndex(toID)
	if fi >= 0 && ti >= 0 && fromID != toID {
		from, to := s.campaigns[fi].Members.Clone(), s.campaigns[ti].Members.Clone()
		var moved []string
		for _, id := range ids {
			if !from.Has(id) {
				continue
			}
			from.Delete(id)
			to.Add(id)
			src := DetailKey{fromID, id}
			d, ok := s.details[src]
			if !ok {
				d = model.DefaultDetail()
			}
			delete(s.details, src)
			s.details[DetailKey{toID, id}] = d
			moved = append(moved, id)
		}
		s.campaigns[fi].Members, s.campaigns[ti].Members = from, to
		if len(moved) > 0 {
			changes = append(changes, s.commit(ChangeMembersMoved, toID, moved))
		}
	}
	s.mu.Unlock()
	s.notify(changes...)
}

// UpdateInfluencerDetail merges patch into the member's record, creating a
// default record first if none exists. Non-members are ignored so that
// membership and records stay in lockstep.
func (s *Store) UpdateInfluencerDetail(campaignID, influencerID string, patch model.DetailPatch) {
	s.mu.Lock()
	var changes []Change
	if ci := s.campaignIndex(campaignID); ci >= 0 && s.campaigns[ci].Members.Has(influencerID) {
		key := DetailKey{campaignID, influencerID}
		d, ok := s.details[key]
		if !ok {
			d = model.DefaultDetail()
		}
		s.details[key] = patch.Apply(d)
		changes = append(changes, s.commit(ChangeDetailUpdated, campaignID, []string{influencerID}))
	}
	s.mu.Unlock()
	s.notify(changes...)
}

// IsInfluencerInAnyCampaign reports whether any campaign lists the id.
func (s *Store) IsInfluencerInAnyCampaign(influencerID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.campaigns {
		if c.Members.Has(influencerID) {
			return true
		}
	}
	return false
}
