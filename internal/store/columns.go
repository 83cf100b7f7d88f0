package store

import (
	"collabhub/internal/model"
	"collabhub/internal/ordering"
)

// AddCustomColumnToCampaign appends a custom column and returns it.
func (s *Store) AddCustomColumnToCampaign(campaignID, name string, typ model.ColumnType) (model.CustomColumn, bool) {
	s.mu.Lock()
	ci := s.campaignIndex(campaignID)
	if ci < 0 {
		s.mu.Unlock()
		return model.CustomColumn{}, false
	}
	col := model.CustomColumn{ID: "col_" + s.newID(), Name: name, Type: typ}
	c := &s.campaigns[ci]
	c.CustomColumns = append(append([]model.CustomColumn(nil), c.CustomColumns...), col)
	ch := s.commit(ChangeCustomColumnAdded, campaignID, nil)
	s.mu.Unlock()
	s.notify(ch)
	return col, true
}

// UpdateCampaignColumns replaces the kanban column list as given.
func (s *Store) UpdateCampaignColumns(campaignID string, columns []string) {
	s.mu.Lock()
	var changes []Change
	if ci := s.campaignIndex(campaignID); ci >= 0 {
		s.campaigns[ci].KanbanColumns = append([]string{}, columns...)
		changes = append(changes, s.commit(ChangeColumnsUpdated, campaignID, nil))
	}
	s.mu.Unlock()
	s.notify(changes...)
}

// ReorderKanbanColumns moves one kanban column within a campaign.
func (s *Store) ReorderKanbanColumns(campaignID string, from, to int) {
	s.mu.Lock()
	var changes []Change
	if ci := s.campaignIndex(campaignID); ci >= 0 && ordering.Valid(len(s.campaigns[ci].KanbanColumns), from, to) {
		s.campaigns[ci].KanbanColumns = ordering.Move(s.campaigns[ci].KanbanColumns, from, to)
		changes = append(changes, s.commit(ChangeColumnsUpdated, campaignID, nil))
	}
	s.mu.Unlock()
	s.notify(changes...)
}

// RenameCampaignColumn renames a kanban column and rewrites the progress
// status of every record in that campaign that pointed at the old name.
// Records of other campaigns are never touched.
func (s *Store) RenameCampaignColumn(campaignID, oldName, newName string) {
	if oldName == newName {
		return
	}
	s.mu.Lock()
	var touched []string
	renamed := false
	if ci := s.campaignIndex(campaignID); ci >= 0 {
		cols := append([]string(nil), s.campaigns[ci].KanbanColumns...)
		for i, name := range cols {
			if name == oldName {
				cols[i] = newName
				renamed = true
				break
			}
		}
		s.campaigns[ci].KanbanColumns = cols
	}
	for key, d := range s.details {
		if key.CampaignID == campaignID && d.ProgressStatus == oldName {
			d.ProgressStatus = newName
			s.details[key] = d
			touched = append(touched, key.InfluencerID)
		}
	}
	var changes []Change
	if renamed || len(touched) > 0 {
		changes = append(changes, s.commit(ChangeColumnRenamed, campaignID, touched))
	}
	s.mu.Unlock()
	s.notify(changes...)
}

// RemoveCampaignColumn removes every member whose progress status equals
// the column, then removes the column itself.
func (s *Store) RemoveCampaignColumn(campaignID, name string) {
	s.mu.Lock()
	var ids []string
	for key, d := range s.details {
		if key.CampaignID == campaignID && d.ProgressStatus == name {
			ids = append(ids, key.InfluencerID)
		}
	}
	var changes []Change
	if len(ids) > 0 {
		changes = append(changes, s.removeLocked(ids, campaignID)...)
	}
	if ci := s.campaignIndex(campaignID); ci >= 0 {
		kept := make([]string, 0, len(s.campaigns[ci].KanbanColumns))
		for _, c := range s.campaigns[ci].KanbanColumns {
			if c != name {
				kept = append(kept, c)
			}
		}
		if len(kept) != len(s.campaigns[ci].KanbanColumns) {
			s.campaigns[ci].KanbanColumns = kept
			changes = append(changes, s.commit(ChangeColumnRemoved, campaignID, ids))
		}
	}
	s.mu.Unlock()
	s.notify(changes...)
}
