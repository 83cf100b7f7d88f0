package query

import (
	"collabhub/internal/model"
	"collabhub/internal/util"
)

// Column is one kanban stage and the members currently in it.
type Column struct {
	Name    string
	Members []model.CampaignInfluencer
}

// Board is a campaign's pipeline grouped by progress status.
type Board struct {
	CampaignID string
	Columns    []Column
}

// Kanban groups the campaign's members by progress status, columns in the
// campaign's order. A member whose status is empty or not a column of the
// campaign lands in the first column. ok is false for unknown campaigns.
func (e *Engine) Kanban(campaignID string) (b Board, ok bool) {
	c, ok := e.r.Campaign(campaignID)
	if !ok {
		return Board{}, false
	}
	b.CampaignID = c.ID
	index := make(map[string]int, len(c.KanbanColumns))
	for i, name := range c.KanbanColumns {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
		b.Columns = append(b.Columns, Column{Name: name})
	}
	if len(b.Columns) == 0 {
		return b, true
	}
	for _, row := range e.join(c, e.r.Influencers()) {
		i, found := index[row.Detail.ProgressStatus]
		if !found {
			i = 0
		}
		b.Columns[i].Members = append(b.Columns[i].Members, row)
	}
	return b, true
}

// AddCandidates lists pool entries not yet in the campaign whose name or
// handle contains term. An empty term or unknown campaign yields nil.
func (e *Engine) AddCandidates(campaignID, term string) []model.Influencer {
	c, ok := e.r.Campaign(campaignID)
	if !ok || term == "" {
		return nil
	}
	var out []model.Influencer
	for _, inf := range e.r.Influencers() {
		if c.Members.Has(inf.ID) {
			continue
		}
		if util.ContainsFold(inf.Name, term) || util.ContainsFold(inf.Handle, term) {
			out = append(out, inf)
		}
	}
	return out
}
