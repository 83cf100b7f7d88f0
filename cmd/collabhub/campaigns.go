package main

import (
	"fmt"
	"strings"

	"collabhub/internal/model"
	"collabhub/internal/ordering"
	"collabhub/internal/store"
)

func printCampaigns(cs []model.Campaign) {
	for i, c := range cs {
		fmt.Printf("%2d  %-22s %-28s members=%d budget=%s\n", i, c.ID, c.Name, c.Members.Len(), model.GroupDigits(int(c.Budget)))
	}
}

// dragMove runs a pick-up/drop cycle that ends in apply.
func dragMove(pair string, apply func(from, to int)) error {
	from, to, err := parsePair(pair)
	if err != nil {
		return err
	}
	var d ordering.Drag
	d.PickUp(from)
	if !d.Drop(to, apply) {
		fmt.Println("Nothing to move")
	}
	return nil
}

func cmdCampaigns(args []string) error {
	fs, cfgPath := newFlags("campaigns")
	create := fs.String("create", "", "create a campaign with this name")
	desc := fs.String("description", "", "description of the new campaign")
	budget := fs.Float64("budget", 0, "budget of the new campaign")
	blank := fs.Bool("blank", false, "create a blank campaign")
	del := fs.String("delete", "", "delete the campaign with this id")
	reorder := fs.String("reorder", "", "move a campaign: from,to")
	_ = fs.Parse(args)

	a, err := openWorkspace(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()

	if *create != "" {
		c := a.store.CreateCampaign(store.CampaignDraft{Name: *create, Description: *desc, Budget: *budget})
		fmt.Println("Created", c.ID)
	}
	if *blank {
		c := a.store.CreateBlankCampaign()
		fmt.Println("Created", c.ID, c.Name)
	}
	if *del != "" {
		if _, ok := a.store.Campaign(*del); !ok {
			return fmt.Errorf("unknown campaign %q", *del)
		}
		a.store.DeleteCampaign(*del)
		fmt.Println("Deleted", *del)
	}
	if *reorder != "" {
		if err := dragMove(*reorder, a.store.ReorderCampaigns); err != nil {
			return err
		}
	}
	printCampaigns(a.store.Campaigns())
	return nil
}

func printBoard(a *app, campaignID string) error {
	b, ok := a.engine.Kanban(campaignID)
	if !ok {
		return fmt.Errorf("unknown campaign %q", campaignID)
	}
	for i, col := range b.Columns {
		fmt.Printf("[%d] %s (%d)\n", i, col.Name, len(col.Members))
		for _, m := range col.Members {
			fmt.Printf("      %-6s %-18s %s\n", m.Influencer.ID, m.Influencer.Name, m.Detail.PaymentStatus)
		}
	}
	return nil
}

func cmdKanban(args []string) error {
	fs, cfgPath := newFlags("kanban")
	campaign := fs.String("campaign", "", "campaign id")
	moveColumn := fs.String("move-column", "", "reorder columns: from,to")
	rename := fs.String("rename", "", "rename a column: old=new")
	removeColumn := fs.String("remove-column", "", "remove a column and its members")
	setColumns := fs.String("set-columns", "", "replace the column list: a,b,c")
	status := fs.String("status", "", "move a card: influencerID=Column")
	_ = fs.Parse(args)

	a, err := openWorkspace(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	if _, ok := a.store.Campaign(*campaign); !ok {
		return fmt.Errorf("unknown campaign %q", *campaign)
	}

	if *setColumns != "" {
		a.store.UpdateCampaignColumns(*campaign, splitList(*setColumns))
	}
	if *moveColumn != "" {
		err := dragMove(*moveColumn, func(from, to int) { a.store.ReorderKanbanColumns(*campaign, from, to) })
		if err != nil {
			return err
		}
	}
	if *rename != "" {
		oldName, newName, ok := strings.Cut(*rename, "=")
		if !ok || strings.TrimSpace(newName) == "" {
			return fmt.Errorf("want old=new: %q", *rename)
		}
		a.store.RenameCampaignColumn(*campaign, strings.TrimSpace(oldName), strings.TrimSpace(newName))
	}
	if *removeColumn != "" {
		a.store.RemoveCampaignColumn(*campaign, *removeColumn)
	}
	if *status != "" {
		id, col, ok := strings.Cut(*status, "=")
		if !ok {
			return fmt.Errorf("want influencerID=Column: %q", *status)
		}
		col = strings.TrimSpace(col)
		a.store.UpdateInfluencerDetail(*campaign, strings.TrimSpace(id), model.DetailPatch{ProgressStatus: &col})
	}
	return printBoard(a, *campaign)
}

func parseContent(s string) (model.ContentDeliveryStatus, error) {
	for _, v := range []model.ContentDeliveryStatus{model.ContentLive, model.ContentNotLiveYet, model.ContentPartiallyDone} {
		if strings.EqualFold(string(v), s) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown content status %q", s)
}

func parsePayment(s string) (model.PaymentStatus, error) {
	for _, v := range []model.PaymentStatus{model.PaymentAwaiting, model.PaymentPartiallyMade, model.PaymentFulfilled} {
		if strings.EqualFold(string(v), s) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

func cmdManage(args []string) error {
	fs, cfgPath := newFlags("manage")
	campaign := fs.String("campaign", "", "campaign id")
	influencer := fs.String("influencer", "", "member to update")
	progress := fs.String("progress", "", "progress status")
	content := fs.String("content", "", "content status: Live, Not Live Yet, Partially Done")
	payment := fs.String("payment", "", "payment status: Awaiting, Partially Made, Fulfilled")
	budget := fs.Float64("budget", -1, "budget amount")
	currency := fs.String("currency", "USD", "budget currency")
	notes := fs.String("notes", "", "notes")
	deliverables := fs.String("deliverables", "", "comma-separated deliverable links")
	field := fs.String("field", "", "custom column value: columnID=value")
	addColumn := fs.String("add-column", "", "add a custom column with this name")
	columnType := fs.String("column-type", string(model.ColumnText), "custom column type: text, link, date, number")
	_ = fs.Parse(args)

	a, err := openWorkspace(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	c, ok := a.store.Campaign(*campaign)
	if !ok {
		return fmt.Errorf("unknown campaign %q", *campaign)
	}

	if *addColumn != "" {
		typ := model.ColumnType(strings.ToLower(*columnType))
		if !typ.Valid() {
			return fmt.Errorf("unknown column type %q", *columnType)
		}
		col, _ := a.store.AddCustomColumnToCampaign(*campaign, *addColumn, typ)
		fmt.Println("Added column", col.ID)
	}
	if *influencer != "" {
		var p model.DetailPatch
		if *progress != "" {
			p.ProgressStatus = progress
		}
		if *content != "" {
			v, err := parseContent(*content)
			if err != nil {
				return err
			}
			p.ContentDeliveryStatus = &v
		}
		if *payment != "" {
			v, err := parsePayment(*payment)
			if err != nil {
				return err
			}
			p.PaymentStatus = &v
		}
		if *budget >= 0 {
			p.Budget = &model.Budget{Value: *budget, Currency: strings.ToUpper(*currency)}
		}
		if *notes != "" {
			p.Notes = notes
		}
		if *deliverables != "" {
			p.Deliverables = splitList(*deliverables)
		}
		if *field != "" {
			k, v, ok := strings.Cut(*field, "=")
			if !ok {
				return fmt.Errorf("want columnID=value: %q", *field)
			}
			d, _ := a.store.Detail(*campaign, *influencer)
			fields := map[string]string{}
			for fk, fv := range d.CustomFields {
				fields[fk] = fv
			}
			fields[k] = v
			p.CustomFields = fields
		}
		if !c.Members.Has(*influencer) {
			return fmt.Errorf("%s is not a member of %s", *influencer, *campaign)
		}
		a.store.UpdateInfluencerDetail(*campaign, *influencer, p)
	}

	c, _ = a.store.Campaign(*campaign)
	fmt.Printf("%s: %s\n", c.Name, c.Description)
	for _, row := range a.engine.InfluencersForCampaign(*campaign) {
		d := row.Detail
		fmt.Printf("%-6s %-18s %-9s %-18s %-15s %-15s %s\n", row.Influencer.ID, row.Influencer.Name, d.Source,
			d.ProgressStatus, d.ContentDeliveryStatus, d.PaymentStatus, budgetString(d.Budget))
		for _, col := range c.CustomColumns {
			fmt.Printf("       %s: %s\n", col.Name, d.CustomFields[col.ID])
		}
	}
	return nil
}

func cmdAdd(args []string) error {
	fs, cfgPath := newFlags("add")
	campaign := fs.String("campaign", "", "campaign id")
	ids := fs.String("ids", "", "comma-separated influencer ids")
	term := fs.String("term", "", "list candidates matching this name")
	_ = fs.Parse(args)

	a, err := openWorkspace(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	if _, ok := a.store.Campaign(*campaign); !ok {
		return fmt.Errorf("unknown campaign %q", *campaign)
	}
	if *ids == "" {
		for _, inf := range a.engine.AddCandidates(*campaign, *term) {
			printInfluencer(inf)
		}
		return nil
	}
	var list []model.Influencer
	for _, id := range splitList(*ids) {
		inf, ok := a.store.Influencer(id)
		if !ok {
			return fmt.Errorf("unknown influencer %q", id)
		}
		list = append(list, inf)
	}
	a.store.AddInfluencersToCampaign(list, *campaign)
	return printBoard(a, *campaign)
}

func cmdRemove(args []string) error {
	fs, cfgPath := newFlags("remove")
	campaign := fs.String("campaign", "", "campaign id")
	ids := fs.String("ids", "", "comma-separated influencer ids")
	_ = fs.Parse(args)

	a, err := openWorkspace(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	a.store.RemoveInfluencersFromCampaign(splitList(*ids), *campaign)
	return printBoard(a, *campaign)
}

func cmdMove(args []string) error {
	fs, cfgPath := newFlags("move")
	from := fs.String("from", "", "source campaign id")
	to := fs.String("to", "", "destination campaign id")
	ids := fs.String("ids", "", "comma-separated influencer ids")
	_ = fs.Parse(args)

	a, err := openWorkspace(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	for _, id := range []string{*from, *to} {
		if _, ok := a.store.Campaign(id); !ok {
			return fmt.Errorf("unknown campaign %q", id)
		}
	}
	a.store.MoveInfluencersToCampaign(splitList(*ids), *from, *to)
	fmt.Println("From", *from)
	if err := printBoard(a, *from); err != nil {
		return err
	}
	fmt.Println("To", *to)
	return printBoard(a, *to)
}

func cmdSuggest(args []string) error {
	fs, cfgPath := newFlags("suggest")
	campaign := fs.String("campaign", "", "campaign id")
	limit := fs.Int("limit", 0, "max suggestions; 0 uses the configured limit")
	_ = fs.Parse(args)

	a, err := openWorkspace(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	n := *limit
	if n <= 0 {
		n = a.cfg.Search.SuggestionLimit
	}
	if n <= 0 {
		n = len(a.store.Influencers())
	}
	for _, inf := range a.engine.SuggestedInfluencers(*campaign, n) {
		printInfluencer(inf)
	}
	return nil
}
