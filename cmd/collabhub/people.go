package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"collabhub/internal/ai"
	"collabhub/internal/model"
	"collabhub/internal/query"
	"collabhub/internal/util"
)

func printInfluencer(inf model.Influencer) {
	var plats []string
	for _, p := range inf.Platforms {
		plats = append(plats, string(p.Name))
	}
	views := "-"
	if inf.AverageViews != nil {
		views = model.FormatCount(*inf.AverageViews)
	}
	fmt.Printf("%-6s %-18s @%-16s %-8s %5.1f%% views=%-6s %-15s %s [%s]\n",
		inf.ID, inf.Name, inf.Handle, model.FormatCount(inf.Followers), inf.EngagementRate,
		views, inf.Country, strings.Join(plats, ","), strings.Join(inf.Categories, "; "))
}

// sizeTier finds a follower preset by label prefix, e.g. "micro".
func sizeTier(name string) (model.Tier, bool) {
	for _, t := range model.SizeTiers {
		if strings.HasPrefix(util.Fold(t.Label), util.Fold(name)) {
			return t, true
		}
	}
	return model.Tier{}, false
}

func cmdSearch(args []string) error {
	fs, cfgPath := newFlags("search")
	term := fs.String("term", "", "name, handle or category")
	platforms := fs.String("platforms", "", "comma-separated platforms, e.g. YouTube,TikTok")
	country := fs.String("country", "", "exact country")
	size := fs.String("size", "", "follower preset: nano, micro, mid-tier, macro, mega")
	minFollowers := fs.Int("min-followers", -1, "minimum followers")
	maxFollowers := fs.Int("max-followers", -1, "maximum followers")
	minViews := fs.Int("min-views", -1, "minimum average views")
	maxViews := fs.Int("max-views", -1, "maximum average views")
	minEngagement := fs.Float64("min-engagement", -1, "minimum engagement rate (percent)")
	timeout := fs.Duration("timeout", 10*time.Second, "search timeout")
	_ = fs.Parse(args)

	a, err := openWorkspace(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()

	c := query.Criteria{
		Term:          *term,
		Country:       *country,
		MinFollowers:  optInt(*minFollowers),
		MaxFollowers:  optInt(*maxFollowers),
		MinViews:      optInt(*minViews),
		MaxViews:      optInt(*maxViews),
		MinEngagement: optFloat(*minEngagement),
	}
	for _, p := range splitList(*platforms) {
		name, ok := model.ParsePlatform(p)
		if !ok {
			return fmt.Errorf("unknown platform %q", p)
		}
		c.Platforms = append(c.Platforms, name)
	}
	if *size != "" {
		t, ok := sizeTier(*size)
		if !ok {
			return fmt.Errorf("unknown size preset %q", *size)
		}
		c.MinFollowers, c.MaxFollowers = &t.Min, t.Max
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	res, err := a.engine.Search(ctx, c)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	fmt.Printf("%s | %s | %s\n", model.SizeLabel(c.MinFollowers, c.MaxFollowers), model.ViewsLabel(c.MinViews, c.MaxViews), model.EngagementLabel(c.MinEngagement))
	for _, inf := range res {
		printInfluencer(inf)
	}
	fmt.Printf("%d result(s)\n", len(res))
	return nil
}

func cmdDiscover(args []string) error {
	fs, cfgPath := newFlags("discover")
	desc := fs.String("description", "", "who you are looking for")
	campaign := fs.String("add-to", "", "add the results to this campaign")
	_ = fs.Parse(args)

	a, err := openWorkspace(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()

	out := ai.Run(context.Background(), "find_influencers", func(ctx context.Context) ([]model.Influencer, error) {
		return a.ai.FindInfluencers(ctx, *desc)
	})
	if out.Status == ai.StatusError {
		return fmt.Errorf("discover: %w", out.Err)
	}
	for _, inf := range out.Value {
		printInfluencer(inf)
	}
	if *campaign != "" && len(out.Value) > 0 {
		if _, ok := a.store.Campaign(*campaign); !ok {
			return fmt.Errorf("unknown campaign %q", *campaign)
		}
		a.store.AddInfluencersToCampaign(out.Value, *campaign)
		fmt.Printf("Added %d influencer(s) to %s\n", len(out.Value), *campaign)
	}
	return nil
}

func cmdProfile(args []string) error {
	fs, cfgPath := newFlags("profile")
	id := fs.String("id", "", "influencer id")
	summary := fs.Bool("summary", false, "include an AI collaboration summary")
	_ = fs.Parse(args)

	a, err := openWorkspace(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()

	p, ok := a.engine.InfluencerWithDetails(*id)
	if !ok {
		return fmt.Errorf("unknown influencer %q", *id)
	}
	printInfluencer(p.Influencer)
	fmt.Printf("Followers: %s  Email: %s\n", model.GroupDigits(p.Influencer.Followers), p.Influencer.Email)
	if len(p.Campaigns) == 0 {
		fmt.Println("Not in any campaign")
	}
	for _, row := range p.Campaigns {
		fmt.Printf("- %s (%s): %s, content %s, payment %s, budget %s\n",
			row.CampaignName, row.CampaignID, row.Detail.ProgressStatus, row.Detail.ContentDeliveryStatus,
			row.Detail.PaymentStatus, budgetString(row.Detail.Budget))
		if row.Detail.Notes != "" {
			fmt.Println("  notes:", row.Detail.Notes)
		}
	}
	if *summary {
		out := ai.Run(context.Background(), "summarize", func(ctx context.Context) (string, error) {
			return a.ai.Summarize(ctx, p.Influencer)
		})
		if out.Status == ai.StatusError {
			return fmt.Errorf("summary: %w", out.Err)
		}
		fmt.Println()
		fmt.Println(out.Value)
	}
	return nil
}

func budgetString(b *model.Budget) string {
	if b == nil {
		return "-"
	}
	return fmt.Sprintf("%s %.2f", b.Currency, b.Value)
}
