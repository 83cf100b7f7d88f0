package main

import (
	"context"
	"fmt"
	"time"

	"collabhub/internal/ai"
	"collabhub/internal/analytics"
	"collabhub/internal/model"
)

func printRow(row model.CampaignInfluencer) {
	fmt.Printf("  %-18s %-24s %-15s %s\n", row.Influencer.Name, row.CampaignName, row.Detail.ContentDeliveryStatus, budgetString(row.Detail.Budget))
}

func cmdPerformance(args []string) error {
	fs, cfgPath := newFlags("performance")
	campaign := fs.String("campaign", analytics.AllCampaigns, "campaign id or all")
	insights := fs.Bool("insights", false, "add an AI analysis")
	reorder := fs.String("reorder", "", "move a campaign tab: from,to")
	_ = fs.Parse(args)

	a, err := openWorkspace(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	if *reorder != "" {
		if err := dragMove(*reorder, a.store.ReorderCampaigns); err != nil {
			return err
		}
		printCampaigns(a.store.Campaigns())
	}

	rep, ok := analytics.Build(a.store, *campaign)
	if !ok {
		return fmt.Errorf("unknown campaign %q", *campaign)
	}
	fmt.Printf("Performance for %s: %d influencer(s)\n", rep.CampaignName, len(rep.Rows))
	fmt.Printf("Live content (%d)\n", len(rep.LiveContent))
	for _, row := range rep.LiveContent {
		printRow(row)
		for _, link := range row.Detail.Deliverables {
			if embed, ok := analytics.EmbedURL(link); ok {
				fmt.Println("    ", embed)
			} else {
				fmt.Println("    ", link)
			}
		}
	}
	fmt.Printf("Awaiting content (%d)\n", len(rep.AwaitingContent))
	for _, row := range rep.AwaitingContent {
		printRow(row)
	}
	for _, b := range rep.Budgets {
		fmt.Printf("Budget: %s across %d influencer(s)\n", b, b.Count)
	}
	if rep.Unpriced > 0 {
		fmt.Printf("Without budget: %d\n", rep.Unpriced)
	}
	if *insights {
		out := analytics.Insights(context.Background(), a.ai, rep)
		if out.Status == ai.StatusError {
			return fmt.Errorf("insights: %w", out.Err)
		}
		fmt.Println()
		fmt.Println(out.Value)
	}
	return nil
}

func cmdActivity(args []string) error {
	fs, cfgPath := newFlags("activity")
	hours := fs.Int("hours", 24, "look-back window in hours")
	kind := fs.String("kind", "", "only this change kind")
	_ = fs.Parse(args)

	a, err := openWorkspace(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	end := time.Now().UTC().Add(time.Second)
	start := end.Add(-time.Duration(*hours) * time.Hour)
	events, err := a.db.LoadEventsRange(context.Background(), start, end, *kind)
	if err != nil {
		return fmt.Errorf("load activity: %w", err)
	}
	b := analytics.HourlyActivity(events)
	for _, k := range analytics.SortedBucketKeys(b) {
		fmt.Printf("%s -> %v\n", k.Format("2006-01-02 15:00"), b[k])
	}
	if len(events) == 0 {
		fmt.Println("No activity")
	}
	return nil
}
