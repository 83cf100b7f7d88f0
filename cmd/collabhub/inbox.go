package main

import (
	"context"
	"fmt"
	"time"

	"collabhub/internal/conversation"
	"collabhub/internal/model"
)

func cmdInbox(args []string) error {
	fs, cfgPath := newFlags("inbox")
	term := fs.String("term", "", "influencer name contains")
	campaign := fs.String("campaign", "", "campaign name")
	progress := fs.String("progress", "", "contract status")
	content := fs.String("content", "", "content status")
	payment := fs.String("payment", "", "payment status")
	open := fs.String("open", "", "show the thread of this conversation")
	send := fs.String("send", "", "conversation id to reply to")
	message := fs.String("message", "", "reply text")
	reorder := fs.String("reorder", "", "move a conversation: from,to")
	_ = fs.Parse(args)

	a, err := openWorkspace(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()

	f := conversation.Filter{Term: *term, Campaign: *campaign, Progress: *progress}
	if *content != "" {
		if f.Content, err = parseContent(*content); err != nil {
			return err
		}
	}
	if *payment != "" {
		if f.Payment, err = parsePayment(*payment); err != nil {
			return err
		}
	}
	if *send != "" {
		if err := a.inbox.SendMessage(*send, *message); err != nil {
			return err
		}
	}
	if *reorder != "" {
		if err := dragMove(*reorder, a.inbox.Reorder); err != nil {
			return err
		}
	}

	ctx := context.Background()
	if *open != "" {
		c, ok, err := a.inbox.Get(ctx, *open)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("unknown conversation %q", *open)
		}
		printThread(c)
		return nil
	}
	convs, err := a.inbox.List(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Campaigns:", conversation.CampaignNames(convs))
	for _, c := range conversation.Apply(convs, f) {
		unread := " "
		if c.Unread {
			unread = "*"
		}
		fmt.Printf("%s %-6s %-14s %-24s %-16s %s\n", unread, c.ID, c.InfluencerName, c.CampaignName, c.Timestamp.Format(time.Kitchen), c.LastMessage)
	}
	return nil
}

func printThread(c model.Conversation) {
	fmt.Printf("%s with %s (%s)\n", c.Subject, c.InfluencerName, c.CampaignName)
	fmt.Printf("Progress: %s  Content: %s  Payment: %s  Budget: %.2f\n", c.ProgressStatus, c.ContentDeliveryStatus, c.PaymentStatus, c.Budget)
	for _, m := range c.Messages {
		fmt.Printf("[%s] %-10s %s\n", m.Timestamp.Format("Jan 2 15:04"), m.Sender, m.Content)
	}
}
