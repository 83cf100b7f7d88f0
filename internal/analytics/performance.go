// Package analytics derives reports from campaign data: the performance
// view, budget totals and the hourly activity journal.
package analytics

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"collabhub/internal/ai"
	"collabhub/internal/model"
	"collabhub/internal/query"
)

// AllCampaigns selects every campaign in a report.
const AllCampaigns = "all"

// Report is the performance view of one campaign, or of all of them.
type Report struct {
	CampaignID   string
	CampaignName string
	Rows         []model.CampaignInfluencer
	// LiveContent holds rows whose content is live or partially done and
	// that have at least one deliverable.
	LiveContent []model.CampaignInfluencer
	// AwaitingContent holds rows whose content is not live yet.
	AwaitingContent []model.CampaignInfluencer
	Budgets         []BudgetTotal
	// Unpriced counts rows without a usable budget.
	Unpriced int
}

// BudgetTotal sums the budgets of one currency.
type BudgetTotal struct {
	Currency string
	Total    float64
	Count    int
}

var printer = message.NewPrinter(language.English)

func (b BudgetTotal) String() string {
	return printer.Sprintf("%s %.2f", b.Currency, b.Total)
}

// Build computes the report for campaignID, or for every campaign when it
// is AllCampaigns or empty. ok is false for an unknown campaign.
func Build(r query.Reader, campaignID string) (rep Report, ok bool) {
	rows := query.New(r).AllInfluencersWithCampaignDetails()
	if campaignID == "" || campaignID == AllCampaigns {
		rep = Report{CampaignID: AllCampaigns, CampaignName: "all campaigns", Rows: rows}
	} else {
		c, found := r.Campaign(campaignID)
		if !found {
			return Report{}, false
		}
		rep = Report{CampaignID: c.ID, CampaignName: c.Name}
		for _, row := range rows {
			if row.CampaignID == campaignID {
				rep.Rows = append(rep.Rows, row)
			}
		}
	}
	for _, row := range rep.Rows {
		switch row.Detail.ContentDeliveryStatus {
		case model.ContentLive, model.ContentPartiallyDone:
			if len(row.Detail.Deliverables) > 0 {
				rep.LiveContent = append(rep.LiveContent, row)
			}
		case model.ContentNotLiveYet:
			rep.AwaitingContent = append(rep.AwaitingContent, row)
		}
	}
	rep.Budgets, rep.Unpriced = budgetTotals(rep.Rows)
	return rep, true
}

// budgetTotals groups budgets by ISO 4217 code. Missing budgets and
// unknown codes are counted as unpriced.
func budgetTotals(rows []model.CampaignInfluencer) ([]BudgetTotal, int) {
	byCode := map[string]*BudgetTotal{}
	unpriced := 0
	for _, row := range rows {
		b := row.Detail.Budget
		if b == nil {
			unpriced++
			continue
		}
		unit, err := currency.ParseISO(strings.TrimSpace(b.Currency))
		if err != nil {
			unpriced++
			continue
		}
		code := unit.String()
		t, ok := byCode[code]
		if !ok {
			t = &BudgetTotal{Currency: code}
			byCode[code] = t
		}
		t.Total += b.Value
		t.Count++
	}
	out := make([]BudgetTotal, 0, len(byCode))
	for _, t := range byCode {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out, unpriced
}

// Insights asks client for a written analysis of rep.
func Insights(ctx context.Context, client ai.Client, rep Report) ai.Outcome[string] {
	return ai.Run(ctx, "campaign_insights", func(ctx context.Context) (string, error) {
		return client.CampaignInsights(ctx, rep.CampaignName, rep.Rows)
	})
}

var youTubeID = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// YouTubeVideoID extracts the 11-character video id of a YouTube link.
func YouTubeVideoID(url string) (string, bool) {
	m := youTubeID.FindStringSubmatch(url)
	if m == nil || len(m[2]) != 11 {
		return "", false
	}
	return m[2], true
}

// EmbedURL returns the embeddable player URL of a YouTube deliverable.
func EmbedURL(url string) (string, bool) {
	id, ok := YouTubeVideoID(url)
	if !ok {
		return "", false
	}
	return "https://www.youtube.com/embed/" + id, true
}
