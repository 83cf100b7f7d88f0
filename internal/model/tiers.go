package model

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Tier is a preset range for a numeric filter. Max nil means unbounded.
type Tier struct {
	Label string
	Min   int
	Max   *int
}

func intp(v int) *int { return &v }

// SizeTiers are the follower-count presets offered by the search filters.
var SizeTiers = []Tier{
	{Label: "Nano (1K-10K)", Min: 1_000, Max: intp(10_000)},
	{Label: "Micro (10K-100K)", Min: 10_000, Max: intp(100_000)},
	{Label: "Mid-tier (100K-500K)", Min: 100_000, Max: intp(500_000)},
	{Label: "Macro (500K-1M)", Min: 500_000, Max: intp(1_000_000)},
	{Label: "Mega (1M+)", Min: 1_000_000},
}

// ViewTiers are minimum average-view presets.
var ViewTiers = []Tier{
	{Label: "10K+", Min: 10_000},
	{Label: "50K+", Min: 50_000},
	{Label: "100K+", Min: 100_000},
	{Label: "500K+", Min: 500_000},
}

// EngagementTiers are minimum engagement-rate presets in percent.
var EngagementTiers = []float64{1, 3, 5, 10}

// FormatCount renders a follower or view count as 1.2M, 750K or 999.
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 0, 64) + "K"
	}
	return strconv.Itoa(n)
}

// GroupDigits renders n with thousands separators, e.g. 1,200,000.
func GroupDigits(n int) string { return printer.Sprintf("%d", n) }

func rangeLabel(placeholder string, min, max *int) string {
	switch {
	case min != nil && max != nil:
		return FormatCount(*min) + " - " + FormatCount(*max)
	case min != nil:
		return "> " + FormatCount(*min)
	case max != nil:
		return "< " + FormatCount(*max)
	}
	return placeholder
}

// SizeLabel describes an active follower range filter.
func SizeLabel(min, max *int) string { return rangeLabel("Influencer size", min, max) }

// ViewsLabel describes an active average-views filter.
func ViewsLabel(min, max *int) string { return rangeLabel("Average views", min, max) }

// EngagementLabel describes an active engagement filter.
func EngagementLabel(min *float64) string {
	if min == nil {
		return "Engagement rate"
	}
	return fmt.Sprintf("> %s%%", strconv.FormatFloat(*min, 'f', -1, 64))
}
