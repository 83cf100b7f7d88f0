package model

import (
	"strings"
	"time"
)

// PlatformName is one of the social platforms an influencer publishes on.
type PlatformName string

const (
	YouTube   PlatformName = "YouTube"
	Instagram PlatformName = "Instagram"
	TikTok    PlatformName = "TikTok"
	X         PlatformName = "X"
	Facebook  PlatformName = "Facebook"
)

// Platforms lists every supported platform in display order.
var Platforms = []PlatformName{YouTube, Instagram, TikTok, X, Facebook}

// ParsePlatform matches a platform name case-insensitively.
func ParsePlatform(s string) (PlatformName, bool) {
	for _, p := range Platforms {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	return "", false
}

// Platform is a single profile of an influencer.
type Platform struct {
	Name PlatformName `json:"name"`
	URL  string       `json:"url"`
}

// Budget is a money amount with an ISO 4217 currency code.
type Budget struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// Influencer is an identity record in the canonical pool.
type Influencer struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Handle         string     `json:"handle"`
	Platforms      []Platform `json:"platforms"`
	Followers      int        `json:"followers"`
	AvatarURL      string     `json:"avatarUrl"`
	Categories     []string   `json:"categories"`
	EngagementRate float64    `json:"engagementRate"`
	Country        string     `json:"country"`
	Email          string     `json:"email"`
	AverageViews   *int       `json:"averageViewcount,omitempty"`
	// Notes seeds the detail notes when the influencer joins a campaign.
	Notes string `json:"notes,omitempty"`
}

// HasPlatform reports whether the influencer publishes on any of the given platforms.
func (i Influencer) HasPlatform(set map[PlatformName]struct{}) bool {
	for _, p := range i.Platforms {
		if _, ok := set[p.Name]; ok {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (i Influencer) Clone() Influencer {
	out := i
	out.Platforms = append([]Platform(nil), i.Platforms...)
	out.Categories = append([]string(nil), i.Categories...)
	if i.AverageViews != nil {
		v := *i.AverageViews
		out.AverageViews = &v
	}
	return out
}

// ColumnType is the value type of a campaign custom column.
type ColumnType string

const (
	ColumnText   ColumnType = "text"
	ColumnLink   ColumnType = "link"
	ColumnDate   ColumnType = "date"
	ColumnNumber ColumnType = "number"
)

// Valid reports whether t is a known column type.
func (t ColumnType) Valid() bool {
	switch t {
	case ColumnText, ColumnLink, ColumnDate, ColumnNumber:
		return true
	}
	return false
}

// CustomColumn is a user-defined field shown for every campaign member.
type CustomColumn struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// DefaultKanbanColumns is the pipeline every new campaign starts with.
var DefaultKanbanColumns = []string{"Negotiating", "Pending", "Agreement Signed", "Preparing Content", "Scope Done", "Rejected"}

// Campaign groups influencers under a shared kanban pipeline.
type Campaign struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Budget        float64        `json:"budget"`
	AvatarURL     string         `json:"avatarUrl"`
	BannerURL     string         `json:"bannerUrl"`
	Members       IDSet          `json:"influencerIds"`
	CustomColumns []CustomColumn `json:"customColumns"`
	KanbanColumns []string       `json:"kanbanColumns"`
}

// Clone returns a deep copy.
func (c Campaign) Clone() Campaign {
	out := c
	out.Members = c.Members.Clone()
	out.CustomColumns = append([]CustomColumn(nil), c.CustomColumns...)
	out.KanbanColumns = append([]string(nil), c.KanbanColumns...)
	return out
}

// Source records who initiated the relationship.
type Source string

const (
	Inbound  Source = "Inbound"
	Outbound Source = "Outbound"
)

// ContentDeliveryStatus tracks whether promised content is published.
type ContentDeliveryStatus string

const (
	ContentLive          ContentDeliveryStatus = "Live"
	ContentNotLiveYet    ContentDeliveryStatus = "Not Live Yet"
	ContentPartiallyDone ContentDeliveryStatus = "Partially Done"
)

// PaymentStatus tracks payouts to the influencer.
type PaymentStatus string

const (
	PaymentAwaiting      PaymentStatus = "Awaiting"
	PaymentPartiallyMade PaymentStatus = "Partially Made"
	PaymentFulfilled     PaymentStatus = "Fulfilled"
)

// Document is an uploaded file reference, e.g. a signed agreement.
type Document struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DefaultProgressStatus is the progress status of a freshly added member.
const DefaultProgressStatus = "Negotiating"

// Detail is the per-(campaign, influencer) relationship record.
type Detail struct {
	Source                Source                `json:"source"`
	ProgressStatus        string                `json:"progressStatus"`
	ContentDeliveryStatus ContentDeliveryStatus `json:"contentDeliveryStatus"`
	PaymentStatus         PaymentStatus         `json:"paymentStatus"`
	Documents             []Document            `json:"documents"`
	Deliverables          []string              `json:"deliverables"`
	Budget                *Budget               `json:"budget"`
	Notes                 string                `json:"notes"`
	CustomFields          map[string]string     `json:"customFields"`
}

// DefaultDetail returns the record used when none exists yet.
func DefaultDetail() Detail {
	return Detail{
		Source:                Outbound,
		ProgressStatus:        DefaultProgressStatus,
		ContentDeliveryStatus: ContentNotLiveYet,
		PaymentStatus:         PaymentAwaiting,
		Documents:             []Document{},
		Deliverables:          []string{},
		CustomFields:          map[string]string{},
	}
}

// Clone returns a deep copy.
func (d Detail) Clone() Detail {
	out := d
	out.Documents = append([]Document{}, d.Documents...)
	out.Deliverables = append([]string{}, d.Deliverables...)
	if d.Budget != nil {
		b := *d.Budget
		out.Budget = &b
	}
	out.CustomFields = make(map[string]string, len(d.CustomFields))
	for k, v := range d.CustomFields {
		out.CustomFields[k] = v
	}
	return out
}

// DetailPatch is a partial update of a Detail. Nil fields are left untouched;
// an empty non-nil slice or map replaces the current value.
type DetailPatch struct {
	Source                *Source
	ProgressStatus        *string
	ContentDeliveryStatus *ContentDeliveryStatus
	PaymentStatus         *PaymentStatus
	Documents             []Document
	Deliverables          []string
	Budget                *Budget
	// ClearBudget sets the budget to null; it wins over Budget.
	ClearBudget  bool
	Notes        *string
	CustomFields map[string]string
}

// Apply merges p into d and returns the result. d is not modified.
func (p DetailPatch) Apply(d Detail) Detail {
	out := d.Clone()
	if p.Source != nil {
		out.Source = *p.Source
	}
	if p.ProgressStatus != nil {
		out.ProgressStatus = *p.ProgressStatus
	}
	if p.ContentDeliveryStatus != nil {
		out.ContentDeliveryStatus = *p.ContentDeliveryStatus
	}
	if p.PaymentStatus != nil {
		out.PaymentStatus = *p.PaymentStatus
	}
	if p.Documents != nil {
		out.Documents = append([]Document{}, p.Documents...)
	}
	if p.Deliverables != nil {
		out.Deliverables = append([]string{}, p.Deliverables...)
	}
	if p.Budget != nil {
		b := *p.Budget
		out.Budget = &b
	}
	if p.ClearBudget {
		out.Budget = nil
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	if p.CustomFields != nil {
		out.CustomFields = make(map[string]string, len(p.CustomFields))
		for k, v := range p.CustomFields {
			out.CustomFields[k] = v
		}
	}
	return out
}

// CampaignInfluencer joins an influencer with its detail in one campaign.
type CampaignInfluencer struct {
	Influencer   Influencer `json:"influencer"`
	Detail       Detail     `json:"detail"`
	CampaignID   string     `json:"campaignId"`
	CampaignName string     `json:"campaignName"`
}

// Sender identifies the author of a message.
type Sender string

const (
	SenderUser       Sender = "user"
	SenderInfluencer Sender = "influencer"
)

// Message is a single entry in a conversation thread.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is a message thread with an influencer plus denormalized
// fields for the inbox list.
type Conversation struct {
	ID               string    `json:"id"`
	InfluencerID     string    `json:"influencerId"`
	InfluencerName   string    `json:"influencerName"`
	InfluencerAvatar string    `json:"influencerAvatar"`
	Subject          string    `json:"subject"`
	LastMessage      string    `json:"lastMessage"`
	Timestamp        time.Time `json:"timestamp"`
	Unread           bool      `json:"unread"`
	Online           bool      `json:"isOnline"`
	Messages         []Message `json:"messages"`

	CampaignName          string                `json:"campaignName,omitempty"`
	ProgressStatus        string                `json:"progressStatus,omitempty"`
	ContentDeliveryStatus ContentDeliveryStatus `json:"contentDeliveryStatus,omitempty"`
	PaymentStatus         PaymentStatus         `json:"paymentStatus,omitempty"`
	Budget                float64               `json:"budget,omitempty"`
	Deliverables          []string              `json:"deliverables,omitempty"`
}

// Clone returns a deep copy.
func (c Conversation) Clone() Conversation {
	out := c
	out.Messages = append([]Message(nil), c.Messages...)
	out.Deliverables = append([]string(nil), c.Deliverables...)
	return out
}
