package conversation

import (
	"time"

	"collabhub/internal/model"
)

// Seed returns the demo inbox with timestamps relative to now.
func Seed(now time.Time) []model.Conversation {
	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	return []model.Conversation{
		{
			ID:               "conv1",
			InfluencerID:     "1",
			InfluencerName:   "Alex Tech",
			InfluencerAvatar: "https://picsum.photos/id/1011/200/200",
			Subject:          "Re: Collaboration for Q4 Tech Campaign",
			LastMessage:      "Sounds great! I've reviewed the contract and it looks good.",
			Timestamp:        ago(30 * time.Minute),
			Online:           true,
			Messages: []model.Message{
				{ID: "m1", Sender: model.SenderUser, Content: "Hi Alex, here is the contract for our Q4 campaign.", Timestamp: ago(2 * time.Hour)},
				{ID: "m2", Sender: model.SenderInfluencer, Content: "Thanks! Taking a look now.", Timestamp: ago(time.Hour)},
				{ID: "m3", Sender: model.SenderInfluencer, Content: "Sounds great! I've reviewed the contract and it looks good.", Timestamp: ago(30 * time.Minute)},
			},
			CampaignName:          "Q4 Tech Campaign",
			ProgressStatus:        "Agreement Signed",
			ContentDeliveryStatus: model.ContentNotLiveYet,
			PaymentStatus:         model.PaymentAwaiting,
			Budget:                5000,
			Deliverables:          []string{},
		},
		{
			ID:               "conv2",
			InfluencerID:     "2",
			InfluencerName:   "Bella Cooks",
			InfluencerAvatar: "https://picsum.photos/id/1025/200/200",
			Subject:          "Re: Your content for Summer Wellness Promo is live!",
			LastMessage:      "Looks great! We've just processed the payment.",
			Timestamp:        ago(5 * time.Hour),
			Unread:           true,
			Messages: []model.Message{
				{ID: "m4", Sender: model.SenderUser, Content: "Hi Bella, the video is fantastic! Thanks for the great work.", Timestamp: ago(6 * time.Hour)},
				{ID: "m5", Sender: model.SenderInfluencer, Content: "So glad you like it! It was a pleasure working with you.", Timestamp: ago(330 * time.Minute)},
				{ID: "m6", Sender: model.SenderUser, Content: "Looks great! We've just processed the payment.", Timestamp: ago(5 * time.Hour)},
			},
			CampaignName:          "Summer Wellness Promo",
			ProgressStatus:        "Scope Done",
			ContentDeliveryStatus: model.ContentLive,
			PaymentStatus:         model.PaymentFulfilled,
			Budget:                3500,
			Deliverables: []string{
				"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				"https://www.instagram.com/p/Cszs0g12345/",
			},
		},
	}
}

// NewSeeded builds an inbox holding the demo conversations.
func NewSeeded(now time.Time, opts ...Option) *Inbox {
	return New(Seed(now), opts...)
}
