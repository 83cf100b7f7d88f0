package store

import "collabhub/internal/model"

func views(n int) *int { return &n }

func seedInfluencers() []model.Influencer {
	return []model.Influencer{
		{ID: "1", Name: "Alex Tech", Handle: "alextech", Platforms: []model.Platform{{Name: model.YouTube, URL: "#"}}, Followers: 1200000, AvatarURL: "https://picsum.photos/id/1011/200/200", Categories: []string{"Tech & Gaming", "Education & How-To"}, EngagementRate: 4.5, Country: "USA", Email: "alex.tech@example.com", AverageViews: views(150000)},
		{ID: "2", Name: "Bella Cooks", Handle: "bellacooks", Platforms: []model.Platform{{Name: model.Instagram, URL: "#"}, {Name: model.TikTok, URL: "#"}}, Followers: 750000, AvatarURL: "https://picsum.photos/id/1025/200/200", Categories: []string{"Food & Cooking", "Lifestyle & Daily Vlogs"}, EngagementRate: 3.2, Country: "Canada", Email: "bella.cooks@example.com", AverageViews: views(45000)},
		{ID: "3", Name: "Charlie Travels", Handle: "charlie_travels", Platforms: []model.Platform{{Name: model.TikTok, URL: "#"}}, Followers: 2500000, AvatarURL: "https://picsum.photos/id/1040/200/200", Categories: []string{"Travel & Adventure", "Art & Creativity"}, EngagementRate: 12.1, Country: "United Kingdom", Email: "charlie.travels@example.com", AverageViews: views(300000)},
		{ID: "4", Name: "Diana Fit", Handle: "diana_fit", Platforms: []model.Platform{{Name: model.Instagram, URL: "#"}}, Followers: 450000, AvatarURL: "https://picsum.photos/id/1074/200/200", Categories: []string{"Fitness & Health", "Lifestyle & Daily Vlogs"}, EngagementRate: 5.8, Country: "Australia", Email: "diana.fit@example.com", AverageViews: views(25000)},
		{ID: "5", Name: "Evan Gamer", Handle: "evangames", Platforms: []model.Platform{{Name: model.YouTube, URL: "#"}, {Name: model.X, URL: "#"}}, Followers: 3100000, AvatarURL: "https://picsum.photos/id/237/200/200", Categories: []string{"Tech & Gaming", "Entertainment & Pop Culture"}, EngagementRate: 6.2, Country: "USA", Email: "evan.games@example.com", AverageViews: views(450000)},
		{ID: "6", Name: "Fiona Fashion", Handle: "fionafashion", Platforms: []model.Platform{{Name: model.Instagram, URL: "#"}}, Followers: 980000, AvatarURL: "https://picsum.photos/id/1084/200/200", Categories: []string{"Fashion & Beauty", "Luxury & High-End Living"}, EngagementRate: 7.1, Country: "France", Email: "fiona.fashion@example.com", AverageViews: views(80000)},
	}
}

func seedCampaigns() []model.Campaign {
	return []model.Campaign{
		{ID: "campaign1", Name: "Q4 Tech Campaign", Description: "Launch campaign for the new T-800 series headphones.", Budget: 25000, AvatarURL: "https://picsum.photos/id/1/40/40", BannerURL: "https://picsum.photos/id/1/600/300", Members: model.NewIDSet("1", "5"), CustomColumns: []model.CustomColumn{{ID: "col1", Name: "Product Status", Type: model.ColumnText}}, KanbanColumns: append([]string(nil), model.DefaultKanbanColumns...)},
		{ID: "campaign2", Name: "Summer Wellness Promo", Description: "Promoting our new line of organic protein shakes.", Budget: 15000, AvatarURL: "https://picsum.photos/id/11/40/40", BannerURL: "https://picsum.photos/id/103/600/300", Members: model.NewIDSet("2", "4"), CustomColumns: []model.CustomColumn{}, KanbanColumns: append([]string(nil), model.DefaultKanbanColumns...)},
		{ID: "campaign3", Name: "Global Travel Series", Description: "A campaign to highlight hidden travel gems around the world.", Budget: 50000, AvatarURL: "https://picsum.photos/id/12/40/40", BannerURL: "https://picsum.photos/id/102/600/300", Members: model.NewIDSet("3"), CustomColumns: []model.CustomColumn{}, KanbanColumns: append([]string(nil), model.DefaultKanbanColumns...)},
	}
}

func usd(v float64) *model.Budget { return &model.Budget{Value: v, Currency: "USD"} }

func seedDetails() map[DetailKey]model.Detail {
	return map[DetailKey]model.Detail{
		{"campaign1", "1"}: {Source: model.Outbound, ProgressStatus: "Agreement Signed", ContentDeliveryStatus: model.ContentNotLiveYet, PaymentStatus: model.PaymentAwaiting, Documents: []model.Document{{Name: "Contract_Alex.pdf", URL: "#"}}, Deliverables: []string{}, Budget: usd(5000), Notes: "Initial contact made. Contract signed.", CustomFields: map[string]string{"col1": "Shipped", "startDate": "2024-05-10"}},
		{"campaign1", "5"}: {Source: model.Outbound, ProgressStatus: "Negotiating", ContentDeliveryStatus: model.ContentNotLiveYet, PaymentStatus: model.PaymentAwaiting, Documents: []model.Document{}, Deliverables: []string{}, Budget: usd(8000), Notes: "Positive reply, scheduled a call.", CustomFields: map[string]string{"col1": "Pending", "startDate": "2024-05-12"}},
		{"campaign2", "2"}: {Source: model.Inbound, ProgressStatus: "Scope Done", ContentDeliveryStatus: model.ContentLive, PaymentStatus: model.PaymentFulfilled, Documents: []model.Document{{Name: "Contract_Bella.pdf", URL: "#"}}, Deliverables: []string{"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}, Budget: usd(3500), Notes: "Great collaboration. High engagement.", CustomFields: map[string]string{}},
		{"campaign2", "4"}: {Source: model.Outbound, ProgressStatus: "Scope Done", ContentDeliveryStatus: model.ContentPartiallyDone, PaymentStatus: model.PaymentPartiallyMade, Documents: []model.Document{}, Deliverables: []string{"https://www.youtube.com/watch?v=mock_video_id_2"}, Budget: usd(2000), Notes: "First post is live, awaiting second post.", CustomFields: map[string]string{}},
		{"campaign3", "3"}: {Source: model.Inbound, ProgressStatus: "Preparing Content", ContentDeliveryStatus: model.ContentNotLiveYet, PaymentStatus: model.PaymentAwaiting, Documents: []model.Document{}, Deliverables: []string{}, Budget: usd(12000), Notes: "World tour promotion.", CustomFields: map[string]string{}},
	}
}

// NewSeeded returns a store loaded with the demo pool, campaigns and records.
func NewSeeded(opts ...Option) *Store {
	s := New(opts...)
	s.influencers = seedInfluencers()
	s.campaigns = seedCampaigns()
	s.details = seedDetails()
	return s
}
