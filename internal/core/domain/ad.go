package domain

// Ad is a single creative unit belonging to a campaign. All ads of one
// campaign carry the same CampaignBudget.
type Ad struct {
	ID             string    `json:"ad_id"`
	CampaignID     string    `json:"campaign_id"`
	CampaignBudget int       `json:"campaign_budget"`
	Name           string    `json:"ad_name"`
	Platform       string    `json:"platform"`
	AdType         string    `json:"ad_type"`
	Target         Targeting `json:"target_audience"`
	Creative       Creative  `json:"creative"`
	Status         string    `json:"status"`
	CreatedAt      Timestamp `json:"created_at"`
	DailyBudget    float64   `json:"daily_budget"`
}
