package domain

// Impression is a record of an ad being shown. Platform is copied from the
// ad and Region is one of the ad's target regions.
type Impression struct {
	ID                string    `json:"impression_id"`
	AdID              string    `json:"ad_id"`
	CampaignID        string    `json:"campaign_id"`
	Timestamp         Timestamp `json:"timestamp"`
	UserID            string    `json:"user_id"`
	Platform          string    `json:"platform"`
	DeviceType        string    `json:"device_type"`
	Region            string    `json:"region"`
	Clicked           bool      `json:"clicked"`
	CostPerImpression float64   `json:"cost_per_impression"`
	EngagementSeconds int       `json:"engagement_time_seconds"`
}

// Conversion is a user completing a desired action attributed to an ad.
// Value is zero unless Type is ConversionPurchase.
type Conversion struct {
	ID          string      `json:"conversion_id"`
	UserID      string      `json:"user_id"`
	AdID        string      `json:"ad_id"`
	CampaignID  string      `json:"campaign_id"`
	Timestamp   Timestamp   `json:"timestamp"`
	Type        string      `json:"conversion_type"`
	Value       float64     `json:"value"`
	Attribution Attribution `json:"attribution"`
	DeviceType  string      `json:"device_type"`
	Region      string      `json:"region"`
}

// Attribution names the model that credited a conversion and how many
// touchpoints it considered.
type Attribution struct {
	Model       string `json:"model"`
	Touchpoints int    `json:"touchpoints"`
}
