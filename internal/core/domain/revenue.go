package domain

// RevenueTransaction is a purchase, optionally attributed to an ad. The
// attribution pointers are either both nil or both set from the same ad.
type RevenueTransaction struct {
	ID                   string      `json:"transaction_id"`
	UserID               string      `json:"user_id"`
	Timestamp            Timestamp   `json:"timestamp"`
	AttributedAdID       *string     `json:"attributed_ad_id"`
	AttributedCampaignID *string     `json:"attributed_campaign_id"`
	Product              ProductLine `json:"product"`
	TotalAmount          float64     `json:"total_amount"`
	DiscountApplied      float64     `json:"discount_applied"`
	PaymentMethod        string      `json:"payment_method"`
	Region               string      `json:"region"`
	CustomerType         string      `json:"customer_type"`
}

// Attributed reports whether the transaction credits an ad.
func (t RevenueTransaction) Attributed() bool {
	return t.AttributedAdID != nil
}

// ProductLine is a snapshot of a catalog product at purchase time.
type ProductLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
