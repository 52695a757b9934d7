package domain

// Campaigns lists the marketing initiatives that own ads. The campaign name
// doubles as its identifier in every generated record.
var Campaigns = []string{
	"spring_sale_2025",
	"brand_awareness_q1",
	"product_launch_mobile",
	"retargeting_winter",
	"social_media_blitz",
	"email_nurture_series",
}

// BudgetDays is the number of days a campaign budget is assumed to cover
// when deriving an ad's daily budget.
const BudgetDays = 30
