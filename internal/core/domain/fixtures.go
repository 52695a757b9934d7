package domain

// Lookup tables shared read-only by every generator.
var (
	Platforms        = []string{"facebook", "google_ads", "instagram", "tiktok", "linkedin", "twitter"}
	AdTypes          = []string{"video", "carousel", "single_image", "story", "banner"}
	DeviceTypes      = []string{"mobile", "desktop", "tablet"}
	Regions          = []string{"US-WEST", "US-EAST", "EU-CENTRAL", "APAC", "LATAM"}
	AudienceSegments = []string{"lookalike", "retargeting", "interest_based", "demographic", "behavioral"}
	AgeRanges        = []string{"18-24", "25-34", "35-44", "45-54", "55+"}
	CallsToAction    = []string{"Shop Now", "Learn More", "Sign Up", "Get Started"}

	// AdStatuses is weighted 8:1:1 towards active.
	AdStatuses = []string{
		"active", "active", "active", "active", "active", "active", "active", "active",
		"paused", "completed",
	}

	ConversionTypes   = []string{ConversionPurchase, "signup", "lead", "download"}
	AttributionModels = []string{"last_click", "first_click", "linear", "time_decay"}
	PaymentMethods    = []string{"credit_card", "paypal", "apple_pay", "google_pay"}
	CustomerTypes     = []string{"new", "returning"}
)

// ConversionPurchase is the only conversion type that carries a value.
const ConversionPurchase = "purchase"

// Product is a catalog entry.
type Product struct {
	ID    string
	Name  string
	Price float64
}

// Products is the revenue product catalog.
var Products = []Product{
	{ID: "PROD-001", Name: "Premium Widget", Price: 299.99},
	{ID: "PROD-002", Name: "Basic Widget", Price: 99.99},
	{ID: "PROD-003", Name: "Widget Pro", Price: 499.99},
	{ID: "PROD-004", Name: "Widget Bundle", Price: 799.99},
	{ID: "PROD-005", Name: "Widget Accessory", Price: 29.99},
}
