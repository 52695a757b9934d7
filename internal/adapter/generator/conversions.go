package generator

import (
	"time"

	"marketing-datagen/internal/calendar"
	"marketing-datagen/internal/core/domain"
	"marketing-datagen/internal/money"
)

const (
	minPurchaseValue = 10
	maxPurchaseValue = 1000
	maxTouchpoints   = 5
)

// Conversions draws a month's conversions. Unlike impressions, the region
// is drawn from all regions rather than the ad's targeting.
func (g *Generator) Conversions(month calendar.Month, ads []domain.Ad) []domain.Conversion {
	count := intn(g.r, minConversionsPerMonth, maxConversionsPerMonth)
	days := month.Days()
	convs := make([]domain.Conversion, 0, count)

	for i := 0; i < count; i++ {
		ad := choice(g.r, ads)
		day := time.Date(month.Year, month.Month, intn(g.r, 1, days), 0, 0, 0, 0, time.UTC)
		ts := clock(g.r, day, false)
		kind := choice(g.r, domain.ConversionTypes)

		conv := domain.Conversion{
			ID:         eventID(g.r, "CONV"),
			UserID:     userID(g.r),
			AdID:       ad.ID,
			CampaignID: ad.CampaignID,
			Timestamp:  domain.NewTimestamp(ts),
			Type:       kind,
		}
		if kind == domain.ConversionPurchase {
			conv.Value = money.Round(uniform(g.r, minPurchaseValue, maxPurchaseValue), 2)
		}
		conv.Attribution = domain.Attribution{
			Model:       choice(g.r, domain.AttributionModels),
			Touchpoints: intn(g.r, 1, maxTouchpoints),
		}
		conv.DeviceType = choice(g.r, domain.DeviceTypes)
		conv.Region = choice(g.r, domain.Regions)
		convs = append(convs, conv)
	}
	return convs
}
