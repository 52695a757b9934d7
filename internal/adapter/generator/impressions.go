package generator

import (
	"time"

	"marketing-datagen/internal/core/domain"
	"marketing-datagen/internal/money"
)

const (
	clickRate         = 0.08
	engagementRate    = 0.3
	maxEngagement     = 45
	minImpressionCost = 0.05
	maxImpressionCost = 2.5
)

// Impressions draws a day's impressions. Each one picks its own ad, and its
// region is always one of that ad's target regions.
func (g *Generator) Impressions(day time.Time, ads []domain.Ad) []domain.Impression {
	count := intn(g.r, minImpressionsPerDay, maxImpressionsPerDay)
	imps := make([]domain.Impression, 0, count)

	for i := 0; i < count; i++ {
		ad := choice(g.r, ads)
		ts := clock(g.r, day, true)

		imp := domain.Impression{
			ID:                eventID(g.r, "IMP"),
			AdID:              ad.ID,
			CampaignID:        ad.CampaignID,
			Timestamp:         domain.NewTimestamp(ts),
			UserID:            userID(g.r),
			Platform:          ad.Platform,
			DeviceType:        choice(g.r, domain.DeviceTypes),
			Region:            choice(g.r, ad.Target.Regions),
			Clicked:           chance(g.r, clickRate),
			CostPerImpression: money.Round(uniform(g.r, minImpressionCost, maxImpressionCost), 3),
		}
		if chance(g.r, engagementRate) {
			imp.EngagementSeconds = intn(g.r, 0, maxEngagement)
		}
		imps = append(imps, imp)
	}
	return imps
}
