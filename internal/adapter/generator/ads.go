package generator

import (
	"fmt"

	"marketing-datagen/internal/core/domain"
	"marketing-datagen/internal/money"
)

// Ads creates between three and eight ads per campaign. Every ad of a
// campaign shares the campaign's budget.
func (g *Generator) Ads() []domain.Ad {
	var ads []domain.Ad
	id := g.firstAdID

	for _, campaign := range domain.Campaigns {
		count := intn(g.r, minAdsPerCampaign, maxAdsPerCampaign)
		budget := intn(g.r, minCampaignBudget, maxCampaignBudget)

		for i := 1; i <= count; i++ {
			ads = append(ads, domain.Ad{
				ID:             fmt.Sprintf("AD-%d", id),
				CampaignID:     campaign,
				CampaignBudget: budget,
				Name:           fmt.Sprintf("%s_creative_%d", campaign, i),
				Platform:       choice(g.r, domain.Platforms),
				AdType:         choice(g.r, domain.AdTypes),
				Target: domain.Targeting{
					Segments: sample(g.r, domain.AudienceSegments, intn(g.r, 1, 3)),
					AgeRange: choice(g.r, domain.AgeRanges),
					Regions:  sample(g.r, domain.Regions, intn(g.r, 1, 3)),
				},
				Creative: domain.Creative{
					Headline: fmt.Sprintf("Amazing Deal %d", i),
					CTA:      choice(g.r, domain.CallsToAction),
					ImageURL: fmt.Sprintf("https://cdn.example.com/ad_%d.jpg", id),
				},
				Status:      choice(g.r, domain.AdStatuses),
				CreatedAt:   domain.NewTimestamp(g.start.AddDate(0, 0, -intn(g.r, 7, 30))),
				DailyBudget: money.Div(budget, domain.BudgetDays),
			})
			id++
		}
	}
	return ads
}
