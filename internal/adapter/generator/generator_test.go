package generator

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-datagen/internal/calendar"
	"marketing-datagen/internal/core/domain"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	return New(42, domain.RangeStart)
}

func adIndex(ads []domain.Ad) map[string]domain.Ad {
	idx := make(map[string]domain.Ad, len(ads))
	for _, ad := range ads {
		idx[ad.ID] = ad
	}
	return idx
}

func assertDistinctSubset(t *testing.T, got, universe []string) {
	t.Helper()
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 3)
	seen := map[string]bool{}
	for _, v := range got {
		assert.Contains(t, universe, v)
		assert.False(t, seen[v], "duplicate entry %q", v)
		seen[v] = true
	}
}

func TestAds(t *testing.T) {
	ads := newTestGenerator(t).Ads()
	require.NotEmpty(t, ads)

	budgets := map[string]int{}
	perCampaign := map[string]int{}
	ids := map[string]bool{}

	for i, ad := range ads {
		assert.False(t, ids[ad.ID], "duplicate ad id %s", ad.ID)
		ids[ad.ID] = true
		if i == 0 {
			assert.Equal(t, "AD-1000", ad.ID)
		}

		if b, ok := budgets[ad.CampaignID]; ok {
			assert.Equal(t, b, ad.CampaignBudget, "campaign %s has mixed budgets", ad.CampaignID)
		}
		budgets[ad.CampaignID] = ad.CampaignBudget
		perCampaign[ad.CampaignID]++

		assert.GreaterOrEqual(t, ad.CampaignBudget, minCampaignBudget)
		assert.LessOrEqual(t, ad.CampaignBudget, maxCampaignBudget)
		assert.InDelta(t, float64(ad.CampaignBudget)/domain.BudgetDays, ad.DailyBudget, 0.005)

		assertDistinctSubset(t, ad.Target.Segments, domain.AudienceSegments)
		assertDistinctSubset(t, ad.Target.Regions, domain.Regions)
		assert.Contains(t, domain.AgeRanges, ad.Target.AgeRange)
		assert.Contains(t, domain.Platforms, ad.Platform)
		assert.Contains(t, domain.AdTypes, ad.AdType)
		assert.Contains(t, domain.AdStatuses, ad.Status)

		age := domain.RangeStart.Sub(ad.CreatedAt.Time)
		assert.GreaterOrEqual(t, age, 7*24*time.Hour)
		assert.LessOrEqual(t, age, 30*24*time.Hour)
	}

	require.Len(t, perCampaign, len(domain.Campaigns))
	for campaign, n := range perCampaign {
		assert.GreaterOrEqual(t, n, minAdsPerCampaign, campaign)
		assert.LessOrEqual(t, n, maxAdsPerCampaign, campaign)
	}
}

func TestImpressions(t *testing.T) {
	g := newTestGenerator(t)
	ads := g.Ads()
	idx := adIndex(ads)
	day := time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC)

	imps := g.Impressions(day, ads)
	assert.GreaterOrEqual(t, len(imps), minImpressionsPerDay)
	assert.LessOrEqual(t, len(imps), maxImpressionsPerDay)

	for _, imp := range imps {
		ad, ok := idx[imp.AdID]
		require.True(t, ok, "impression references unknown ad %s", imp.AdID)
		assert.Equal(t, ad.CampaignID, imp.CampaignID)
		assert.Equal(t, ad.Platform, imp.Platform)
		assert.Contains(t, ad.Target.Regions, imp.Region)
		assert.Contains(t, domain.DeviceTypes, imp.DeviceType)
		assert.True(t, calendar.Day(imp.Timestamp.Time).Equal(day))
		assert.GreaterOrEqual(t, imp.CostPerImpression, minImpressionCost)
		assert.LessOrEqual(t, imp.CostPerImpression, maxImpressionCost)
		assert.GreaterOrEqual(t, imp.EngagementSeconds, 0)
		assert.LessOrEqual(t, imp.EngagementSeconds, maxEngagement)
	}
}

func TestConversions(t *testing.T) {
	g := newTestGenerator(t)
	ads := g.Ads()
	idx := adIndex(ads)

	for _, month := range []calendar.Month{
		{Year: 2025, Month: time.February},
		{Year: 2024, Month: time.February},
		{Year: 2025, Month: time.December},
	} {
		t.Run(month.String(), func(t *testing.T) {
			convs := g.Conversions(month, ads)
			assert.GreaterOrEqual(t, len(convs), minConversionsPerMonth)
			assert.LessOrEqual(t, len(convs), maxConversionsPerMonth)

			for _, c := range convs {
				_, ok := idx[c.AdID]
				require.True(t, ok, "conversion references unknown ad %s", c.AdID)
				assert.Equal(t, month, calendar.MonthOf(c.Timestamp.Time))
				assert.LessOrEqual(t, c.Timestamp.Day(), month.Days())
				assert.Zero(t, c.Timestamp.Second())

				if c.Type == domain.ConversionPurchase {
					assert.GreaterOrEqual(t, c.Value, float64(minPurchaseValue))
					assert.LessOrEqual(t, c.Value, float64(maxPurchaseValue))
				} else {
					assert.Zero(t, c.Value)
				}
				assert.Contains(t, domain.AttributionModels, c.Attribution.Model)
				assert.GreaterOrEqual(t, c.Attribution.Touchpoints, 1)
				assert.LessOrEqual(t, c.Attribution.Touchpoints, maxTouchpoints)
				assert.Contains(t, domain.Regions, c.Region)
			}
		})
	}
}

func TestRevenue(t *testing.T) {
	g := newTestGenerator(t)
	ads := g.Ads()
	idx := adIndex(ads)
	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	txns := g.Revenue(day, ads)
	assert.GreaterOrEqual(t, len(txns), minTransactionsPerDay)
	assert.LessOrEqual(t, len(txns), maxTransactionsPerDay)

	var attributed int
	for _, txn := range txns {
		expected := math.Round(txn.Product.Price*float64(txn.Product.Quantity)*100) / 100
		assert.InDelta(t, expected, txn.TotalAmount, 1e-9)
		assert.GreaterOrEqual(t, txn.Product.Quantity, 1)
		assert.LessOrEqual(t, txn.Product.Quantity, maxQuantity)
		assert.True(t, slices.ContainsFunc(domain.Products, func(p domain.Product) bool {
			return p.ID == txn.Product.ID && p.Price == txn.Product.Price
		}))

		if txn.Attributed() {
			attributed++
			require.NotNil(t, txn.AttributedCampaignID)
			ad, ok := idx[*txn.AttributedAdID]
			require.True(t, ok)
			assert.Equal(t, ad.CampaignID, *txn.AttributedCampaignID)
		} else {
			assert.Nil(t, txn.AttributedCampaignID)
		}

		assert.GreaterOrEqual(t, txn.DiscountApplied, 0.0)
		assert.LessOrEqual(t, txn.DiscountApplied, float64(maxDiscount))
		assert.Contains(t, domain.PaymentMethods, txn.PaymentMethod)
		assert.Contains(t, domain.CustomerTypes, txn.CustomerType)
		assert.True(t, calendar.Day(txn.Timestamp.Time).Equal(day))
	}
	assert.Positive(t, attributed)
}

func TestSameSeedSameRecords(t *testing.T) {
	a, b := New(7, domain.RangeStart), New(7, domain.RangeStart)
	adsA, adsB := a.Ads(), b.Ads()
	require.Equal(t, adsA, adsB)
	assert.Equal(t, a.Revenue(domain.RangeStart, adsA), b.Revenue(domain.RangeStart, adsB))

	c := New(8, domain.RangeStart)
	assert.NotEqual(t, adsA, c.Ads())
}
