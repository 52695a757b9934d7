package generator

import (
	"time"

	"marketing-datagen/internal/core/domain"
	"marketing-datagen/internal/money"
)

const (
	attributionRate = 0.7
	discountRate    = 0.2
	maxDiscount     = 50
	maxQuantity     = 3
)

// Revenue draws a day's transactions. A single draw decides attribution, so
// the ad and campaign ids are either both set or both nil.
func (g *Generator) Revenue(day time.Time, ads []domain.Ad) []domain.RevenueTransaction {
	count := intn(g.r, minTransactionsPerDay, maxTransactionsPerDay)
	txns := make([]domain.RevenueTransaction, 0, count)

	for i := 0; i < count; i++ {
		ad := choice(g.r, ads)
		product := choice(g.r, domain.Products)
		quantity := intn(g.r, 1, maxQuantity)
		ts := clock(g.r, day, false)

		txn := domain.RevenueTransaction{
			ID:        eventID(g.r, "TXN"),
			UserID:    userID(g.r),
			Timestamp: domain.NewTimestamp(ts),
			Product: domain.ProductLine{
				ID:       product.ID,
				Name:     product.Name,
				Price:    product.Price,
				Quantity: quantity,
			},
			TotalAmount: money.Mul(product.Price, quantity),
		}
		if chance(g.r, attributionRate) {
			adID, campaignID := ad.ID, ad.CampaignID
			txn.AttributedAdID = &adID
			txn.AttributedCampaignID = &campaignID
		}
		if chance(g.r, discountRate) {
			txn.DiscountApplied = money.Round(uniform(g.r, 0, maxDiscount), 2)
		}
		txn.PaymentMethod = choice(g.r, domain.PaymentMethods)
		txn.Region = choice(g.r, domain.Regions)
		txn.CustomerType = choice(g.r, domain.CustomerTypes)
		txns = append(txns, txn)
	}
	return txns
}
