package port

import (
	"time"

	"marketing-datagen/internal/calendar"
	"marketing-datagen/internal/core/domain"
)

// Generator produces the synthetic records. Every event generator picks its
// ad independently from the supplied list, so events reference ads only by
// copying their identifiers. Implementations need not be concurrency-safe.
type Generator interface {
	// Ads returns the ad list for all campaigns, in campaign order.
	Ads() []domain.Ad
	// Impressions returns the impressions shown on day.
	Impressions(day time.Time, ads []domain.Ad) []domain.Impression
	// Conversions returns the conversions recorded during month.
	Conversions(month calendar.Month, ads []domain.Ad) []domain.Conversion
	// Revenue returns the transactions completed on day.
	Revenue(day time.Time, ads []domain.Ad) []domain.RevenueTransaction
}
