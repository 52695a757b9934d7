package port

import (
	"context"
	"time"

	"marketing-datagen/internal/calendar"
	"marketing-datagen/internal/core/domain"
)

// DatasetWriter persists generated buckets. It is the outbound port of the
// pipeline; each method writes one complete bucket and returns the first
// I/O error encountered.
type DatasetWriter interface {
	// WriteAds stores the full ad list.
	WriteAds(ctx context.Context, ads []domain.Ad) error
	// WriteWeeklyImpressions stores the impressions of the week starting on
	// weekStart (a Monday).
	WriteWeeklyImpressions(ctx context.Context, weekStart time.Time, imps []domain.Impression) error
	// WriteMonthlyImpressions stores the impressions of month.
	WriteMonthlyImpressions(ctx context.Context, month calendar.Month, imps []domain.Impression) error
	// WriteConversions stores the conversions of month.
	WriteConversions(ctx context.Context, month calendar.Month, convs []domain.Conversion) error
	// WriteRevenue stores the transactions of day.
	WriteRevenue(ctx context.Context, day time.Time, txns []domain.RevenueTransaction) error
}
