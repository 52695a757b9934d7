package port

import (
	"context"
	"time"
)

// DatasetUseCase runs the whole generation pipeline over a date range.
type DatasetUseCase interface {
	// Generate produces and writes every dataset for the days from..to
	// inclusive. It stops at the first write error; files already written
	// are left in place.
	Generate(ctx context.Context, from, to time.Time) (*Summary, error)
}

// Summary reports what a run produced.
type Summary struct {
	Ads                    int
	Impressions            int
	Conversions            int
	Transactions           int
	WeeklyImpressionFiles  int
	MonthlyImpressionFiles int
	ConversionFiles        int
	RevenueFiles           int
}
