package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketing-datagen/internal/calendar"
	"marketing-datagen/internal/core/domain"
	"marketing-datagen/internal/core/port"
)

var _ port.DatasetUseCase = (*DatasetUseCase)(nil)

// DatasetUseCase drives the generation pipeline. Ads are generated first
// so that every later stage can reference them, then impressions,
// conversions and revenue are generated and written bucket by bucket.
type DatasetUseCase struct {
	gen    port.Generator
	writer port.DatasetWriter
	logger *slog.Logger
}

// NewDatasetUseCase wires a generator to a writer.
func NewDatasetUseCase(gen port.Generator, writer port.DatasetWriter, logger *slog.Logger) *DatasetUseCase {
	return &DatasetUseCase{gen: gen, writer: writer, logger: logger}
}

// Generate runs the pipeline for the days from..to inclusive. The first
// write error aborts the run.
func (u *DatasetUseCase) Generate(ctx context.Context, from, to time.Time) (*port.Summary, error) {
	var summary port.Summary

	u.logger.Info("generating ads")
	ads := u.gen.Ads()
	if err := u.writer.WriteAds(ctx, ads); err != nil {
		return nil, fmt.Errorf("write ads: %w", err)
	}
	summary.Ads = len(ads)

	u.logger.Info("generating impressions")
	if err := u.impressions(ctx, from, to, ads, &summary); err != nil {
		return nil, err
	}

	u.logger.Info("generating conversions")
	for _, month := range calendar.Months(from, to) {
		convs := u.gen.Conversions(month, ads)
		if err := u.writer.WriteConversions(ctx, month, convs); err != nil {
			return nil, fmt.Errorf("write conversions %s: %w", month, err)
		}
		summary.Conversions += len(convs)
		summary.ConversionFiles++
	}

	u.logger.Info("generating revenue")
	for _, day := range calendar.Days(from, to) {
		txns := u.gen.Revenue(day, ads)
		if err := u.writer.WriteRevenue(ctx, day, txns); err != nil {
			return nil, fmt.Errorf("write revenue %s: %w", day.Format(calendar.DateLayout), err)
		}
		summary.Transactions += len(txns)
		summary.RevenueFiles++
	}

	return &summary, nil
}

// impressions generates every day's impressions and writes them twice: once
// grouped by Monday-anchored week and once by calendar month. Both groupings
// are held in memory until all days are generated.
func (u *DatasetUseCase) impressions(ctx context.Context, from, to time.Time, ads []domain.Ad, summary *port.Summary) error {
	weekly := newBuckets[time.Time]()
	monthly := newBuckets[calendar.Month]()

	for _, day := range calendar.Days(from, to) {
		imps := u.gen.Impressions(day, ads)
		weekly.add(calendar.WeekStart(day), imps)
		monthly.add(calendar.MonthOf(day), imps)
		summary.Impressions += len(imps)
	}

	for _, week := range weekly.keys {
		if err := u.writer.WriteWeeklyImpressions(ctx, week, weekly.records[week]); err != nil {
			return fmt.Errorf("write weekly impressions %s: %w", week.Format(calendar.DateLayout), err)
		}
		summary.WeeklyImpressionFiles++
	}
	for _, month := range monthly.keys {
		if err := u.writer.WriteMonthlyImpressions(ctx, month, monthly.records[month]); err != nil {
			return fmt.Errorf("write monthly impressions %s: %w", month, err)
		}
		summary.MonthlyImpressionFiles++
	}
	return nil
}

// buckets groups impressions by key, remembering first-seen key order.
type buckets[K comparable] struct {
	keys    []K
	records map[K][]domain.Impression
}

func newBuckets[K comparable]() *buckets[K] {
	return &buckets[K]{records: make(map[K][]domain.Impression)}
}

func (b *buckets[K]) add(key K, imps []domain.Impression) {
	if _, ok := b.records[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.records[key] = append(b.records[key], imps...)
}
