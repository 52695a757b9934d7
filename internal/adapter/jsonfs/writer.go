// Package jsonfs implements port.DatasetWriter on the local filesystem,
// writing every bucket as an indented JSON array.
package jsonfs

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"marketing-datagen/internal/calendar"
	"marketing-datagen/internal/core/domain"
	"marketing-datagen/internal/core/port"
)

var _ port.DatasetWriter = (*Writer)(nil)

// Writer stores datasets under a base directory:
//
//	ads.json
//	impressions/weekly/<week-start>.json
//	impressions/monthly/<year>/<month>.json
//	conversions/<year>-<month>.json
//	revenue/<date>.json
type Writer struct {
	baseDir string
	logger  *slog.Logger
}

// NewWriter returns a writer rooted at baseDir. Directories are created on
// demand.
func NewWriter(baseDir string, logger *slog.Logger) *Writer {
	return &Writer{baseDir: baseDir, logger: logger}
}

// BaseDir returns the root of the dataset tree.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// AdsPath returns the location of the ad list.
func (w *Writer) AdsPath() string {
	return filepath.Join(w.baseDir, "ads.json")
}

// WeeklyImpressionsPath returns the file for the week starting on weekStart.
func (w *Writer) WeeklyImpressionsPath(weekStart time.Time) string {
	return filepath.Join(w.baseDir, "impressions", "weekly", weekStart.Format(calendar.DateLayout)+".json")
}

// MonthlyImpressionsPath returns the impression file for month.
func (w *Writer) MonthlyImpressionsPath(month calendar.Month) string {
	return filepath.Join(w.baseDir, "impressions", "monthly", fmt.Sprint(month.Year), month.Number()+".json")
}

// ConversionsPath returns the conversion file for month.
func (w *Writer) ConversionsPath(month calendar.Month) string {
	return filepath.Join(w.baseDir, "conversions", month.String()+".json")
}

// RevenuePath returns the revenue file for day.
func (w *Writer) RevenuePath(day time.Time) string {
	return filepath.Join(w.baseDir, "revenue", day.Format(calendar.DateLayout)+".json")
}

// WriteAds stores the full ad list.
func (w *Writer) WriteAds(ctx context.Context, ads []domain.Ad) error {
	return writeJSON(ctx, w, w.AdsPath(), ads)
}

// WriteWeeklyImpressions stores one week of impressions.
func (w *Writer) WriteWeeklyImpressions(ctx context.Context, weekStart time.Time, imps []domain.Impression) error {
	return writeJSON(ctx, w, w.WeeklyImpressionsPath(weekStart), imps)
}

// WriteMonthlyImpressions stores one month of impressions.
func (w *Writer) WriteMonthlyImpressions(ctx context.Context, month calendar.Month, imps []domain.Impression) error {
	return writeJSON(ctx, w, w.MonthlyImpressionsPath(month), imps)
}

// WriteConversions stores one month of conversions.
func (w *Writer) WriteConversions(ctx context.Context, month calendar.Month, convs []domain.Conversion) error {
	return writeJSON(ctx, w, w.ConversionsPath(month), convs)
}

// WriteRevenue stores one day of transactions.
func (w *Writer) WriteRevenue(ctx context.Context, day time.Time, txns []domain.RevenueTransaction) error {
	return writeJSON(ctx, w, w.RevenuePath(day), txns)
}

// writeJSON replaces the file at path with records encoded as an indented
// array. A nil slice is written as [] rather than null.
func writeJSON[T any](ctx context.Context, w *Writer, path string, records []T) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []T{}
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	buf := bufio.NewWriter(f)
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err = enc.Encode(records); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err = buf.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	w.logger.Debug("dataset written", slog.String("path", path), slog.Int("records", len(records)))
	return nil
}
