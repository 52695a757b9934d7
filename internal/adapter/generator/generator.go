// Package generator implements port.Generator with a single explicit
// pseudo-random source.
package generator

import (
	"math/rand"
	"time"

	"marketing-datagen/internal/core/port"
)

// Record-count bounds, inclusive.
const (
	minAdsPerCampaign = 3
	maxAdsPerCampaign = 8
	minCampaignBudget = 5000
	maxCampaignBudget = 50000

	minImpressionsPerDay = 500
	maxImpressionsPerDay = 2000

	minConversionsPerMonth = 200
	maxConversionsPerMonth = 800

	minTransactionsPerDay = 20
	maxTransactionsPerDay = 100
)

var _ port.Generator = (*Generator)(nil)

// Generator draws every record from r. It is not safe for concurrent use.
type Generator struct {
	r *rand.Rand

	// start anchors ad creation dates.
	start time.Time
	// firstAdID is the numeric suffix of the first ad id.
	firstAdID int
}

// New returns a Generator seeded with seed. Ads are dated relative to
// start.
func New(seed int64, start time.Time) *Generator {
	return &Generator{
		r:         rand.New(rand.NewSource(seed)),
		start:     start,
		firstAdID: 1000,
	}
}
