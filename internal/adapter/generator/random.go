package generator

import (
	"fmt"
	"math/rand"
	"time"
)

// intn returns a uniform integer in [lo, hi].
func intn(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// uniform returns a uniform float in [lo, hi).
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// chance reports whether a draw falls below p.
func chance(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}

func choice[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// sample returns k distinct elements of items in random order.
func sample[T any](r *rand.Rand, items []T, k int) []T {
	out := make([]T, k)
	for i, j := range r.Perm(len(items))[:k] {
		out[i] = items[j]
	}
	return out
}

// clock returns day at a random hour and minute, and a random second when
// withSeconds is set.
func clock(r *rand.Rand, day time.Time, withSeconds bool) time.Time {
	sec := 0
	if withSeconds {
		sec = r.Intn(60)
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, r.Intn(24), r.Intn(60), sec, 0, day.Location())
}

func userID(r *rand.Rand) string {
	return fmt.Sprintf("USER-%d", intn(r, 10000, 99999))
}

func eventID(r *rand.Rand, prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, intn(r, 100000, 999999))
}
