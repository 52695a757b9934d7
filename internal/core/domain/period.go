package domain

import "time"

// The dataset covers RangeStart through RangeEnd, both inclusive.
var (
	RangeStart = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	RangeEnd   = time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
)
