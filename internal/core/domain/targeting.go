package domain

// Targeting describes who should see an ad. Segments and Regions are
// non-empty subsets of AudienceSegments and Regions without duplicates.
type Targeting struct {
	Segments []string `json:"segments"`
	AgeRange string   `json:"age_range"`
	Regions  []string `json:"regions"`
}
