package domain

// Creative is the visible part of an ad.
type Creative struct {
	Headline string `json:"headline"`
	CTA      string `json:"cta"`
	ImageURL string `json:"image_url"`
}
