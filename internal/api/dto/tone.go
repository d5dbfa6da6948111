package dto

// ToneResponse represents one catalog tone in API responses
type ToneResponse struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Frequency float64 `json:"frequency"`
	Duration  float64 `json:"duration"`
}

// ToneListResponse represents the tone catalog
type ToneListResponse struct {
	Tones []ToneResponse `json:"tones"`
}
