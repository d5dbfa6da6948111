package tone

import "errors"

var ErrToneNotFound = errors.New("tone not found")

// Tone is a named alarm sound definition. Tones are synthesized, not
// shipped as assets, so a tone is fully described by frequency and duration.
type Tone struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Frequency float64 `json:"frequency_hz"`
	Duration  float64 `json:"duration_seconds"`
}

// catalog is the fixed set of tones the alarm screen offers. IDs are stored
// in scheduled alarms, keep them stable.
var catalog = []Tone{
	{ID: "classic", Label: "Classic Bell", Frequency: 880, Duration: 0.75},
	{ID: "gentle", Label: "Gentle Rise", Frequency: 440, Duration: 1.0},
	{ID: "chirp", Label: "Morning Chirp", Frequency: 1320, Duration: 0.4},
	{ID: "deep", Label: "Deep Hum", Frequency: 220, Duration: 1.2},
}

// Catalog returns the full tone catalog in display order.
func Catalog() []Tone {
	out := make([]Tone, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a tone by ID.
func Lookup(id string) (Tone, error) {
	for _, t := range catalog {
		if t.ID == id {
			return t, nil
		}
	}
	return Tone{}, ErrToneNotFound
}
