package model

// Sound describes one selectable ambient sound
type Sound struct {
	ID          string // unique key, e.g. "rain"
	Name        string // display name
	Icon        string // display glyph
	Description string // short display description
	AudioPath   string // relative path to a loop-able audio asset
}

// catalog is the fixed set of ambient sounds shipped with the app.
// IDs must be unique; the slice itself is never handed out directly.
var catalog = []Sound{
	{
		ID:          "birds",
		Name:        "Birds",
		Icon:        "🐦",
		Description: "Morning bird calls",
		AudioPath:   "birds-chirping.mp3",
	},
	{
		ID:          "rain",
		Name:        "Rain",
		Icon:        "🌧️",
		Description: "Steady rainfall",
		AudioPath:   "gentle-rain.mp3",
	},
	{
		ID:          "waves",
		Name:        "Ocean Waves",
		Icon:        "🌊",
		Description: "Waves on the shore",
		AudioPath:   "ocean-waves.mp3",
	},
	{
		ID:          "fire",
		Name:        "Fireplace",
		Icon:        "🔥",
		Description: "Crackling fireplace",
		AudioPath:   "fireplace.mp3",
	},
}

// Catalog returns the ambient sound catalog. A fresh slice is returned on
// every call so callers cannot mutate the shared table.
func Catalog() []Sound {
	sounds := make([]Sound, len(catalog))
	copy(sounds, catalog)
	return sounds
}

// SoundByID returns the catalog entry with the given ID
func SoundByID(id string) (Sound, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Sound{}, false
}
