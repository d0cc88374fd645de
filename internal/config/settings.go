package config

import (
	"strconv"

	"fyne.io/fyne/v2"

	"github.com/litimahmed/ambient-player/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAmbientVolume = "ambient_sound_volume"
	KeySoundsDir     = "sounds_directory"
)

// Default values
const (
	// DefaultAmbientVolume keeps background sound unobtrusive out of the box
	DefaultAmbientVolume = 0.3
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAmbientVolume returns the persisted ambient volume in [0,1]. The value
// is stored as a decimal string; anything absent or unparsable falls back to
// the default.
func (s *Settings) GetAmbientVolume() float64 {
	raw := s.app.Preferences().String(KeyAmbientVolume)
	if raw == "" {
		return DefaultAmbientVolume
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return DefaultAmbientVolume
	}
	return v
}

// SetAmbientVolume persists the ambient volume
func (s *Settings) SetAmbientVolume(v float64) {
	s.app.Preferences().SetString(KeyAmbientVolume, strconv.FormatFloat(v, 'f', -1, 64))
}

// GetSoundsDirectory returns the configured sound asset directory
func (s *Settings) GetSoundsDirectory() string {
	dir := s.app.Preferences().String(KeySoundsDir)
	if dir == "" {
		defaultDir := platform.DefaultSoundsDir()
		s.SetSoundsDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetSoundsDirectory sets the sound asset directory
func (s *Settings) SetSoundsDirectory(dir string) {
	s.app.Preferences().SetString(KeySoundsDir, dir)
}
