package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconPlay    = "▶"
	IconStop    = "⏹"
	IconLoading = "…"
	IconVolume  = "🔊"
)

// Status line texts
const (
	StatusIdleText      = "Select a sound"
	StatusLoadingFormat = "Loading %s…"
	StatusPlayingFormat = "Now playing: %s %s"
)

// Volume slider range
const (
	VolumeSliderMin  = 0.0
	VolumeSliderMax  = 1.0
	VolumeSliderStep = 0.01
)

// Header text
const (
	HeaderText = "Ambient Sounds"
)
