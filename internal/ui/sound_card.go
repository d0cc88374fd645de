package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/litimahmed/ambient-player/internal/model"
	"github.com/litimahmed/ambient-player/internal/playback"
)

// SoundCard represents one catalog entry as a compact row widget with a
// toggle button.
type SoundCard struct {
	widget.BaseWidget

	sound model.Sound

	// UI components
	iconLabel *widget.Label
	nameLabel *widget.Label
	descLabel *widget.Label
	toggleBtn *widget.Button
	content   *fyne.Container

	// Callbacks
	onToggle func(sound model.Sound)
}

// NewSoundCard creates a new sound card widget
func NewSoundCard(sound model.Sound, onToggle func(model.Sound)) *SoundCard {
	sc := &SoundCard{
		sound:    sound,
		onToggle: onToggle,
	}
	sc.ExtendBaseWidget(sc)
	sc.createUI()
	return sc
}

// createUI creates and arranges the card components
func (sc *SoundCard) createUI() {
	sc.iconLabel = widget.NewLabel(sc.sound.Icon)
	sc.nameLabel = widget.NewLabel(sc.sound.Name)
	sc.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	sc.descLabel = widget.NewLabel(sc.sound.Description)

	sc.toggleBtn = widget.NewButton(IconPlay, func() {
		if sc.onToggle != nil {
			sc.onToggle(sc.sound)
		}
	})

	text := container.NewVBox(sc.nameLabel, sc.descLabel)
	sc.content = container.NewBorder(nil, nil, sc.iconLabel, sc.toggleBtn, text)
}

// CreateRenderer creates the widget renderer
func (sc *SoundCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sc.content)
}

// UpdateState refreshes the card from the playback snapshot
func (sc *SoundCard) UpdateState(snap playback.Snapshot) {
	active := snap.Sound != nil && snap.Sound.ID == sc.sound.ID

	switch {
	case active && snap.IsPlaying():
		sc.toggleBtn.SetText(IconStop)
		sc.toggleBtn.Importance = widget.HighImportance
	case active && snap.IsLoading():
		sc.toggleBtn.SetText(IconLoading)
		sc.toggleBtn.Importance = widget.MediumImportance
	default:
		sc.toggleBtn.SetText(IconPlay)
		sc.toggleBtn.Importance = widget.MediumImportance
	}
	sc.toggleBtn.Refresh()
}
