package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/litimahmed/ambient-player/internal/model"
	"github.com/litimahmed/ambient-player/internal/playback"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	player playback.Player

	// UI components
	cards        map[string]*SoundCard
	volumeSlider *widget.Slider
	statusLabel  *widget.Label
	loadingBar   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, player playback.Player) *RootUI {
	ui := &RootUI{
		window: window,
		player: player,
		cards:  make(map[string]*SoundCard),
	}

	// Playback updates arrive on arbitrary goroutines and are marshaled
	// onto the UI thread in onPlaybackUpdate.
	ui.player.SetUpdateCallback(ui.onPlaybackUpdate)

	ui.setupUI()
	ui.applySnapshot(player.Snapshot())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	header := widget.NewLabelWithStyle(HeaderText, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	cardList := container.NewVBox()
	for _, sound := range ui.player.Sounds() {
		card := NewSoundCard(sound, ui.onSoundToggle)
		ui.cards[sound.ID] = card
		cardList.Add(card)
	}

	snap := ui.player.Snapshot()
	ui.volumeSlider = widget.NewSlider(VolumeSliderMin, VolumeSliderMax)
	ui.volumeSlider.Step = VolumeSliderStep
	ui.volumeSlider.Value = snap.Volume
	ui.volumeSlider.OnChanged = ui.onVolumeChanged
	volumeRow := container.NewBorder(nil, nil, widget.NewLabel(IconVolume), nil, ui.volumeSlider)

	ui.statusLabel = widget.NewLabel(StatusIdleText)
	ui.loadingBar = widget.NewProgressBarInfinite()
	ui.loadingBar.Hide()

	content := container.NewVBox(
		header,
		widget.NewSeparator(),
		cardList,
		widget.NewSeparator(),
		volumeRow,
		ui.statusLabel,
		ui.loadingBar,
	)
	ui.window.SetContent(container.NewPadded(content))
}

// onSoundToggle handles a card button press
func (ui *RootUI) onSoundToggle(sound model.Sound) {
	ui.player.Toggle(sound)
}

// onVolumeChanged handles the volume slider
func (ui *RootUI) onVolumeChanged(v float64) {
	ui.player.SetVolume(v)
}

// onPlaybackUpdate receives playback state changes, possibly off the UI
// thread
func (ui *RootUI) onPlaybackUpdate(snap playback.Snapshot) {
	fyne.Do(func() {
		ui.applySnapshot(snap)
	})
}

// applySnapshot refreshes all components from one playback snapshot. Must be
// called on the UI thread.
func (ui *RootUI) applySnapshot(snap playback.Snapshot) {
	for _, card := range ui.cards {
		card.UpdateState(snap)
	}

	switch {
	case snap.IsLoading() && snap.Sound != nil:
		ui.statusLabel.SetText(fmt.Sprintf(StatusLoadingFormat, snap.Sound.Name))
		ui.loadingBar.Show()
	case snap.IsPlaying() && snap.Sound != nil:
		ui.statusLabel.SetText(fmt.Sprintf(StatusPlayingFormat, snap.Sound.Icon, snap.Sound.Name))
		ui.loadingBar.Hide()
	default:
		ui.statusLabel.SetText(StatusIdleText)
		ui.loadingBar.Hide()
	}
}
