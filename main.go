package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/litimahmed/ambient-player/internal/audio"
	"github.com/litimahmed/ambient-player/internal/config"
	"github.com/litimahmed/ambient-player/internal/model"
	"github.com/litimahmed/ambient-player/internal/playback"
	"github.com/litimahmed/ambient-player/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.litimahmed.ambient-player"
	AppName = "Ambient Player"

	WindowWidth  = 420
	WindowHeight = 540
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	soundsDir := settings.GetSoundsDirectory()

	backend, err := audio.NewBackend(soundsDir)
	if err != nil {
		log.Printf("failed to initialize audio output: %v", err)
		os.Exit(1)
	}

	player := playback.NewService(backend, settings, model.Catalog())
	defer player.Close()

	// Create and setup UI
	ui.NewRootUI(myWindow, player)

	// Show and run
	myWindow.ShowAndRun()
}
