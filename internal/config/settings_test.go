package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAmbientVolume_Default(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetAmbientVolume(); got != DefaultAmbientVolume {
		t.Errorf("Expected default volume %v, got %v", DefaultAmbientVolume, got)
	}
}

func TestAmbientVolume_RoundTrip(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetAmbientVolume(0.7)

	if raw := app.Preferences().String(KeyAmbientVolume); raw != "0.7" {
		t.Errorf("Expected persisted string \"0.7\", got %q", raw)
	}

	// A fresh Settings over the same preferences sees the stored value,
	// matching a controller re-initialization.
	reopened := NewSettings(app)
	if got := reopened.GetAmbientVolume(); got != 0.7 {
		t.Errorf("Expected reopened volume 0.7, got %v", got)
	}
}

func TestAmbientVolume_UnparsableFallsBack(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(KeyAmbientVolume, "loud")

	settings := NewSettings(app)
	if got := settings.GetAmbientVolume(); got != DefaultAmbientVolume {
		t.Errorf("Expected fallback to default, got %v", got)
	}
}

func TestSoundsDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetSoundsDirectory()
	if dir == "" {
		t.Error("Sounds directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/sounds"
	settings.SetSoundsDirectory(customDir)

	if got := settings.GetSoundsDirectory(); got != customDir {
		t.Errorf("Expected sounds directory %s, got %s", customDir, got)
	}
}
