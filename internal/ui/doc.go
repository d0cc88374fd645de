package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the playback service and
// renders the sound catalog, the volume slider, and the playback status.
