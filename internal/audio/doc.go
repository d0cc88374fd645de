package audio

// Package audio implements the playback.Backend port on top of the beep
// audio library. Each resource decodes one asset off the UI goroutine, wraps
// it in an infinite loop with live volume control, and submits it to the
// shared speaker mixer on the first successful start attempt.
