package model

// PlaybackStatus represents the status of the ambient playback controller
type PlaybackStatus string

const (
	// PlaybackIdle means no sound is selected or loading
	PlaybackIdle PlaybackStatus = "Idle"

	// PlaybackLoading means a play request is in flight but playback has not
	// been confirmed yet
	PlaybackLoading PlaybackStatus = "Loading"

	// PlaybackPlaying means the underlying audio resource confirmed playback
	PlaybackPlaying PlaybackStatus = "Playing"
)

// String returns the string representation of PlaybackStatus
func (ps PlaybackStatus) String() string {
	return string(ps)
}

// IsActive returns true if a play request is loading or playing
func (ps PlaybackStatus) IsActive() bool {
	return ps == PlaybackLoading || ps == PlaybackPlaying
}
