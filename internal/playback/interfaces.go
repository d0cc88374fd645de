package playback

import (
	"github.com/litimahmed/ambient-player/internal/model"
)

// Player defines the interface for the playback service consumed by the UI.
// Play, Stop and Toggle are fire-and-forget: completion is observed through
// the update callback and Snapshot, never through a return value.
type Player interface {
	SetUpdateCallback(func(Snapshot))
	Sounds() []model.Sound
	Play(sound model.Sound)
	Stop()
	Toggle(sound model.Sound)
	SetVolume(v float64)
	Snapshot() Snapshot
	Close()
}

// Snapshot is the observable playback state published to the UI
type Snapshot struct {
	Sound  *model.Sound // current sound, nil when idle
	Status model.PlaybackStatus
	Volume float64
}

// IsPlaying reports whether playback has been confirmed for the current sound
func (s Snapshot) IsPlaying() bool {
	return s.Status == model.PlaybackPlaying
}

// IsLoading reports whether a play request is still in flight
func (s Snapshot) IsLoading() bool {
	return s.Status == model.PlaybackLoading
}

// Resource is one underlying audio resource, exclusively owned by the
// service. Implementations must make every method safe to call more than
// once: Play is an idempotent start attempt that returns an error while the
// resource is not yet startable (or already released), and Release is a
// no-op after the first call.
type Resource interface {
	Play() error
	SetVolume(v float64)
	Release()
}

// ResourceRequest describes one audio resource to create. The callbacks
// receive the resource they belong to because they may fire before
// NewResource returns.
type ResourceRequest struct {
	Path   string
	Loop   bool
	Volume float64

	// OnReady fires once the resource has loaded to a playable point.
	OnReady func(Resource)
	// OnError fires when loading fails. The resource is unusable afterwards.
	OnError func(Resource, error)
}

// Backend creates audio resources and begins loading them asynchronously
type Backend interface {
	NewResource(req ResourceRequest) (Resource, error)
}

// VolumeStore persists the volume preference between runs
type VolumeStore interface {
	GetAmbientVolume() float64
	SetAmbientVolume(v float64)
}
