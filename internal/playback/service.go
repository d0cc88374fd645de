package playback

import (
	"log"
	"sync"
	"time"

	"github.com/litimahmed/ambient-player/internal/model"
)

// startRetryDelay is the fixed-delay fallback for the start attempt: if the
// backend's ready callback is slow, the resource is asked to start once more
// after this long. Missing the retry does not fail the request.
const startRetryDelay = 300 * time.Millisecond

// Service handles ambient sound playback. It implements Player.
//
// The original event-loop design relies on a single UI thread; here the
// backend callbacks and the fallback timer arrive on arbitrary goroutines,
// so all state lives behind one mutex and the generation is re-checked after
// every unlock.
type Service struct {
	backend Backend
	store   VolumeStore
	catalog []model.Sound

	mu         sync.Mutex
	generation uint64
	current    *model.Sound
	status     model.PlaybackStatus
	volume     float64
	resource   Resource
	started    bool // one successful start transition per generation

	retryDelay time.Duration
	onUpdate   func(Snapshot) // callback for UI updates
}

// NewService creates a new playback service. The initial volume is read from
// the store once at construction.
func NewService(backend Backend, store VolumeStore, catalog []model.Sound) *Service {
	return &Service{
		backend:    backend,
		store:      store,
		catalog:    catalog,
		status:     model.PlaybackIdle,
		volume:     store.GetAmbientVolume(),
		retryDelay: startRetryDelay,
	}
}

// SetUpdateCallback sets the callback function for state updates
func (s *Service) SetUpdateCallback(callback func(Snapshot)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Sounds returns the selectable sound catalog
func (s *Service) Sounds() []model.Sound {
	sounds := make([]model.Sound, len(s.catalog))
	copy(sounds, s.catalog)
	return sounds
}

// Snapshot returns the current observable playback state
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Service) snapshotLocked() Snapshot {
	snap := Snapshot{Status: s.status, Volume: s.volume}
	if s.current != nil {
		sound := *s.current
		snap.Sound = &sound
	}
	return snap
}

// Play starts a new play request for the given sound. It always supersedes
// whatever is pending or active: the generation is bumped, the old resource
// is released, and any in-flight callback for it becomes a no-op.
func (s *Service) Play(sound model.Sound) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	old := s.resource
	s.resource = nil
	s.started = false
	current := sound
	s.current = &current
	s.status = model.PlaybackLoading
	volume := s.volume
	s.mu.Unlock()

	if old != nil {
		old.Release()
	}
	s.notifyUpdate()

	log.Printf("playback: loading %q (generation %d)", sound.ID, gen)

	res, err := s.backend.NewResource(ResourceRequest{
		Path:   sound.AudioPath,
		Loop:   true,
		Volume: volume,
		OnReady: func(r Resource) {
			s.attemptStart(gen, r)
		},
		OnError: func(r Resource, err error) {
			s.handleLoadError(gen, r, err)
		},
	})
	if err != nil {
		s.handleLoadError(gen, nil, err)
		return
	}

	s.adopt(gen, res)

	// Three triggers feed the same idempotent start routine: the backend's
	// ready callback above, an immediate attempt for instantly-playable
	// resources, and a fixed-delay retry in case the ready callback is slow.
	s.attemptStart(gen, res)
	time.AfterFunc(s.retryDelay, func() {
		s.attemptStart(gen, res)
	})
}

// adopt records the freshly created resource as the owned one, unless the
// request was already superseded while the backend was creating it.
func (s *Service) adopt(gen uint64, res Resource) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		res.Release()
		return
	}
	s.resource = res
	s.mu.Unlock()
}

// attemptStart tries to start playback for the given generation. Stale
// generations release their resource so a superseded request can never
// become audible; a successful start is applied at most once.
func (s *Service) attemptStart(gen uint64, res Resource) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		res.Release()
		return
	}
	if s.started {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if err := res.Play(); err != nil {
		// Start attempts may be rejected while the resource is still
		// loading. The remaining triggers retry; if none succeeds the
		// request stays in Loading until superseded or stopped.
		log.Printf("playback: start attempt failed (generation %d): %v", gen, err)
		return
	}

	s.mu.Lock()
	if gen != s.generation {
		// Superseded between Play returning and the re-check. The resource
		// may already be audible, so it must be silenced, not just dropped.
		s.mu.Unlock()
		res.Release()
		return
	}
	changed := false
	if !s.started {
		s.started = true
		s.status = model.PlaybackPlaying
		changed = true
	}
	s.mu.Unlock()

	if changed {
		s.notifyUpdate()
	}
}

// handleLoadError recovers from a failed load: the controller returns to
// Idle and the failure is visible only through the cleared loading state.
func (s *Service) handleLoadError(gen uint64, res Resource, err error) {
	if res != nil {
		res.Release()
	}

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	s.resource = nil
	s.current = nil
	s.started = false
	s.status = model.PlaybackIdle
	s.mu.Unlock()

	log.Printf("playback: failed to load ambient sound: %v", err)
	s.notifyUpdate()
}

// Stop halts playback and resets to Idle. Safe to call at any time,
// including when already idle. Bumping the generation invalidates every
// in-flight callback of the stopped request.
func (s *Service) Stop() {
	s.mu.Lock()
	s.generation++
	old := s.resource
	s.resource = nil
	s.current = nil
	s.started = false
	s.status = model.PlaybackIdle
	s.mu.Unlock()

	if old != nil {
		old.Release()
	}
	s.notifyUpdate()
}

// Toggle stops the sound if it is the one currently playing, otherwise
// starts it.
func (s *Service) Toggle(sound model.Sound) {
	s.mu.Lock()
	same := s.status == model.PlaybackPlaying && s.current != nil && s.current.ID == sound.ID
	s.mu.Unlock()

	if same {
		s.Stop()
		return
	}
	s.Play(sound)
}

// SetVolume persists the volume and applies it to the owned resource,
// whether it is still loading or already playing. Callers pass values in
// [0,1]; the range is a caller contract and not clamped here.
func (s *Service) SetVolume(v float64) {
	s.store.SetAmbientVolume(v)

	s.mu.Lock()
	s.volume = v
	res := s.resource
	s.mu.Unlock()

	if res != nil {
		res.SetVolume(v)
	}
	s.notifyUpdate()
}

// Close releases all playback resources. The service must not be used
// afterwards.
func (s *Service) Close() {
	s.Stop()
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate() {
	s.mu.Lock()
	callback := s.onUpdate
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if callback != nil {
		callback(snap)
	}
}
