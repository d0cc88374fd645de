package audio

import (
	"fmt"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/google/uuid"

	"github.com/litimahmed/ambient-player/internal/platform"
	"github.com/litimahmed/ambient-player/internal/playback"
)

// Mixer and pipeline constants
const (
	// mixRate is the fixed speaker sample rate; resources at other rates
	// are resampled.
	mixRate = beep.SampleRate(44100)

	// speakerBufferLen trades latency against underruns
	speakerBufferLen = time.Second / 10

	// resampleQuality is beep's resampler quality setting
	resampleQuality = 4

	// volumeBase is the exponent base for effects.Volume
	volumeBase = 2.0
)

// Backend creates beep-backed audio resources. It implements
// playback.Backend.
type Backend struct {
	soundsDir string
}

// NewBackend initializes the speaker mixer and returns a backend that
// resolves relative asset paths against soundsDir.
func NewBackend(soundsDir string) (*Backend, error) {
	if err := speaker.Init(mixRate, mixRate.N(speakerBufferLen)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	log.Printf("audio: speaker initialized at %d Hz, sounds dir %s", mixRate, soundsDir)
	return &Backend{soundsDir: soundsDir}, nil
}

// NewResource creates a resource for the requested asset and begins loading
// it in the background. The returned resource rejects Play until loading
// reaches a playable point; the request's callbacks report readiness or
// failure.
func (b *Backend) NewResource(req playback.ResourceRequest) (playback.Resource, error) {
	r := &resource{
		id:     shortID(),
		path:   platform.ResolveSoundPath(b.soundsDir, req.Path),
		loop:   req.Loop,
		linear: req.Volume,
	}
	go r.load(req)
	return r, nil
}

// shortID returns a compact tag for log correlation
func shortID() string {
	return uuid.New().String()[:8]
}
