package audio

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"

	"github.com/litimahmed/ambient-player/internal/playback"
)

// ErrNotReady is returned by Play while the asset is still decoding. The
// caller retries on the ready callback or its fallback timer.
var ErrNotReady = errors.New("audio: resource not ready")

// resource is one decoded asset owned by the playback service. The zero
// value is not usable; Backend.NewResource constructs it.
type resource struct {
	id   string
	path string
	loop bool

	mu       sync.Mutex
	linear   float64 // requested volume in [0,1]
	ready    bool
	playing  bool
	released bool

	file     *os.File
	streamer beep.StreamSeekCloser
	volume   *effects.Volume
	ctrl     *beep.Ctrl
}

// load decodes the asset and builds the playback pipeline:
// decoder -> loop -> resample -> volume -> ctrl.
func (r *resource) load(req playback.ResourceRequest) {
	f, err := os.Open(r.path)
	if err != nil {
		r.fail(req, fmt.Errorf("open asset: %w", err))
		return
	}

	streamer, format, err := decode(f, r.path)
	if err != nil {
		f.Close()
		r.fail(req, fmt.Errorf("decode asset: %w", err))
		return
	}

	r.mu.Lock()
	if r.released {
		// Superseded while decoding; nothing to report.
		r.mu.Unlock()
		streamer.Close()
		f.Close()
		return
	}
	r.file = f
	r.streamer = streamer

	var src beep.Streamer = streamer
	if r.loop {
		src = beep.Loop(-1, streamer)
	}
	if format.SampleRate != mixRate {
		src = beep.Resample(resampleQuality, format.SampleRate, mixRate, src)
	}
	vol := &effects.Volume{Streamer: src, Base: volumeBase}
	applyVolume(vol, r.linear)
	r.volume = vol
	r.ctrl = &beep.Ctrl{Streamer: vol}
	r.ready = true
	r.mu.Unlock()

	log.Printf("audio: resource %s ready (%s)", r.id, filepath.Base(r.path))
	if req.OnReady != nil {
		req.OnReady(r)
	}
}

func (r *resource) fail(req playback.ResourceRequest, err error) {
	log.Printf("audio: resource %s load failed: %v", r.id, err)
	if req.OnError != nil {
		req.OnError(r, err)
	}
}

// Play submits the resource to the speaker mixer. It is idempotent: once
// playing, further calls are no-ops. Before the pipeline is built it
// returns ErrNotReady, after Release it always errors.
func (r *resource) Play() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return fmt.Errorf("audio: resource %s already released", r.id)
	}
	if !r.ready {
		return ErrNotReady
	}
	if r.playing {
		return nil
	}
	r.playing = true
	speaker.Play(r.ctrl)
	return nil
}

// SetVolume applies a linear volume in [0,1]. Before the pipeline exists the
// value is only recorded and applied when loading finishes.
func (r *resource) SetVolume(v float64) {
	r.mu.Lock()
	r.linear = v
	vol := r.volume
	r.mu.Unlock()

	if vol == nil {
		return
	}
	speaker.Lock()
	applyVolume(vol, v)
	speaker.Unlock()
}

// Release silences the resource and frees the decoder. Detaching the ctrl's
// streamer drains it out of the mixer, so a released resource can never
// become audible even if a stale start submitted it. Safe to call more than
// once.
func (r *resource) Release() {
	r.mu.Lock()
	if r.released {
		r.mu.Unlock()
		return
	}
	r.released = true
	r.playing = false
	ctrl := r.ctrl
	streamer := r.streamer
	file := r.file
	r.ctrl = nil
	r.volume = nil
	r.streamer = nil
	r.file = nil
	r.mu.Unlock()

	if ctrl != nil {
		speaker.Lock()
		ctrl.Paused = true
		ctrl.Streamer = nil
		speaker.Unlock()
	}
	if streamer != nil {
		streamer.Close()
	}
	if file != nil {
		file.Close()
	}
	log.Printf("audio: resource %s released", r.id)
}

// decode picks a decoder by file extension
func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3.Decode(f)
	case ".wav":
		return wav.Decode(f)
	case ".ogg", ".oga":
		return vorbis.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
}

// applyVolume maps a linear [0,1] level onto the exponential volume effect.
// Zero mutes via Silent because the log scale has no true zero.
func applyVolume(vol *effects.Volume, linear float64) {
	if linear <= 0 {
		vol.Silent = true
		return
	}
	vol.Silent = false
	vol.Volume = math.Log2(linear)
}
