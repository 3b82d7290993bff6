package audio

import (
	"context"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/folio/constants"
)

// Player starts clips for overlays. onEnd runs on the audio goroutine with
// the speaker locked when a clip plays to completion, so it must only hand
// off work; it does not run after Stop
type Player interface {
	Play(clip Clip, volume float64, onEnd func()) (Playback, error)
	SetMuted(muted bool)
	Muted() bool
}

// Playback controls one started clip
type Playback interface {
	Stop()
}

// SoundManager plays clips through the speaker, fetching sources lazily and
// falling back to synthesized renditions when a source fails
type SoundManager struct {
	cfg    *AudioConfig
	rate   beep.SampleRate
	client *http.Client

	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
	muted       atomic.Bool

	cacheMu sync.Mutex
	cache   map[Clip]*beep.Buffer
	loading map[Clip]chan struct{}
}

// NewSoundManager creates a sound manager; call Initialize to open the device
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	mixer := &beep.Mixer{}
	sm := &SoundManager{
		cfg:     cfg,
		rate:    beep.SampleRate(cfg.SampleRate),
		client:  &http.Client{Timeout: cfg.FetchTimeout},
		mixer:   mixer,
		master:  newVolume(mixer, cfg.MasterVolume),
		cache:   make(map[Clip]*beep.Buffer),
		loading: make(map[Clip]chan struct{}),
	}
	sm.muted.Store(!cfg.Enabled)
	sm.master.Silent = sm.silent()
	return sm
}

// Initialize opens the speaker. Failure leaves the manager in silent mode
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	sm.master.Silent = sm.silent()
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops every clip. The speaker stays open since beep cannot reopen it
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Ready reports whether clips can be heard
func (sm *SoundManager) Ready() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted silences the master bus. Clips keep advancing while muted so
// end-of-clip callbacks still fire
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		sm.master.Silent = sm.silent()
		return
	}
	speaker.Lock()
	sm.master.Silent = sm.silent()
	speaker.Unlock()
}

// Silent reports whether the master bus is currently producing no output
func (sm *SoundManager) Silent() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return sm.master.Silent
	}
	speaker.Lock()
	defer speaker.Unlock()
	return sm.master.Silent
}

func (sm *SoundManager) silent() bool {
	return sm.muted.Load() || sm.cfg.MasterVolume <= 0
}

func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Play resolves clip in the background and starts it unless stopped first.
// Returns ErrNoDevice without a speaker; the caller keeps its own timeouts
func (sm *SoundManager) Play(clip Clip, volume float64, onEnd func()) (Playback, error) {
	if clip < 0 || clip >= clipCount {
		return stoppedPlayback{}, ErrUnknownClip
	}
	if !sm.Ready() {
		return stoppedPlayback{}, ErrNoDevice
	}

	pb := &playback{}
	go func() {
		buf := sm.resolve(clip)
		if buf == nil {
			return
		}

		gain := volume * sm.cfg.ClipVolumes[clip]
		finish := beep.Callback(func() {
			if pb.stopped.Load() {
				return
			}
			if onEnd != nil {
				onEnd()
			}
		})
		ctrl := &beep.Ctrl{Streamer: beep.Seq(newVolume(buf.Streamer(0, buf.Len()), gain), finish)}

		speaker.Lock()
		defer speaker.Unlock()
		if pb.stopped.Load() {
			return
		}
		pb.ctrl = ctrl
		sm.mixer.Add(ctrl)
	}()
	return pb, nil
}

// resolve returns the cached buffer for clip, loading it once. Concurrent
// callers wait for the first load
func (sm *SoundManager) resolve(clip Clip) *beep.Buffer {
	sm.cacheMu.Lock()
	if buf, ok := sm.cache[clip]; ok {
		sm.cacheMu.Unlock()
		return buf
	}
	if wait, ok := sm.loading[clip]; ok {
		sm.cacheMu.Unlock()
		<-wait
		sm.cacheMu.Lock()
		defer sm.cacheMu.Unlock()
		return sm.cache[clip]
	}
	done := make(chan struct{})
	sm.loading[clip] = done
	sm.cacheMu.Unlock()

	buf := sm.load(clip)

	sm.cacheMu.Lock()
	if buf != nil {
		sm.cache[clip] = buf
	}
	delete(sm.loading, clip)
	sm.cacheMu.Unlock()
	close(done)
	return buf
}

func (sm *SoundManager) load(clip Clip) *beep.Buffer {
	if src := sm.cfg.Sources[clip]; src != "" {
		ctx, cancel := context.WithTimeout(context.Background(), sm.cfg.FetchTimeout)
		buf, err := LoadClip(ctx, sm.client, src, sm.rate)
		cancel()
		if err == nil {
			return buf
		}
		log.Printf("audio: %s source failed, using synthesized clip: %v", clip, err)
	}
	buf, err := bufferSynth(clip, sm.rate)
	if err != nil {
		log.Printf("audio: %s synthesis failed: %v", clip, err)
		return nil
	}
	return buf
}

// playback is stopped by detaching its streamer under the speaker lock
type playback struct {
	stopped atomic.Bool
	ctrl    *beep.Ctrl
}

func (p *playback) Stop() {
	if p.stopped.Swap(true) {
		return
	}
	speaker.Lock()
	if p.ctrl != nil {
		p.ctrl.Streamer = nil
	}
	speaker.Unlock()
}

type stoppedPlayback struct{}

func (stoppedPlayback) Stop() {}
