package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/folio/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a finite raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with attack/release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: start,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
			if vol < 0 {
				vol = 0
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain. Zero gain is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateRoarSound synthesizes a growl: filtered-feeling noise over two low saws
func CreateRoarSound(rate beep.SampleRate) beep.Streamer {
	d := constants.RoarSoundDuration
	shape := func(s beep.Streamer) beep.Streamer {
		return NewEnvelope(s, d, constants.RoarSoundAttack, constants.RoarSoundRelease, rate)
	}
	return beep.Mix(
		newVolume(shape(NewOscillator(0, d, WaveNoise, rate)), 0.25),
		newVolume(shape(NewOscillator(constants.RoarRumbleFreq, d, WaveSaw, rate)), 0.45),
		newVolume(shape(NewOscillator(constants.RoarGrowlFreq, d, WaveSquare, rate)), 0.2),
	)
}

// riffNotes is a galloping minor riff in Hz, 0 marks a rest
var riffNotes = []float64{
	92.50, 92.50, 138.59, 92.50, 146.83, 92.50, 138.59, 92.50,
	123.47, 110.00, 103.83, 110.00, 123.47, 110.00, 103.83, 82.41,
}

// CreateRiffSound synthesizes a power-chord riff followed by a noisy cackle
func CreateRiffSound(rate beep.SampleRate) beep.Streamer {
	d := constants.RiffNoteDuration
	parts := make([]beep.Streamer, 0, len(riffNotes)+constants.RiffLaughBursts)
	for _, f := range riffNotes {
		root := NewEnvelope(NewOscillator(f, d, WaveSaw, rate), d, constants.RiffNoteAttack, constants.RiffNoteRelease, rate)
		fifth := NewEnvelope(NewOscillator(f*1.5, d, WaveSaw, rate), d, constants.RiffNoteAttack, constants.RiffNoteRelease, rate)
		parts = append(parts, beep.Mix(newVolume(root, 0.35), newVolume(fifth, 0.2)))
	}
	b := constants.RiffLaughBurst
	for i := 0; i < constants.RiffLaughBursts; i++ {
		burst := NewEnvelope(NewOscillator(0, b, WaveNoise, rate), b, 10*time.Millisecond, b/2, rate)
		tone := NewEnvelope(NewOscillator(320-float64(i)*25, b, WaveSine, rate), b, 10*time.Millisecond, b/2, rate)
		parts = append(parts, beep.Mix(newVolume(burst, 0.15), newVolume(tone, 0.25)))
	}
	return beep.Seq(parts...)
}

// synthesize returns the built-in rendition of clip
func synthesize(clip Clip, rate beep.SampleRate) (beep.Streamer, error) {
	switch clip {
	case ClipRoar:
		return CreateRoarSound(rate), nil
	case ClipRiff:
		return CreateRiffSound(rate), nil
	}
	return nil, ErrUnknownClip
}
