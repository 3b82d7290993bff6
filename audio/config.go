package audio

import (
	"encoding/json"
	"strconv"
	"time"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	// ClipVolumes scales each clip on top of the volume an overlay asks for
	ClipVolumes map[Clip]float64
	// Sources maps clips to a URL or file path; empty means synthesized only
	Sources map[Clip]string
	// FetchTimeout bounds remote clip downloads
	FetchTimeout time.Duration
}

// DefaultAudioConfig returns settings used when nothing is configured
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.8,
		SampleRate:   44100,
		ClipVolumes: map[Clip]float64{
			ClipRoar: 1.0,
			ClipRiff: 1.0,
		},
		Sources: map[Clip]string{
			ClipRoar: "https://www.myinstants.com/media/sounds/dragon-roar.mp3",
			ClipRiff: "https://www.myinstants.com/media/sounds/ozzy-crazy-train-laugh.mp3",
		},
		FetchTimeout: 5 * time.Second,
	}
}

// LoadAudioConfig overlays FOLIO_* variables read through getenv onto the defaults
func LoadAudioConfig(getenv func(string) string) *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := getenv("FOLIO_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := getenv("FOLIO_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	if clipVols := getenv("FOLIO_SFX_VOLUMES"); clipVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(clipVols), &volumes); err == nil {
			for c := Clip(0); c < clipCount; c++ {
				if v, ok := volumes[c.String()]; ok {
					cfg.ClipVolumes[c] = clampUnit(v)
				}
			}
		}
	}

	if src := getenv("FOLIO_ROAR_SOURCE"); src != "" {
		cfg.Sources[ClipRoar] = src
	}
	if src := getenv("FOLIO_RIFF_SOURCE"); src != "" {
		cfg.Sources[ClipRiff] = src
	}

	if sampleRate := getenv("FOLIO_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
