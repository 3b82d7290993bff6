package audio

import (
	"errors"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies playback is refused, not fatal, without a device
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	pb, err := sm.Play(ClipRoar, 0.7, func() { t.Error("onEnd ran without a device") })
	if !errors.Is(err, ErrNoDevice) {
		t.Errorf("Expected ErrNoDevice, got %v", err)
	}
	pb.Stop()
	pb.Stop()

	sm.SetMuted(true)
	if !sm.Muted() {
		t.Error("Expected muted")
	}
	sm.Cleanup()
}

func TestSoundManagerUnknownClip(t *testing.T) {
	sm := NewSoundManager(nil)
	if _, err := sm.Play(Clip(99), 1, nil); !errors.Is(err, ErrUnknownClip) {
		t.Errorf("Expected ErrUnknownClip, got %v", err)
	}
}

func TestSoundManagerDisabledStartsMuted(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)
	if !sm.Muted() {
		t.Error("Expected disabled config to start muted")
	}
	if !sm.Silent() {
		t.Error("Expected master bus silenced for a disabled config")
	}
}

func TestSoundManagerMuteToggle(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		volume  float64
		toggles []bool
		want    []bool // Silent after each toggle
	}{
		{"disabled unmutes on first toggle", false, 0.8, []bool{false, true}, []bool{false, true}},
		{"enabled mutes on first toggle", true, 0.8, []bool{true, false}, []bool{true, false}},
		{"zero volume stays silent", true, 0, []bool{false}, []bool{true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultAudioConfig()
			cfg.Enabled = tt.enabled
			cfg.MasterVolume = tt.volume
			sm := NewSoundManager(cfg)
			for i, m := range tt.toggles {
				sm.SetMuted(m)
				if got := sm.Silent(); got != tt.want[i] {
					t.Errorf("After SetMuted(%v): expected Silent=%v, got %v", m, tt.want[i], got)
				}
			}
		})
	}
}

// TestSoundManagerInitialization tolerates environments without audio devices
func TestSoundManagerInitialization(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Sources = map[Clip]string{}
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got %v", err)
	}

	pb, err := sm.Play(ClipRoar, 0.5, nil)
	if err != nil {
		t.Errorf("Play failed with an open device: %v", err)
	}
	pb.Stop()
	sm.Cleanup()
}

func TestClipString(t *testing.T) {
	if ClipRoar.String() != "roar" || ClipRiff.String() != "riff" || Clip(-1).String() != "unknown" {
		t.Error("Unexpected clip names")
	}
}
