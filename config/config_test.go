package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/content"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

// isolate runs the test in an empty directory with no rc file in reach
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load(nil, envMap(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Lang != content.English || cfg.Light || cfg.Mute || cfg.Debug || cfg.Print {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.PortraitSource != DefaultPortraitSource {
		t.Errorf("PortraitSource = %q", cfg.PortraitSource)
	}
	if !cfg.Audio.Enabled {
		t.Error("audio should default to enabled")
	}
	if cfg.ConfigPath != "" {
		t.Errorf("ConfigPath = %q with no rc file", cfg.ConfigPath)
	}
}

func TestLoadLayerPrecedence(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, rcFileName), "FOLIO_LANG=pt\nFOLIO_THEME=light\nFOLIO_SEED=1\nFOLIO_MASTER_VOLUME=10\n")
	writeFile(t, filepath.Join(dir, envFileName), "FOLIO_SEED=2\nFOLIO_THEME=dark\n")

	cfg, err := Load([]string{"-seed", "4"}, envMap(map[string]string{"FOLIO_SEED": "3"}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ConfigPath != filepath.Join(dir, rcFileName) {
		t.Errorf("ConfigPath = %q", cfg.ConfigPath)
	}
	if cfg.Lang != content.Portuguese {
		t.Errorf("Lang = %q, want rc value", cfg.Lang)
	}
	if cfg.Light {
		t.Error(".env theme should override rc")
	}
	if cfg.Seed != 4 {
		t.Errorf("Seed = %d, want flag value", cfg.Seed)
	}
	if cfg.Audio.MasterVolume != 0.1 {
		t.Errorf("MasterVolume = %v, want 0.1 from rc", cfg.Audio.MasterVolume)
	}
}

func TestLoadEnvBeatsDotenv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, envFileName), "FOLIO_LANG=pt\n")
	cfg, err := Load(nil, envMap(map[string]string{"FOLIO_LANG": "en"}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Lang != content.English {
		t.Errorf("Lang = %q", cfg.Lang)
	}
}

func TestLoadExplicitConfigPath(t *testing.T) {
	dir := isolate(t)
	custom := filepath.Join(dir, "custom.env")
	writeFile(t, custom, "FOLIO_DEBUG=true\n")

	cfg, err := Load([]string{"-config", custom}, envMap(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Debug {
		t.Error("debug from explicit config not applied")
	}

	if _, err := Load([]string{"-config", filepath.Join(dir, "missing")}, envMap(nil)); err == nil {
		t.Error("missing explicit config should fail")
	}
	if _, err := Load(nil, envMap(map[string]string{"FOLIO_CONFIG": filepath.Join(dir, "missing")})); err == nil {
		t.Error("missing FOLIO_CONFIG file should fail")
	}
}

func TestLoadFlags(t *testing.T) {
	isolate(t)
	cfg, err := Load([]string{"-debug", "-lang", "pt-br", "-light", "-print"}, envMap(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Debug || !cfg.Light || !cfg.Print || cfg.Lang != content.Portuguese {
		t.Errorf("flags not applied: %+v", cfg)
	}

	if _, err := Load([]string{"-nope"}, envMap(nil)); err == nil {
		t.Error("unknown flag should fail")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bool", map[string]string{"FOLIO_MUTE": "sometimes"}},
		{"seed", map[string]string{"FOLIO_SEED": "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(nil, envMap(tt.env)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMuteDisablesAudio(t *testing.T) {
	isolate(t)
	cfg, err := Load([]string{"-mute"}, envMap(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Audio.Enabled {
		t.Error("mute should disable audio at start")
	}
}

func TestOfflineDropsRemoteSources(t *testing.T) {
	isolate(t)
	cfg, err := Load([]string{"-offline"}, envMap(map[string]string{
		"FOLIO_RIFF_SOURCE": "clips/riff.wav",
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := cfg.Audio.Sources[audio.ClipRoar]; ok {
		t.Error("remote roar source kept offline")
	}
	if got := cfg.Audio.Sources[audio.ClipRiff]; got != "clips/riff.wav" {
		t.Errorf("local riff source = %q", got)
	}
	if cfg.PortraitSource != "" {
		t.Errorf("remote portrait kept offline: %q", cfg.PortraitSource)
	}
}
