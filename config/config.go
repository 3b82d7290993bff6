package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/content"
)

// DefaultPortraitSource is the portrait shown by the goat overlay
const DefaultPortraitSource = "https://imagens.ebc.com.br/bEiKmlxgU0tTMMig6y35kRpZ3fE=/1170x700/smart/https://agenciabrasil.ebc.com.br/sites/default/files/thumbnails/image/2025/07/22/ozzy03.jpg?itok=m5vGGmns"

const (
	rcFileName  = ".foliorc"
	envFileName = ".env"
)

// Config is the resolved runtime configuration
type Config struct {
	Debug   bool
	Lang    content.Language
	Light   bool
	Mute    bool
	Seed    int64
	Offline bool
	Print   bool

	// ConfigPath is the key=value file that was read, if any
	ConfigPath     string
	PortraitSource string

	Audio *audio.AudioConfig
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Lang:           content.English,
		PortraitSource: DefaultPortraitSource,
		Audio:          audio.DefaultAudioConfig(),
	}
}

// Load resolves configuration from defaults, the rc file, .env in the
// working directory, FOLIO_* variables from getenv and finally args. Later
// layers win
func Load(args []string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	fset := flag.NewFlagSet("folio", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	debug := fset.Bool("debug", false, "write logs to logs/folio.log")
	lang := fset.String("lang", "", "content language: en, pt")
	light := fset.Bool("light", false, "start with the light theme")
	mute := fset.Bool("mute", false, "start with audio muted")
	seed := fset.Int64("seed", 0, "random seed, 0 picks one")
	offline := fset.Bool("offline", false, "never fetch remote media")
	printOnly := fset.Bool("print", false, "print the resume to stdout and exit")
	path := fset.String("config", "", "config file path (default ~/.foliorc)")
	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	set := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	rcPath, explicit := *path, set["config"]
	if !explicit {
		rcPath = getenv("FOLIO_CONFIG")
		explicit = rcPath != ""
	}
	if rcPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			rcPath = filepath.Join(home, rcFileName)
		}
	}
	rc, err := readKeyValues(rcPath, explicit)
	if err != nil {
		return nil, err
	}
	if rc != nil {
		cfg.ConfigPath = rcPath
	}
	dotenv, err := readKeyValues(envFileName, false)
	if err != nil {
		return nil, err
	}

	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		if v, ok := dotenv[key]; ok {
			return v
		}
		return rc[key]
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	if set["debug"] {
		cfg.Debug = *debug
	}
	if set["lang"] {
		cfg.Lang = content.ParseLanguage(*lang)
	}
	if set["light"] {
		cfg.Light = *light
	}
	if set["mute"] {
		cfg.Mute = *mute
	}
	if set["seed"] {
		cfg.Seed = *seed
	}
	if set["offline"] {
		cfg.Offline = *offline
	}
	if set["print"] {
		cfg.Print = *printOnly
	}

	cfg.finish()
	return cfg, nil
}

// readKeyValues parses a key=value file. A missing file is only an error
// when it was asked for explicitly
func readKeyValues(path string, required bool) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	vals, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return vals, nil
}

func (c *Config) applyEnv(lookup func(string) string) error {
	bools := []struct {
		key string
		dst *bool
	}{
		{"FOLIO_DEBUG", &c.Debug},
		{"FOLIO_MUTE", &c.Mute},
		{"FOLIO_OFFLINE", &c.Offline},
	}
	for _, b := range bools {
		v := lookup(b.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", b.key, err)
		}
		*b.dst = parsed
	}

	if v := lookup("FOLIO_LANG"); v != "" {
		c.Lang = content.ParseLanguage(v)
	}
	switch strings.ToLower(lookup("FOLIO_THEME")) {
	case "light":
		c.Light = true
	case "dark":
		c.Light = false
	}
	if v := lookup("FOLIO_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("FOLIO_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := lookup("FOLIO_PORTRAIT_SOURCE"); v != "" {
		c.PortraitSource = v
	}

	c.Audio = audio.LoadAudioConfig(lookup)
	return nil
}

// finish applies settings that depend on more than one layer
func (c *Config) finish() {
	if c.Mute {
		c.Audio.Enabled = false
	}
	if !c.Offline {
		return
	}
	for clip, src := range c.Audio.Sources {
		if isRemote(src) {
			delete(c.Audio.Sources, clip)
		}
	}
	if isRemote(c.PortraitSource) {
		c.PortraitSource = ""
	}
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
