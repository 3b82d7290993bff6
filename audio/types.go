package audio

import (
	"errors"
)

// Clip identifies a sound an overlay can play
type Clip int

const (
	ClipRoar Clip = iota // Flying creature
	ClipRiff             // Audio portrait
	clipCount
)

var clipNames = [clipCount]string{
	ClipRoar: "roar",
	ClipRiff: "riff",
}

func (c Clip) String() string {
	if c < 0 || c >= clipCount {
		return "unknown"
	}
	return clipNames[c]
}

// Sentinel errors
var (
	ErrNoDevice          = errors.New("audio device not initialized")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrUnknownClip       = errors.New("unknown clip")
)
