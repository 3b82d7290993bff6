package constants

import "time"

// Playback volumes requested by overlays
const (
	CreatureVolume = 0.7
	PortraitVolume = 0.8
)

// Roar synthesis, used when the roar clip cannot be fetched
const (
	RoarSoundDuration = 1800 * time.Millisecond
	RoarSoundAttack   = 60 * time.Millisecond
	RoarSoundRelease  = 900 * time.Millisecond
	RoarRumbleFreq    = 55.0
	RoarGrowlFreq     = 82.0
)

// Riff synthesis, used when the riff clip cannot be fetched
const (
	RiffNoteDuration = 170 * time.Millisecond
	RiffNoteAttack   = 4 * time.Millisecond
	RiffNoteRelease  = 60 * time.Millisecond
	RiffLaughBursts  = 6
	RiffLaughBurst   = 110 * time.Millisecond
)

// Speaker buffer length
const AudioBufferDuration = 100 * time.Millisecond
