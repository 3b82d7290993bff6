package constants

import "time"

// Scheduler frame period
const FrameUpdateInterval = 16 * time.Millisecond

// Dice roll
const (
	DiceSides          = 20
	DiceRerollInterval = 50 * time.Millisecond
	DiceSettleDelay    = 1500 * time.Millisecond
	BurstInterval      = 400 * time.Millisecond
	BurstParticles     = 50
	BurstSpeedMin      = 2.0
	BurstSpeedRange    = 5.0
	BurstGravity       = 0.05
	BurstAlphaDecay    = 0.01
	// BurstHeightRatio limits burst origins to the upper part of the canvas
	BurstHeightRatio = 0.8
)

// Flying creature
const (
	CreatureTimeout    = 6000 * time.Millisecond
	CreatureFlightTime = 5000 * time.Millisecond
)

// Audio portrait
const (
	PortraitTimeout      = 4500 * time.Millisecond
	PortraitStrobePeriod = 200 * time.Millisecond
	PortraitFetchTimeout = 4 * time.Second
)

// Swarm
const (
	SwarmCount      = 15
	SwarmSpeedRange = 25.0
	SwarmSpinRange  = 10.0
	SwarmBounceSpin = 20.0
	SwarmScaleMin   = 0.5
	SwarmScaleRange = 1.5
	// SwarmSpeedScale converts the pixel-per-frame speed range to cells
	SwarmSpeedScale = 0.08
)

// Character rain
const (
	RainInterval    = 30 * time.Millisecond
	RainColumnWidth = 2
	RainFade        = 0.95
	RainResetChance = 0.025
)

// Mouse trail
const (
	TrailSpawnInterval = 40 * time.Millisecond
	TrailMaxParticles  = 40
	TrailLifetime      = 1500 * time.Millisecond
	TrailJitter        = 2
	TrailRise          = 8.0
	TrailDrift         = 6.0
)

// Lightsaber spring
const (
	SaberStiffness     = 300.0
	SaberDamping       = 25.0
	SaberTiltStiffness = 200.0
	SaberTiltDamping   = 20.0
	SaberTiltGain      = 1.5
	SaberMaxTilt       = 60.0
)

// Fire celebration
const (
	FireInterval = 30 * time.Millisecond
	FireLevels   = 37
)
