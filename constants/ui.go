package constants

import "time"

// Page layout
const (
	// PageMaxWidth caps the content column on wide terminals
	PageMaxWidth = 96

	// ScrollTopThreshold is how far down the page the back-to-top button appears
	ScrollTopThreshold = 25

	// PageStep is the PgUp/PgDn scroll fraction of the viewport height
	PageStep = 0.8

	// SpotlightRadius is the dark-theme pointer glow radius in cells
	SpotlightRadius = 12

	// ShakeAmplitude is the maximum horizontal page offset while shaking
	ShakeAmplitude = 2
)

// UI timing
const (
	// ToastTimeout is how long the "copied" toast is shown
	ToastTimeout = 1500 * time.Millisecond

	// AlienBobPeriod is the alien greeting bob cycle
	AlienBobPeriod = 3000 * time.Millisecond
)

// Scrolling
const (
	// WheelStep is how many lines one wheel notch scrolls
	WheelStep = 3

	// SkillsClickThreshold clicks on the skills heading toggle the jungle
	SkillsClickThreshold = 5

	// NameClickThreshold clicks on the hero name summon the alien
	NameClickThreshold = 10
)
