package effect

// Options configures runners built by New
type Options struct {
	// PortraitSource is the portrait image URL or path
	PortraitSource string
}

// New builds a fresh runner for kind
func New(kind Kind, opts Options) (Runner, bool) {
	switch kind {
	case KindDice:
		return NewDice(), true
	case KindSaber:
		return NewSaber(), true
	case KindCats:
		return NewSwarm(CatGlyphs, true), true
	case KindJungle:
		return NewSwarm(JungleGlyphs, false), true
	case KindRain:
		return NewRain(), true
	case KindTrailMusic:
		return NewTrail(MusicTheme), true
	case KindTrailScience:
		return NewTrail(ScienceTheme), true
	case KindTrailMath:
		return NewTrail(MathTheme), true
	case KindTrailAstronomy:
		return NewTrail(AstronomyTheme), true
	case KindCreature:
		return NewCreature(), true
	case KindPortrait:
		return NewPortrait(opts.PortraitSource), true
	case KindCelebration:
		return NewFire(), true
	case KindAlien:
		return NewAlien(), true
	}
	return nil, false
}
