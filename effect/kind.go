package effect

// Kind names one overlay. The set is closed
type Kind string

const (
	KindDice           Kind = "dice"
	KindSaber          Kind = "saber"
	KindCats           Kind = "cats"
	KindRain           Kind = "rain"
	KindTrailMusic     Kind = "trail-music"
	KindTrailScience   Kind = "trail-science"
	KindTrailMath      Kind = "trail-math"
	KindTrailAstronomy Kind = "trail-astronomy"
	KindCreature       Kind = "creature"
	KindPortrait       Kind = "portrait"
	KindCelebration    Kind = "celebration"
	KindAlien          Kind = "alien"
	KindJungle         Kind = "jungle"
)

// Kinds lists every overlay kind
var Kinds = []Kind{
	KindDice, KindSaber, KindCats, KindRain,
	KindTrailMusic, KindTrailScience, KindTrailMath, KindTrailAstronomy,
	KindCreature, KindPortrait, KindCelebration, KindAlien, KindJungle,
}

// ParseKind validates a kind name
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}
