package gesture

import "strings"

// Trigger names the overlay a matched pattern activates
type Trigger string

const (
	TriggerCelebration Trigger = "celebration"
	TriggerPortrait    Trigger = "portrait"
	TriggerCreature    Trigger = "creature"
)

// PatternKind selects the matching rule
type PatternKind uint8

const (
	// KindSequence matches the buffer's trailing keys exactly, case-sensitive
	KindSequence PatternKind = iota
	// KindWord matches a case-insensitive substring of the joined keys
	KindWord
)

// Pattern is one entry of the ordered trigger list
type Pattern struct {
	Kind     PatternKind
	Sequence []string
	Word     string
	Trigger  Trigger
}

// Sequence builds an exact key sequence pattern
func Sequence(t Trigger, keys ...string) Pattern {
	return Pattern{Kind: KindSequence, Sequence: keys, Trigger: t}
}

// Word builds a substring pattern, stored lowercased
func Word(t Trigger, word string) Pattern {
	return Pattern{Kind: KindWord, Word: strings.ToLower(word), Trigger: t}
}

// KonamiCode is the classic cheat sequence
var KonamiCode = []string{
	"ArrowUp", "ArrowUp", "ArrowDown", "ArrowDown",
	"ArrowLeft", "ArrowRight", "ArrowLeft", "ArrowRight",
	"b", "a",
}

// DefaultPatterns is the fixed priority list: sequence first, then words
func DefaultPatterns() []Pattern {
	return []Pattern{
		Sequence(TriggerCelebration, KonamiCode...),
		Word(TriggerPortrait, "goat"),
		Word(TriggerCreature, "dragon"),
	}
}

func (p Pattern) matches(buf *KeyBuffer, joined func() string) bool {
	switch p.Kind {
	case KindSequence:
		return buf.EndsWith(p.Sequence)
	case KindWord:
		return p.Word != "" && strings.Contains(joined(), p.Word)
	}
	return false
}
