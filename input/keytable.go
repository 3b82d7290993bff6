package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes what a key does besides feeding gesture detection
type KeyEntry struct {
	Intent IntentType
	Delta  int
}

// KeyTable maps keys to page intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, paging)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, active only when no overlay captures input
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {IntentQuit, 0},
			tcell.KeyCtrlC:  {IntentQuit, 0},
			tcell.KeyCtrlS:  {IntentToggleMute, 0},
			tcell.KeyCtrlL:  {IntentLanguage, 0},
			tcell.KeyCtrlT:  {IntentTheme, 0},
			tcell.KeyEscape: {IntentEscape, 0},
			tcell.KeyUp:     {IntentScroll, -1},
			tcell.KeyDown:   {IntentScroll, 1},
			tcell.KeyPgUp:   {IntentPage, -1},
			tcell.KeyPgDn:   {IntentPage, 1},
			tcell.KeyHome:   {IntentTop, 0},
			tcell.KeyEnd:    {IntentBottom, 0},
		},
		Runes: map[rune]KeyEntry{
			'j': {IntentScroll, 1},
			'k': {IntentScroll, -1},
		},
	}
}

// Classify converts a key event into an intent. Runes never map to
// navigation here: typed letters belong to gesture words
func (kt *KeyTable) Classify(ev *tcell.EventKey) Intent {
	name := KeyName(ev)
	if entry, ok := kt.SpecialKeys[ev.Key()]; ok {
		return Intent{Type: entry.Intent, Key: name, Delta: entry.Delta}
	}
	return Intent{Type: IntentNone, Key: name}
}

// RuneIntent returns the navigation binding of a rune, if any
func (kt *KeyTable) RuneIntent(r rune) (KeyEntry, bool) {
	e, ok := kt.Runes[r]
	return e, ok
}
