package input

// IntentType discriminates semantic actions produced from raw events
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+Q, Ctrl+C
	IntentEscape     // ESC, dismisses the topmost overlay
	IntentToggleMute // Ctrl+S

	// Page navigation
	IntentScroll   // arrows, j/k, wheel
	IntentPage     // PgUp/PgDn
	IntentTop      // Home
	IntentBottom   // End
	IntentLanguage // Ctrl+L
	IntentTheme    // Ctrl+T

	// Pointer
	IntentPointerMove
	IntentClick
)

// Intent is a classified input event. Key carries the browser-style key
// name fed to gesture detection; it is set for every key press, including
// keys that also map to a navigation intent
type Intent struct {
	Type  IntentType
	Key   string
	Delta int // scroll direction/amount
	X, Y  int // pointer cell
}
