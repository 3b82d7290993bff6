package content

import "strings"

// Language selects the resume and overlay copy
type Language string

const (
	English    Language = "en"
	Portuguese Language = "pt"
)

// ParseLanguage maps a flag or env value to a language, defaulting to English
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pt", "pt-br", "pt_br", "portuguese":
		return Portuguese
	default:
		return English
	}
}

// Toggle returns the other language
func (l Language) Toggle() Language {
	if l == Portuguese {
		return English
	}
	return Portuguese
}

// Label is the short navbar label
func (l Language) Label() string {
	if l == Portuguese {
		return "PT"
	}
	return "EN"
}
