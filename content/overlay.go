package content

// OverlayText is the copy shown by easter-egg overlays
type OverlayText struct {
	ChaosBanner string
	CloseHint   string

	CriticalHit       string
	CriticalHitDetail string
	CriticalMiss      string
	SkillCheck        string

	CreatureHint string

	PortraitTitle    string
	PortraitSubtitle string

	TrailHint string

	AlienTitle string
	AlienLines []string
	AlienHint  string

	CelebrationTitle  string
	CelebrationDetail string

	Copied string
}

var overlayText = map[Language]OverlayText{
	English: {
		ChaosBanner:       "CHAOS MODE ON: click anywhere to exit",
		CloseHint:         "[ click to close ]",
		CriticalHit:       "CRITICAL HIT!",
		CriticalHitDetail: "Natural 20 - Executing Perfect Deploy...",
		CriticalMiss:      "Critical Miss...",
		SkillCheck:        "Skill Check Result",
		CreatureHint:      "[ CLICK TO STOP THE CHAOS ]",
		PortraitTitle:     "THE G.O.A.T.",
		PortraitSubtitle:  "🤘 PRINCE OF DARKNESS 🤘",
		TrailHint:         "Move the mouse to make some magic...",
		AlienTitle:        "GREETINGS! 🖖",
		AlienLines:        []string{"I am compiling the future.", "Come back in a light-year!"},
		AlienHint:         "[ click anywhere to close ]",
		CelebrationTitle:  "KONAMI CODE UNLOCKED",
		CelebrationDetail: "+30 lives. The pipeline is on fire (the good kind).",
		Copied:            "Copied to clipboard",
	},
	Portuguese: {
		ChaosBanner:       "MODO CAOS ATIVADO: clique na tela para sair",
		CloseHint:         "[ clique para fechar ]",
		CriticalHit:       "CRITICAL HIT!",
		CriticalHitDetail: "Natural 20 - Executing Perfect Deploy...",
		CriticalMiss:      "Critical Miss...",
		SkillCheck:        "Skill Check Result",
		CreatureHint:      "[ CLIQUE PARA PARAR O CAOS ]",
		PortraitTitle:     "THE G.O.A.T.",
		PortraitSubtitle:  "🤘 PRINCE OF DARKNESS 🤘",
		TrailHint:         "Mova o mouse para criar magia...",
		AlienTitle:        "SAUDAÇÕES! 🖖",
		AlienLines:        []string{"Estou compilando o futuro.", "Volte em ano-luz!"},
		AlienHint:         "[ clique em qualquer lugar para fechar ]",
		CelebrationTitle:  "KONAMI CODE DESBLOQUEADO",
		CelebrationDetail: "+30 vidas. O pipeline está pegando fogo (do jeito bom).",
		Copied:            "Copiado para a área de transferência",
	},
}

// Overlay returns the overlay copy for l
func Overlay(l Language) OverlayText {
	if t, ok := overlayText[l]; ok {
		return t
	}
	return overlayText[English]
}
