package overlay

import "github.com/lixenwraith/folio/effect"

// Channel is an exclusivity group: at most one overlay per channel
type Channel uint8

const (
	ChannelPrimary Channel = iota
	ChannelCreature
	ChannelPortrait
	ChannelModal
	ChannelAmbient
	channelCount
)

var channelNames = [channelCount]string{"primary", "creature", "portrait", "modal", "ambient"}

func (c Channel) String() string {
	if c < channelCount {
		return channelNames[c]
	}
	return "unknown"
}

// ChannelOf returns the channel a kind occupies
func ChannelOf(k effect.Kind) Channel {
	switch k {
	case effect.KindCreature:
		return ChannelCreature
	case effect.KindPortrait:
		return ChannelPortrait
	case effect.KindCelebration, effect.KindAlien:
		return ChannelModal
	case effect.KindJungle:
		return ChannelAmbient
	default:
		return ChannelPrimary
	}
}

// clickOrder lists click-capturing channels, topmost first
var clickOrder = []Channel{ChannelModal, ChannelCreature, ChannelPortrait, ChannelPrimary}

// drawOrder lists channels bottom to top
var drawOrder = []Channel{ChannelAmbient, ChannelPrimary, ChannelPortrait, ChannelCreature, ChannelModal}
