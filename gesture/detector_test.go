package gesture

import (
	"fmt"
	"testing"
)

func feedAll(d *Detector, keys ...string) []Trigger {
	var fired []Trigger
	for _, k := range keys {
		if t, ok := d.Feed(k); ok {
			fired = append(fired, t)
		}
	}
	return fired
}

func TestKeyBufferBoundAndEviction(t *testing.T) {
	if DefaultBufferSize != 20 {
		t.Fatalf("Expected a 20-key history, got %d", DefaultBufferSize)
	}
	b := NewKeyBuffer(DefaultBufferSize)
	for i := 0; i < 25; i++ {
		b.Push(fmt.Sprintf("k%d", i))
		if b.Len() > DefaultBufferSize {
			t.Fatalf("buffer grew to %d", b.Len())
		}
	}
	keys := b.Keys()
	if keys[0] != "k5" || keys[len(keys)-1] != "k24" {
		t.Errorf("Expected k5..k24, got %s..%s", keys[0], keys[len(keys)-1])
	}
}

func TestDetectorKonamiFiresOnceAndClears(t *testing.T) {
	d := NewDetector(DefaultPatterns())
	fired := feedAll(d, KonamiCode...)

	if len(fired) != 1 || fired[0] != TriggerCelebration {
		t.Fatalf("Expected one celebration trigger, got %v", fired)
	}
	if d.Buffer().Len() != 0 {
		t.Errorf("Expected empty buffer after trigger, got %d keys", d.Buffer().Len())
	}
}

func TestDetectorKonamiWithLeadingNoise(t *testing.T) {
	d := NewDetector(DefaultPatterns())
	keys := append([]string{"x", "y", "ArrowUp", "Enter"}, KonamiCode...)
	if fired := feedAll(d, keys...); len(fired) != 1 || fired[0] != TriggerCelebration {
		t.Errorf("Expected celebration after noise, got %v", fired)
	}
}

func TestDetectorKonamiVariantsDoNotFire(t *testing.T) {
	for i := range KonamiCode {
		t.Run(fmt.Sprintf("position %d", i), func(t *testing.T) {
			variant := make([]string, len(KonamiCode))
			copy(variant, KonamiCode)
			variant[i] = "Tab"

			d := NewDetector(DefaultPatterns())
			if fired := feedAll(d, variant...); len(fired) != 0 {
				t.Errorf("Variant fired %v", fired)
			}
		})
	}
}

func TestDetectorSequenceIsCaseSensitive(t *testing.T) {
	d := NewDetector(DefaultPatterns())
	keys := append(append([]string{}, KonamiCode[:8]...), "B", "A")
	if fired := feedAll(d, keys...); len(fired) != 0 {
		t.Errorf("Uppercase variant fired %v", fired)
	}
}

func TestDetectorWords(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []Trigger
	}{
		{"goat", []string{"g", "o", "a", "t"}, []Trigger{TriggerPortrait}},
		{"dragon", []string{"d", "r", "a", "g", "o", "n"}, []Trigger{TriggerCreature}},
		{"mixed case", []string{"G", "O", "a", "T"}, []Trigger{TriggerPortrait}},
		{"embedded", []string{"x", "d", "r", "a", "g", "o", "n", "s"}, []Trigger{TriggerCreature}},
		{"partial", []string{"g", "o", "a"}, nil},
		{"twice", []string{"g", "o", "a", "t", "g", "o", "a", "t"}, []Trigger{TriggerPortrait, TriggerPortrait}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDetector(DefaultPatterns())
			fired := feedAll(d, tt.keys...)
			if len(fired) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, fired)
			}
			for i := range fired {
				if fired[i] != tt.want[i] {
					t.Errorf("Trigger %d: expected %s, got %s", i, tt.want[i], fired[i])
				}
			}
		})
	}
}

func TestDetectorWordEvictedPastBound(t *testing.T) {
	d := NewDetectorSize([]Pattern{Word(TriggerPortrait, "goat")}, 4)
	// "goa" then one stray key pushes "g" out before "t" arrives
	if fired := feedAll(d, "g", "o", "a", "x", "t"); len(fired) != 0 {
		t.Errorf("Expected no trigger, got %v", fired)
	}
}

func TestDetectorPriorityOrder(t *testing.T) {
	patterns := []Pattern{
		Word(TriggerCreature, "ab"),
		Word(TriggerPortrait, "b"),
	}
	d := NewDetector(patterns)
	feedAll(d, "a")
	trig, ok := d.Feed("b")
	if !ok || trig != TriggerCreature {
		t.Errorf("Expected first listed pattern to win, got %q %v", trig, ok)
	}
}

func TestDetectorIgnoresEmptyKey(t *testing.T) {
	d := NewDetector(DefaultPatterns())
	if _, ok := d.Feed(""); ok {
		t.Error("Empty key fired")
	}
	if d.Buffer().Len() != 0 {
		t.Error("Empty key was buffered")
	}
}
