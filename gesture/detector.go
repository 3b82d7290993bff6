package gesture

import "strings"

// DefaultBufferSize bounds the rolling key history
const DefaultBufferSize = 20

// Detector matches a rolling key history against an ordered pattern list
type Detector struct {
	buf      *KeyBuffer
	patterns []Pattern
}

// NewDetector creates a detector with the default buffer size
func NewDetector(patterns []Pattern) *Detector {
	return NewDetectorSize(patterns, DefaultBufferSize)
}

// NewDetectorSize creates a detector with an explicit buffer size
func NewDetectorSize(patterns []Pattern, size int) *Detector {
	return &Detector{
		buf:      NewKeyBuffer(size),
		patterns: patterns,
	}
}

// Feed records key and checks patterns in order. The first match clears
// the buffer and is returned
func (d *Detector) Feed(key string) (Trigger, bool) {
	if key == "" {
		return "", false
	}
	d.buf.Push(key)

	var text string
	joined := func() string {
		if text == "" {
			text = strings.ToLower(strings.Join(d.buf.keys, ""))
		}
		return text
	}

	for _, p := range d.patterns {
		if p.matches(d.buf, joined) {
			d.buf.Clear()
			return p.Trigger, true
		}
	}
	return "", false
}

// Buffer exposes the key history
func (d *Detector) Buffer() *KeyBuffer {
	return d.buf
}

// Reset drops the key history
func (d *Detector) Reset() {
	d.buf.Clear()
}
