package gesture

// KeyBuffer holds the most recent key names, oldest first
type KeyBuffer struct {
	keys  []string
	limit int
}

// NewKeyBuffer creates a buffer holding at most limit keys
func NewKeyBuffer(limit int) *KeyBuffer {
	if limit < 1 {
		limit = 1
	}
	return &KeyBuffer{
		keys:  make([]string, 0, limit),
		limit: limit,
	}
}

// Push appends key, evicting the oldest entry once full
func (b *KeyBuffer) Push(key string) {
	if len(b.keys) == b.limit {
		copy(b.keys, b.keys[1:])
		b.keys = b.keys[:b.limit-1]
	}
	b.keys = append(b.keys, key)
}

// Keys returns a copy of the buffered keys
func (b *KeyBuffer) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

func (b *KeyBuffer) Len() int   { return len(b.keys) }
func (b *KeyBuffer) Limit() int { return b.limit }

// Clear empties the buffer
func (b *KeyBuffer) Clear() {
	b.keys = b.keys[:0]
}

// EndsWith reports whether the trailing keys equal seq exactly
func (b *KeyBuffer) EndsWith(seq []string) bool {
	if len(seq) == 0 || len(seq) > len(b.keys) {
		return false
	}
	tail := b.keys[len(b.keys)-len(seq):]
	for i, k := range seq {
		if tail[i] != k {
			return false
		}
	}
	return true
}
