package input

// Bus fans pointer motion and resize notifications out to subscribers.
// Subscriptions return an unsubscribe func that is safe to call twice
type Bus struct {
	nextID  int
	moves   []moveSub
	resizes []resizeSub
}

type moveSub struct {
	id int
	fn func(x, y int)
}

type resizeSub struct {
	id int
	fn func(w, h int)
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// OnPointerMove subscribes fn to pointer motion
func (b *Bus) OnPointerMove(fn func(x, y int)) func() {
	id := b.nextID
	b.nextID++
	b.moves = append(b.moves, moveSub{id, fn})
	return func() {
		for i, s := range b.moves {
			if s.id == id {
				b.moves = append(b.moves[:i:i], b.moves[i+1:]...)
				return
			}
		}
	}
}

// OnResize subscribes fn to viewport size changes
func (b *Bus) OnResize(fn func(w, h int)) func() {
	id := b.nextID
	b.nextID++
	b.resizes = append(b.resizes, resizeSub{id, fn})
	return func() {
		for i, s := range b.resizes {
			if s.id == id {
				b.resizes = append(b.resizes[:i:i], b.resizes[i+1:]...)
				return
			}
		}
	}
}

// PointerMoved notifies motion subscribers
func (b *Bus) PointerMoved(x, y int) {
	for _, s := range b.moves {
		s.fn(x, y)
	}
}

// Resized notifies resize subscribers
func (b *Bus) Resized(w, h int) {
	for _, s := range b.resizes {
		s.fn(w, h)
	}
}

// Listeners returns the number of live subscriptions
func (b *Bus) Listeners() int {
	return len(b.moves) + len(b.resizes)
}
