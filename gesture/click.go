package gesture

// ClickResult is the outcome of a counted click
type ClickResult uint8

const (
	ClickNone ClickResult = iota
	ClickActivate
	ClickDeactivate
)

func (r ClickResult) String() string {
	switch r {
	case ClickActivate:
		return "activate"
	case ClickDeactivate:
		return "deactivate"
	default:
		return "none"
	}
}

// ClickCounter counts clicks on one surface toward a threshold
type ClickCounter struct {
	threshold int
	count     int
}

// NewClickCounter creates a counter firing every threshold clicks
func NewClickCounter(threshold int) *ClickCounter {
	if threshold < 1 {
		threshold = 1
	}
	return &ClickCounter{threshold: threshold}
}

// Click registers one click. active is whether the surface's effect is
// currently on: such a click turns it off and resets the count
func (c *ClickCounter) Click(active bool) ClickResult {
	if active {
		c.count = 0
		return ClickDeactivate
	}
	c.count++
	if c.count >= c.threshold {
		c.count = 0
		return ClickActivate
	}
	return ClickNone
}

func (c *ClickCounter) Count() int     { return c.count }
func (c *ClickCounter) Threshold() int { return c.threshold }

// Reset zeroes the count
func (c *ClickCounter) Reset() {
	c.count = 0
}
