package core

// Controls is the player input sampled for one simulation tick.
type Controls struct {
	DRow int  // -1 up, 0 none, 1 down
	DCol int  // -1 left, 0 none, 1 right
	Fire bool // Fire button held this tick
}

// Neutral reports whether no input was given.
func (c Controls) Neutral() bool {
	return c.DRow == 0 && c.DCol == 0 && !c.Fire
}

// Merge combines a key press into the controls collected for the current tick.
// Later directions on the same axis win.
func (c Controls) Merge(other Controls) Controls {
	if other.DRow != 0 {
		c.DRow = other.DRow
	}
	if other.DCol != 0 {
		c.DCol = other.DCol
	}
	c.Fire = c.Fire || other.Fire
	return c
}

// InputSource is polled by tasks that react to the player.
// Poll never blocks and returns neutral controls when nothing is pending.
type InputSource interface {
	Poll() Controls
}
