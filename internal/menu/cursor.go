// Package menu provides a circular selection list that skips disabled items.
package menu

// Item is one menu entry. Action is the command the caller interprets when
// the item is selected; it is opaque to the cursor.
type Item[C any] struct {
	ID      string
	Label   string
	Enabled bool
	Action  C
}

// Cursor is an ordered list of items with a current index.
type Cursor[C any] struct {
	items []Item[C]
	index int
}

// New creates a cursor positioned on the first enabled item.
func New[C any](items []Item[C]) *Cursor[C] {
	c := &Cursor[C]{items: items}
	c.Reset()
	return c
}

// Items returns the current item list.
func (c *Cursor[C]) Items() []Item[C] {
	return c.items
}

// Index returns the current index.
func (c *Cursor[C]) Index() int {
	return c.index
}

// Current returns the item under the cursor, if any.
func (c *Cursor[C]) Current() (Item[C], bool) {
	if c.index < 0 || c.index >= len(c.items) {
		var zero Item[C]
		return zero, false
	}
	return c.items[c.index], true
}

// MoveNext advances to the next enabled item, wrapping around.
// It gives up after one full circuit, leaving the index where it stopped.
func (c *Cursor[C]) MoveNext() {
	n := len(c.items)
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		c.index = (c.index + 1) % n
		if c.items[c.index].Enabled {
			return
		}
	}
}

// MovePrev moves to the previous enabled item, wrapping around.
func (c *Cursor[C]) MovePrev() {
	n := len(c.items)
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		c.index = (c.index - 1 + n) % n
		if c.items[c.index].Enabled {
			return
		}
	}
}

// Select returns the action bound to the current item.
// ok is false when the list is empty or the item is disabled.
func (c *Cursor[C]) Select() (action C, ok bool) {
	item, found := c.Current()
	if !found || !item.Enabled {
		var zero C
		return zero, false
	}
	return item.Action, true
}

// Reset moves to index 0, then forward to the first enabled item.
func (c *Cursor[C]) Reset() {
	c.index = 0
	c.skipDisabled()
}

// UpdateItems replaces the item list. An out-of-range index is reset;
// otherwise the index is kept and moved forward if its item is disabled.
func (c *Cursor[C]) UpdateItems(items []Item[C]) {
	c.items = items
	if c.index < 0 || c.index >= len(items) {
		c.Reset()
		return
	}
	c.skipDisabled()
}

// SetEnabled toggles one item by ID, keeping the cursor on an enabled item.
func (c *Cursor[C]) SetEnabled(id string, enabled bool) {
	changed := false
	for i := range c.items {
		if c.items[i].ID == id && c.items[i].Enabled != enabled {
			c.items[i].Enabled = enabled
			changed = true
		}
	}
	if changed {
		c.skipDisabled()
	}
}

func (c *Cursor[C]) skipDisabled() {
	n := len(c.items)
	if n == 0 || c.items[c.index].Enabled {
		return
	}
	for i := 0; i < n; i++ {
		c.index = (c.index + 1) % n
		if c.items[c.index].Enabled {
			return
		}
	}
}
