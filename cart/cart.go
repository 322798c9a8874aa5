// Package cart holds the shopper's in-progress selection before checkout.
// It is purely in-memory and carries no identity beyond the current session.
package cart

import (
	"sync"

	"github.com/quickbite/quickbite-app/models"
)

// Cart is an ordered collection of cart lines keyed by line id. Re-adding an
// existing id merges by incrementing quantity instead of duplicating the line.
// All operations are total: there is no invalid cart state short of empty.
type Cart struct {
	mu    sync.RWMutex
	lines []models.CartLine
}

func New() *Cart {
	return &Cart{}
}

// AddLine inserts the line or, if a line with the same id already exists,
// increments its quantity by the incoming quantity (minimum 1).
func (c *Cart) AddLine(line models.CartLine) {
	c.mu.Lock()
	defer c.mu.Unlock()

	qty := line.Quantity
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].ID == line.ID {
			c.lines[i].Quantity += qty
			return
		}
	}
	line.Quantity = qty
	c.lines = append(c.lines, line)
}

// RemoveLine deletes the line unconditionally. Absent ids are ignored.
func (c *Cart) RemoveLine(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

func (c *Cart) removeLocked(id string) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the quantity of a line. A quantity of zero or less removes
// the line; a line is never retained at quantity zero.
func (c *Cart) SetQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(id)
		return
	}
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the collection.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal is recomputed from the current lines on every call.
func (c *Cart) Subtotal() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var sum float64
	for _, l := range c.lines {
		sum += l.LineTotal()
	}
	return sum
}

// LineCount is the number of distinct lines.
func (c *Cart) LineCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lines)
}

// TotalItemCount is the sum of quantities over all lines.
func (c *Cart) TotalItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}
