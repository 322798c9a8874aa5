package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quickbite/quickbite-app/models"
)

func line(id string, price float64, qty int) models.CartLine {
	return models.CartLine{
		ID:             id,
		Name:           "Item " + id,
		Price:          price,
		Quantity:       qty,
		RestaurantID:   "1",
		RestaurantName: "La Bella Italia",
	}
}

// checkConsistency verifies the derived views against the raw lines.
func checkConsistency(t *testing.T, c *Cart) {
	t.Helper()
	var subtotal float64
	var items int
	for _, l := range c.Lines() {
		assert.Greater(t, l.Quantity, 0, "no line may sit at quantity <= 0")
		subtotal += l.Price * float64(l.Quantity)
		items += l.Quantity
	}
	assert.InDelta(t, subtotal, c.Subtotal(), 1e-9)
	assert.Equal(t, len(c.Lines()), c.LineCount())
	assert.Equal(t, items, c.TotalItemCount())
}

func TestAddLineMergesSameID(t *testing.T) {
	c := New()
	c.AddLine(line("1-1", 12.90, 1))
	c.AddLine(line("1-1", 12.90, 1))

	assert.Equal(t, 1, c.LineCount())
	assert.Equal(t, 2, c.Lines()[0].Quantity)
	checkConsistency(t, c)
}

func TestAddLineMergesIncomingQuantity(t *testing.T) {
	c := New()
	c.AddLine(line("1-1", 12.90, 2))
	c.AddLine(line("1-1", 12.90, 3))

	assert.Equal(t, 1, c.LineCount())
	assert.Equal(t, 5, c.Lines()[0].Quantity)
}

func TestAddLineDistinctOptionsMakeDistinctLines(t *testing.T) {
	c := New()
	plain := line("1-1", 12.90, 1)
	extra := line(models.LineID("1-1", []string{"Extra fromage"}), 14.90, 1)
	c.AddLine(plain)
	c.AddLine(extra)

	assert.Equal(t, 2, c.LineCount())
	checkConsistency(t, c)
}

func TestAddLineDefaultsQuantityToOne(t *testing.T) {
	c := New()
	c.AddLine(line("1-1", 12.90, 0))

	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestRemoveLineIsIdempotent(t *testing.T) {
	c := New()
	c.AddLine(line("1-1", 12.90, 1))
	c.RemoveLine("1-1")
	c.RemoveLine("1-1")
	c.RemoveLine("never-added")

	assert.Equal(t, 0, c.LineCount())
	assert.Zero(t, c.Subtotal())
}

func TestSetQuantity(t *testing.T) {
	c := New()
	c.AddLine(line("1-1", 12.90, 1))

	c.SetQuantity("1-1", 4)
	assert.Equal(t, 4, c.Lines()[0].Quantity)
	checkConsistency(t, c)

	// Zero or negative behaves as removal.
	c.SetQuantity("1-1", 0)
	assert.Equal(t, 0, c.LineCount())

	c.AddLine(line("1-2", 15.90, 1))
	c.SetQuantity("1-2", -3)
	assert.Equal(t, 0, c.LineCount())
}

func TestClear(t *testing.T) {
	c := New()
	c.AddLine(line("1-1", 12.90, 2))
	c.AddLine(line("1-2", 15.90, 1))
	c.Clear()

	assert.Equal(t, 0, c.LineCount())
	assert.Equal(t, 0, c.TotalItemCount())
	assert.Zero(t, c.Subtotal())
}

func TestDerivedViewsStayConsistent(t *testing.T) {
	c := New()
	c.AddLine(line("1-1", 10, 2))
	checkConsistency(t, c)
	c.AddLine(line("1-2", 5, 1))
	checkConsistency(t, c)
	c.SetQuantity("1-1", 7)
	checkConsistency(t, c)
	c.RemoveLine("1-2")
	checkConsistency(t, c)
	c.AddLine(line("1-3", 7.90, 3))
	checkConsistency(t, c)
	c.SetQuantity("1-3", -1)
	checkConsistency(t, c)

	assert.Equal(t, 1, c.LineCount())
	assert.InDelta(t, 70.0, c.Subtotal(), 1e-9)
}
