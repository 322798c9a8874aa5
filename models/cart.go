package models

import "strings"

// CartLine is one distinct item+options configuration with a quantity.
// Price is the unit price with any option surcharge already baked in, so
// distinct option combinations become distinct lines.
type CartLine struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	Quantity       int      `json:"quantity"`
	RestaurantID   string   `json:"restaurant_id"`
	RestaurantName string   `json:"restaurant_name"`
	Image          string   `json:"image,omitempty"`
	Options        []string `json:"options,omitempty"`
}

// LineTotal is the unit price times quantity.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// LineID derives the cart line identifier from a menu item id and the chosen
// option labels, so the same item with different options lands on its own line.
func LineID(itemID string, options []string) string {
	if len(options) == 0 {
		return itemID
	}
	return itemID + "-" + strings.Join(options, "-")
}
