// Package catalog holds the static restaurant and menu reference data the
// storefront browses. The catalog has no lifecycle; it only feeds cart-line
// construction with validated prices.
package catalog

import (
	"errors"

	"github.com/quickbite/quickbite-app/models"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrUnknownOption      = errors.New("unknown menu option")
)

// MenuOption is an optional extra with a price surcharge.
type MenuOption struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type MenuItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Image       string       `json:"image"`
	Options     []MenuOption `json:"options,omitempty"`
}

type MenuSection struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}

type Restaurant struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Cuisine      string        `json:"cuisine"`
	Rating       float64       `json:"rating"`
	DeliveryTime string        `json:"delivery_time"`
	Image        string        `json:"image"`
	Address      string        `json:"address"`
	Description  string        `json:"description"`
	Menu         []MenuSection `json:"menu"`
}

// Restaurants returns the full catalog for the listing page.
func Restaurants() []Restaurant {
	return restaurants
}

// FindRestaurant looks a restaurant up by id.
func FindRestaurant(id string) (Restaurant, bool) {
	for _, r := range restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return Restaurant{}, false
}

// FindMenuItem looks a menu item up within a restaurant.
func FindMenuItem(restaurantID, itemID string) (Restaurant, MenuItem, bool) {
	r, ok := FindRestaurant(restaurantID)
	if !ok {
		return Restaurant{}, MenuItem{}, false
	}
	for _, section := range r.Menu {
		for _, item := range section.Items {
			if item.ID == itemID {
				return r, item, true
			}
		}
	}
	return Restaurant{}, MenuItem{}, false
}

// BuildCartLine turns a menu item plus chosen option labels into a cart line.
// Option surcharges are baked into the unit price here, before the line ever
// reaches the cart, and the option set becomes part of the line identity.
func BuildCartLine(restaurantID, itemID string, options []string) (models.CartLine, error) {
	r, item, ok := FindMenuItem(restaurantID, itemID)
	if !ok {
		if _, found := FindRestaurant(restaurantID); !found {
			return models.CartLine{}, ErrRestaurantNotFound
		}
		return models.CartLine{}, ErrMenuItemNotFound
	}

	price := item.Price
	for _, label := range options {
		found := false
		for _, opt := range item.Options {
			if opt.Name == label {
				price += opt.Price
				found = true
				break
			}
		}
		if !found {
			return models.CartLine{}, ErrUnknownOption
		}
	}

	line := models.CartLine{
		ID:             models.LineID(item.ID, options),
		Name:           item.Name,
		Price:          price,
		Quantity:       1,
		RestaurantID:   r.ID,
		RestaurantName: r.Name,
		Image:          item.Image,
	}
	if len(options) > 0 {
		line.Options = options
	}
	return line, nil
}
