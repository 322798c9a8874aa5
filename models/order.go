package models

import "time"

// OrderStatus represents all possible states of a storefront order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPreparing  OrderStatus = "preparing"
	StatusReady      OrderStatus = "ready"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// ActiveStatuses are the states the staff dashboard treats as still actionable.
var ActiveStatuses = []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusDelivering}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsActive reports whether the order is in a non-terminal state.
func (s OrderStatus) IsActive() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivering:
		return true
	}
	return false
}

// IsValid reports whether s is one of the known statuses.
func (s OrderStatus) IsValid() bool {
	return s.IsActive() || s.IsTerminal()
}

// Order is an immutable snapshot of a finalized cart plus customer and
// fulfillment metadata. Items and Total are fixed at creation time; only
// Status and UpdatedAt change afterwards, and only through the status machine.
type Order struct {
	ID                string      `json:"id"`
	InvoiceNumber     string      `json:"invoice_number"`
	Items             []CartLine  `json:"items"`
	Status            OrderStatus `json:"status"`
	DeliveryFee       float64     `json:"delivery_fee"`
	Total             float64     `json:"total"`
	CustomerName      string      `json:"customer_name"`
	CustomerAddress   string      `json:"customer_address"`
	CustomerPhone     string      `json:"customer_phone"`
	RestaurantID      string      `json:"restaurant_id"`
	RestaurantName    string      `json:"restaurant_name"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	EstimatedDelivery time.Time   `json:"estimated_delivery"`
}

// Subtotal is the item total without the delivery fee.
func (o Order) Subtotal() float64 {
	return o.Total - o.DeliveryFee
}
