// Package statemachine defines the legal order states and the rules for
// moving between them. The non-terminal states form a single linear
// progression; delivered and cancelled are terminal.
package statemachine

import (
	"errors"

	"github.com/quickbite/quickbite-app/models"
)

// ErrInvalidTransition is returned under the Strict policy when an order has
// no legal move from its current status.
var ErrInvalidTransition = errors.New("invalid status transition")

// nextStatus is the authoritative progression table. Statuses without an
// entry are terminal.
var nextStatus = map[models.OrderStatus]models.OrderStatus{
	models.StatusPending:    models.StatusPreparing,
	models.StatusPreparing:  models.StatusReady,
	models.StatusReady:      models.StatusDelivering,
	models.StatusDelivering: models.StatusDelivered,
}

// Next returns the single legal next state for a status, or false when the
// status is terminal.
func Next(s models.OrderStatus) (models.OrderStatus, bool) {
	next, ok := nextStatus[s]
	return next, ok
}

// CanCancel reports whether an order in the given status may still be
// cancelled. Delivered and cancelled orders may not.
func CanCancel(s models.OrderStatus) bool {
	return !s.IsTerminal()
}

// TransitionPolicy selects how an advance or cancel on a terminal order is
// surfaced to the caller.
type TransitionPolicy int

const (
	// Lenient silently ignores invalid transitions; the call reports that no
	// change occurred. This matches the storefront's historical behavior.
	Lenient TransitionPolicy = iota
	// Strict rejects invalid transitions with ErrInvalidTransition.
	Strict
)

// ParsePolicy maps a config string to a policy, defaulting to Lenient.
func ParsePolicy(s string) TransitionPolicy {
	if s == "strict" {
		return Strict
	}
	return Lenient
}
