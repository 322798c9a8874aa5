// Package storage is the durable key/value surface the stateful parts of the
// storefront use to survive a restart.
package storage

// Keys for the two independent records the storefront persists.
const (
	OrdersKey  = "quickbite-orders"
	SessionKey = "quickbite-user"
)

// Backend exposes a minimal get/set surface over raw values. Implementations
// overwrite the full value on every Set; there are no partial writes.
type Backend interface {
	// Get returns the stored value for key. ok is false when nothing is
	// stored under that key.
	Get(key string) (value []byte, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
}
