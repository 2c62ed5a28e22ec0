// Package domain holds contracts shared by every domain package.
package domain

// Event is implemented by every domain event published on the bus.
type Event interface {
	Type() string
}
