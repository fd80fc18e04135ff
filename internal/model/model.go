// Package model defines the domain models for quotd.
package model

// Model is the interface that all state-store records must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// Key prefixes and singleton keys for the state store.
const (
	PrefixShown = "shown"
	KeyCurrent  = "current"
)
