// Package profile defines the persisted per-user profile store: the
// registration flag and the chosen language, each independently settable.
package profile

import "context"

// Type represents the profile store backend type.
type Type string

const (
	// TypeMongoDB selects the MongoDB implementation.
	TypeMongoDB Type = "mongodb"
	// TypeMemory selects the in-process implementation.
	TypeMemory Type = "memory"
)

// Store persists per-user flags across restarts. An unset language is the
// empty string; an unknown user is unregistered.
type Store interface {
	// Language returns the stored language tag for the user, "" when unset.
	Language(ctx context.Context, userID int64) (string, error)

	// SetLanguage stores the user's language choice.
	SetLanguage(ctx context.Context, userID int64, lang string) error

	// Registered reports whether the user has confirmed registration.
	Registered(ctx context.Context, userID int64) (bool, error)

	// SetRegistered stores the registration flag.
	SetRegistered(ctx context.Context, userID int64, registered bool) error

	// Close releases the backing connection.
	Close(ctx context.Context) error
}
