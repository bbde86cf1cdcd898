// Package cardsession provides the repository interface and types for
// card-variant session state
package cardsession

import (
	"context"

	"github.com/fogoseda/party-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=cardsessionmock github.com/fogoseda/party-api/internal/repositories/cardsession Repository

// LoadInput contains parameters for loading a session
type LoadInput struct {
	SessionID string

	// Defaults is the baseline state; persisted fields are merged over it.
	// Missing or corrupt saved data yields the defaults unchanged.
	Defaults *entities.CardSession
}

// LoadOutput contains the result of loading a session
type LoadOutput struct {
	Session *entities.CardSession

	// Restored is false when no usable saved state existed
	Restored bool
}

// SaveInput contains parameters for saving a session
type SaveInput struct {
	Session *entities.CardSession
}

// SaveOutput contains the result of saving a session
type SaveOutput struct{}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	SessionID string
}

// DeleteOutput contains the result of deleting a session
type DeleteOutput struct{}

// Repository defines the interface for card session storage operations.
// Load never fails on corrupt payloads: the caller always gets a playable
// state back.
type Repository interface {
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
