// Package boardsession provides the repository interface and types for
// board-variant game state
package boardsession

import (
	"context"

	"github.com/fogoseda/party-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=boardsessionmock github.com/fogoseda/party-api/internal/repositories/boardsession Repository

// LoadInput contains parameters for loading a game
type LoadInput struct {
	GameID string

	// Defaults is the baseline state; persisted fields are merged over it.
	// Missing or corrupt saved data yields the defaults unchanged.
	Defaults *entities.BoardSession
}

// LoadOutput contains the result of loading a game
type LoadOutput struct {
	Session *entities.BoardSession

	// Restored is false when no usable saved state existed
	Restored bool
}

// SaveInput contains parameters for saving a game
type SaveInput struct {
	Session *entities.BoardSession
}

// SaveOutput contains the result of saving a game
type SaveOutput struct{}

// DeleteInput contains parameters for deleting a game
type DeleteInput struct {
	GameID string
}

// DeleteOutput contains the result of deleting a game
type DeleteOutput struct{}

// Repository defines the interface for board game storage operations
type Repository interface {
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
