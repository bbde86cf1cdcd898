// Package collection provides the repository interface and types for
// user-authored content overlays
package collection

import (
	"context"

	"github.com/fogoseda/party-api/internal/content"
)

// LoadInput contains parameters for loading an overlay bundle
type LoadInput struct {
	OwnerID string
}

// LoadOutput contains the result of loading an overlay bundle.
// Bundle is never nil: a missing or corrupt record yields an empty bundle.
type LoadOutput struct {
	Bundle *content.Bundle
}

// SaveInput contains parameters for saving an overlay bundle
type SaveInput struct {
	OwnerID string
	Bundle  *content.Bundle
}

// SaveOutput contains the result of saving an overlay bundle
type SaveOutput struct{}

// DeleteInput contains parameters for deleting an overlay bundle
type DeleteInput struct {
	OwnerID string
}

// DeleteOutput contains the result of deleting an overlay bundle
type DeleteOutput struct{}

// Repository defines the interface for overlay collection storage
type Repository interface {
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
