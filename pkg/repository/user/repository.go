package user

import (
	"context"

	"github.com/amirasaad/marketplace/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the read operations the pipeline needs for users.
// Users are looked up, never mutated, by the webhook pipeline.
type Repository interface {
	// Get returns the user with the given id, or nil if no such user exists.
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)
}
