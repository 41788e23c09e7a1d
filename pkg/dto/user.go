package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserRead is the read model for a platform user (a buyer).
type UserRead struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
}
