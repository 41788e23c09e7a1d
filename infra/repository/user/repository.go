package user

import (
	"context"
	"errors"

	"github.com/amirasaad/marketplace/pkg/dto"
	userrepo "github.com/amirasaad/marketplace/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed user repository.
func New(db *gorm.DB) userrepo.Repository {
	return &repository{db: db}
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	var user User
	if err := r.db.WithContext(
		ctx,
	).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&user), nil
}

func mapModelToDTO(m *User) *dto.UserRead {
	return &dto.UserRead{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}
