package userRepo

import (
	"context"

	"tutorhive/models"
)

// UserRepository defines the identity lookups the scheduling core depends on.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
