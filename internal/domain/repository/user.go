package repository

import (
	"context"

	"github.com/polkiloo/userservice/internal/domain/model"
)

// UserRepository describes persistence operations for users.
//
// Lookups report a miss with errors.ErrNotFound. Save reports a username or
// email collision with errors.ErrDuplicateKey; uniqueness is enforced by the
// store itself, so callers must not pre-check it.
type UserRepository interface {
	Save(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, user *model.User) error
}
