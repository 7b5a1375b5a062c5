package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/polkiloo/userservice/internal/domain/errors"
	"github.com/polkiloo/userservice/internal/domain/model"
	"github.com/polkiloo/userservice/internal/domain/repository"
)

// UserUseCase implements user management on top of the repository.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// SaveUser inserts or updates the user. A username or email collision is
// reported as a UserDataDuplicated domain error, an update of a user removed
// in the meantime as UserNotFound.
func (u *UserUseCase) SaveUser(ctx context.Context, user *model.User) (*model.User, error) {
	saved, err := u.users.Save(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrDuplicateKey):
			return nil, domainErrors.UserDataDuplicated()
		case !user.IsNew() && errors.Is(err, domainErrors.ErrNotFound):
			return nil, userIDNotFound(user.ID)
		}
		return nil, err
	}
	return saved, nil
}

// DeleteUser removes the user. A user that is already gone yields UserNotFound.
func (u *UserUseCase) DeleteUser(ctx context.Context, user *model.User) error {
	if err := u.users.Delete(ctx, user); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return userIDNotFound(user.ID)
		}
		return err
	}
	return nil
}

// GetUsers returns every stored user.
func (u *UserUseCase) GetUsers(ctx context.Context) ([]model.User, error) {
	return u.users.FindAll(ctx)
}

// ValidateAndGetUserByID returns the user or a UserNotFound error.
func (u *UserUseCase) ValidateAndGetUserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := u.users.FindByID(ctx, id)
	return notFoundAs(user, err, userIDNotFoundFormat, id)
}

// ValidateAndGetUserByUsername returns the user or a UserNotFound error.
func (u *UserUseCase) ValidateAndGetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := u.users.FindByUsername(ctx, username)
	return notFoundAs(user, err, "User with username '%s' doesn't exist.", username)
}

// ValidateAndGetUserByEmail returns the user or a UserNotFound error.
func (u *UserUseCase) ValidateAndGetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	return notFoundAs(user, err, "User with email '%s' doesn't exist.", email)
}

const userIDNotFoundFormat = "User with id '%d' doesn't exist."

func userIDNotFound(id int64) error {
	return domainErrors.UserNotFound(userIDNotFoundFormat, id)
}

func notFoundAs(user *model.User, err error, format string, arg any) (*model.User, error) {
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.UserNotFound(format, arg)
		}
		return nil, err
	}
	return user, nil
}
