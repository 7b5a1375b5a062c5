package app

import (
	"context"

	"github.com/polkiloo/userservice/internal/domain/model"
	"github.com/polkiloo/userservice/internal/usecase"
)

// DatabaseProbe reports whether the backing database is reachable.
type DatabaseProbe interface {
	HealthCheck(ctx context.Context) error
}

// UserFacade is the entry point of the HTTP layer into user management.
type UserFacade struct {
	users    *usecase.UserUseCase
	database DatabaseProbe
}

// NewUserFacade constructs UserFacade.
func NewUserFacade(users *usecase.UserUseCase, database DatabaseProbe) *UserFacade {
	return &UserFacade{users: users, database: database}
}

// Users lists every stored user.
func (f *UserFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.GetUsers(ctx)
}

// UserByUsername returns the user or a UserNotFound error.
func (f *UserFacade) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	return f.users.ValidateAndGetUserByUsername(ctx, username)
}

// UserByEmail returns the user or a UserNotFound error.
func (f *UserFacade) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.users.ValidateAndGetUserByEmail(ctx, email)
}

// CreateUser persists a new user.
func (f *UserFacade) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	return f.users.SaveUser(ctx, user)
}

// UpdateUser loads the user, lets apply change it and saves the result.
func (f *UserFacade) UpdateUser(ctx context.Context, id int64, apply func(*model.User)) (*model.User, error) {
	user, err := f.users.ValidateAndGetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(user)
	return f.users.SaveUser(ctx, user)
}

// DeleteUser removes the user and returns the record as it was before removal.
func (f *UserFacade) DeleteUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := f.users.ValidateAndGetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := f.users.DeleteUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CheckDatabase pings the backing database.
func (f *UserFacade) CheckDatabase(ctx context.Context) error {
	return f.database.HealthCheck(ctx)
}
