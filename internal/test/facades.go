package test

import (
	"context"

	domainErrors "github.com/polkiloo/userservice/internal/domain/errors"
	"github.com/polkiloo/userservice/internal/domain/model"
)

// UserFacadeStub provides controllable behaviour for user endpoints.
type UserFacadeStub struct {
	UsersFn          func(context.Context) ([]model.User, error)
	UserByUsernameFn func(context.Context, string) (*model.User, error)
	UserByEmailFn    func(context.Context, string) (*model.User, error)
	CreateUserFn     func(context.Context, *model.User) (*model.User, error)
	UpdateUserFn     func(context.Context, int64, func(*model.User)) (*model.User, error)
	DeleteUserFn     func(context.Context, int64) (*model.User, error)
	CheckDatabaseFn  func(context.Context) error
}

// Users returns configured users or an empty list.
func (s UserFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{}, nil
}

// UserByUsername delegates to override or reports not found.
func (s UserFacadeStub) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.UserByUsernameFn != nil {
		return s.UserByUsernameFn(ctx, username)
	}
	return nil, domainErrors.UserNotFound("User with username '%s' doesn't exist.", username)
}

// UserByEmail delegates to override or reports not found.
func (s UserFacadeStub) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.UserByEmailFn != nil {
		return s.UserByEmailFn(ctx, email)
	}
	return nil, domainErrors.UserNotFound("User with email '%s' doesn't exist.", email)
}

// CreateUser echoes the user back with id 1 unless overridden.
func (s UserFacadeStub) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if s.CreateUserFn != nil {
		return s.CreateUserFn(ctx, user)
	}
	created := *user
	created.ID = 1
	return &created, nil
}

// UpdateUser delegates to override or reports not found.
func (s UserFacadeStub) UpdateUser(ctx context.Context, id int64, apply func(*model.User)) (*model.User, error) {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, id, apply)
	}
	return nil, domainErrors.UserNotFound("User with id '%d' doesn't exist.", id)
}

// DeleteUser delegates to override or reports not found.
func (s UserFacadeStub) DeleteUser(ctx context.Context, id int64) (*model.User, error) {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil, domainErrors.UserNotFound("User with id '%d' doesn't exist.", id)
}

// CheckDatabase reports a healthy database unless overridden.
func (s UserFacadeStub) CheckDatabase(ctx context.Context) error {
	if s.CheckDatabaseFn != nil {
		return s.CheckDatabaseFn(ctx)
	}
	return nil
}

// DatabaseProbeStub returns Err from every health check.
type DatabaseProbeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s DatabaseProbeStub) HealthCheck(context.Context) error {
	return s.Err
}
