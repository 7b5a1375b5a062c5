package handlers

import (
	"context"

	"github.com/polkiloo/userservice/internal/domain/model"
)

// UserFacade describes the user operations exposed via HTTP.
type UserFacade interface {
	Users(ctx context.Context) ([]model.User, error)
	UserByUsername(ctx context.Context, username string) (*model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, apply func(*model.User)) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) (*model.User, error)
}

// HealthFacade reports backing service health.
type HealthFacade interface {
	CheckDatabase(ctx context.Context) error
}

// RequestValidator validates decoded request payloads.
type RequestValidator interface {
	Struct(objectName string, req any) error
}
