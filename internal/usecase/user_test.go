package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/userservice/internal/domain/errors"
	"github.com/polkiloo/userservice/internal/domain/model"
)

type stubUserRepository struct {
	saveFn           func(context.Context, *model.User) (*model.User, error)
	findByIDFn       func(context.Context, int64) (*model.User, error)
	findByUsernameFn func(context.Context, string) (*model.User, error)
	findByEmailFn    func(context.Context, string) (*model.User, error)
	findAllFn        func(context.Context) ([]model.User, error)
	deleteFn         func(context.Context, *model.User) error
}

func (s stubUserRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	return s.saveFn(ctx, user)
}

func (s stubUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s stubUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.findByUsernameFn(ctx, username)
}

func (s stubUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s stubUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	return s.findAllFn(ctx)
}

func (s stubUserRepository) Delete(ctx context.Context, user *model.User) error {
	return s.deleteFn(ctx, user)
}

func TestUserUseCaseSaveUser(t *testing.T) {
	uc := NewUserUseCase(stubUserRepository{saveFn: func(_ context.Context, user *model.User) (*model.User, error) {
		saved := *user
		saved.ID = 1
		return &saved, nil
	}})

	saved, err := uc.SaveUser(context.Background(), &model.User{Username: "ivan", Email: "ivan@test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 1 || saved.Username != "ivan" {
		t.Fatalf("unexpected user: %+v", saved)
	}
}

func TestUserUseCaseSaveUserDuplicate(t *testing.T) {
	uc := NewUserUseCase(stubUserRepository{saveFn: func(context.Context, *model.User) (*model.User, error) {
		return nil, domainErrors.ErrDuplicateKey
	}})

	_, err := uc.SaveUser(context.Background(), &model.User{Username: "ivan", Email: "ivan@test"})
	if !errors.Is(err, domainErrors.ErrUserDataDuplicated) {
		t.Fatalf("expected duplicated error, got %v", err)
	}
	if err.Error() != "username and/or email already exists" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestUserUseCaseSaveUserPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	uc := NewUserUseCase(stubUserRepository{saveFn: func(context.Context, *model.User) (*model.User, error) {
		return nil, boom
	}})

	if _, err := uc.SaveUser(context.Background(), &model.User{}); !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestUserUseCaseDeleteAndList(t *testing.T) {
	var deleted *model.User
	uc := NewUserUseCase(stubUserRepository{
		deleteFn: func(_ context.Context, user *model.User) error {
			deleted = user
			return nil
		},
		findAllFn: func(context.Context) ([]model.User, error) {
			return []model.User{{ID: 1}, {ID: 2}}, nil
		},
	})

	user := &model.User{ID: 3}
	if err := uc.DeleteUser(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != user {
		t.Fatal("expected user to be passed to repository")
	}

	users, err := uc.GetUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserUseCaseLookups(t *testing.T) {
	found := &model.User{ID: 1, Username: "ivan", Email: "ivan@test"}
	boom := errors.New("boom")

	repo := stubUserRepository{
		findByIDFn: func(_ context.Context, id int64) (*model.User, error) {
			switch id {
			case 1:
				return found, nil
			case 2:
				return nil, boom
			}
			return nil, domainErrors.ErrNotFound
		},
		findByUsernameFn: func(_ context.Context, username string) (*model.User, error) {
			if username == "ivan" {
				return found, nil
			}
			return nil, domainErrors.ErrNotFound
		},
		findByEmailFn: func(_ context.Context, email string) (*model.User, error) {
			if email == "ivan@test" {
				return found, nil
			}
			return nil, domainErrors.ErrNotFound
		},
	}
	uc := NewUserUseCase(repo)
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func() (*model.User, error)
		wantErr string
	}{
		{name: "by id", call: func() (*model.User, error) { return uc.ValidateAndGetUserByID(ctx, 1) }},
		{name: "by id missing", call: func() (*model.User, error) { return uc.ValidateAndGetUserByID(ctx, 42) }, wantErr: "User with id '42' doesn't exist."},
		{name: "by username", call: func() (*model.User, error) { return uc.ValidateAndGetUserByUsername(ctx, "ivan") }},
		{name: "by username missing", call: func() (*model.User, error) { return uc.ValidateAndGetUserByUsername(ctx, "nobody") }, wantErr: "User with username 'nobody' doesn't exist."},
		{name: "by email", call: func() (*model.User, error) { return uc.ValidateAndGetUserByEmail(ctx, "ivan@test") }},
		{name: "by email missing", call: func() (*model.User, error) { return uc.ValidateAndGetUserByEmail(ctx, "no@test") }, wantErr: "User with email 'no@test' doesn't exist."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := tt.call()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if user != found {
					t.Fatalf("unexpected user: %+v", user)
				}
				return
			}
			if !errors.Is(err, domainErrors.ErrUserNotFound) {
				t.Fatalf("expected user not found, got %v", err)
			}
			if err.Error() != tt.wantErr {
				t.Fatalf("expected message %q, got %q", tt.wantErr, err.Error())
			}
		})
	}

	if _, err := uc.ValidateAndGetUserByID(ctx, 2); !errors.Is(err, boom) {
		t.Fatalf("expected raw error, got %v", err)
	}
}

func TestUserUseCaseWritesToRemovedUser(t *testing.T) {
	uc := NewUserUseCase(stubUserRepository{
		saveFn: func(context.Context, *model.User) (*model.User, error) {
			return nil, domainErrors.ErrNotFound
		},
		deleteFn: func(context.Context, *model.User) error {
			return domainErrors.ErrNotFound
		},
	})
	ctx := context.Background()

	_, err := uc.SaveUser(ctx, &model.User{ID: 7, Username: "ivan", Email: "ivan@test"})
	if !errors.Is(err, domainErrors.ErrUserNotFound) {
		t.Fatalf("expected user not found on save, got %v", err)
	}
	if err.Error() != "User with id '7' doesn't exist." {
		t.Fatalf("unexpected message %q", err.Error())
	}

	err = uc.DeleteUser(ctx, &model.User{ID: 8})
	if !errors.Is(err, domainErrors.ErrUserNotFound) {
		t.Fatalf("expected user not found on delete, got %v", err)
	}
	if err.Error() != "User with id '8' doesn't exist." {
		t.Fatalf("unexpected message %q", err.Error())
	}

	if _, err := uc.SaveUser(ctx, &model.User{Username: "new"}); errors.Is(err, domainErrors.ErrUserNotFound) || !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("insert errors must pass through, got %v", err)
	}
}
