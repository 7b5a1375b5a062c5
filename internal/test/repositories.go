package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/userservice/internal/domain/errors"
	"github.com/polkiloo/userservice/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests and enforces username
// and email uniqueness the way the database does.
type UserRepositoryStub struct {
	ByID map[int64]model.User
	Next int64
	Err  error
	Now  func() time.Time

	mu sync.Mutex
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByID: make(map[int64]model.User),
		Next: 1,
		Now:  time.Now,
	}
}

// Save inserts or updates a copy of user.
func (s *UserRepositoryStub) Save(ctx context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	s.init()

	for id, existing := range s.ByID {
		if id == user.ID {
			continue
		}
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, domainErrors.ErrDuplicateKey
		}
	}

	saved := *user
	now := s.Now().UTC()
	if saved.IsNew() {
		saved.ID = s.Next
		s.Next++
		saved.CreatedOn = now
	} else {
		existing, ok := s.ByID[saved.ID]
		if !ok {
			return nil, domainErrors.ErrNotFound
		}
		saved.CreatedOn = existing.CreatedOn
	}
	saved.UpdatedOn = now
	s.ByID[saved.ID] = saved
	return &saved, nil
}

// FindByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return s.find(func(u model.User) bool { return u.ID == id })
}

// FindByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.find(func(u model.User) bool { return u.Username == username })
}

// FindByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.find(func(u model.User) bool { return u.Email == email })
}

// FindAll returns stored users ordered by id.
func (s *UserRepositoryStub) FindAll(ctx context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Delete removes the user or returns not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[user.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, user.ID)
	return nil
}

func (s *UserRepositoryStub) find(match func(model.User) bool) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.ByID {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *UserRepositoryStub) init() {
	if s.ByID == nil {
		s.ByID = make(map[int64]model.User)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	if s.Now == nil {
		s.Now = time.Now
	}
}
