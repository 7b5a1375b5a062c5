package dto

import "github.com/polkiloo/userservice/internal/domain/model"

// CreateUserRequest is the payload of POST /api/users.
type CreateUserRequest struct {
	Username string      `json:"username" validate:"notblank"`
	Email    string      `json:"email" validate:"notblank,emailaddr"`
	Birthday *model.Date `json:"birthday" validate:"omitnil,past"`
}

// ToUser copies the request into a new, not yet persisted user.
func (r CreateUserRequest) ToUser() *model.User {
	return &model.User{
		Username: r.Username,
		Email:    r.Email,
		Birthday: r.Birthday,
	}
}

// UpdateUserRequest is the payload of PUT /api/users/:id. Only fields present
// in the payload are applied.
type UpdateUserRequest struct {
	Username Optional[string]     `json:"username" validate:"omitnil,notblank"`
	Email    Optional[string]     `json:"email" validate:"omitnil,notblank,emailaddr"`
	Birthday Optional[model.Date] `json:"birthday" validate:"omitnil,past"`
}

// ApplyTo overwrites the present fields on user.
func (r UpdateUserRequest) ApplyTo(user *model.User) {
	if v, ok := r.Username.Value(); ok {
		user.Username = v
	}
	if v, ok := r.Email.Value(); ok {
		user.Email = v
	}
	if v, ok := r.Birthday.Value(); ok {
		user.Birthday = &v
	}
}

// UserResponse is the wire form of a user.
type UserResponse struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Birthday *model.Date `json:"birthday"`
}

// NewUserResponse maps a user to its wire form.
func NewUserResponse(user model.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Birthday: user.Birthday,
	}
}

// NewUserResponses maps users preserving order; never returns nil.
func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
