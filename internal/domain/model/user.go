package model

import "time"

// User is the managed user record.
type User struct {
	ID        int64
	Username  string
	Email     string
	Birthday  *Date
	CreatedOn time.Time
	UpdatedOn time.Time
}

// IsNew reports whether the record has not been persisted yet.
func (u *User) IsNew() bool {
	return u.ID == 0
}
