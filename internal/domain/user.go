package domain

import (
	"errors"
	"time"
)

// User validation errors
var (
	ErrEmptyUsername     = errors.New("username cannot be empty")
	ErrEmptyPasswordHash = errors.New("password hash cannot be empty")
	ErrEmptySalt         = errors.New("salt cannot be empty")
)

// User represents a registered account. The password itself is never held;
// only the salted hash and the salt it was derived with.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser builds a User ready to be stored. The ID is assigned by the store.
func NewUser(username, passwordHash, salt string) (*User, error) {
	user := &User{
		Username:     username,
		PasswordHash: passwordHash,
		Salt:         salt,
		CreatedAt:    time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if u.PasswordHash == "" {
		return ErrEmptyPasswordHash
	}
	if u.Salt == "" {
		return ErrEmptySalt
	}
	return nil
}
