package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// User is an account that owns wallets.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose
	FirstName    *string   `json:"first_name"`
	LastName     *string   `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserPatch is a partial profile edit with the same nil-means-unchanged rule as WalletPatch.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// Apply writes the supplied fields onto u.
func (p UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FirstName != nil {
		v := *p.FirstName
		u.FirstName = &v
	}
	if p.LastName != nil {
		v := *p.LastName
		u.LastName = &v
	}
}
