package user

import "time"

type User struct {
	ID              string
	Email           string
	Name            *string
	PasswordHash    *string
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasPassword reports whether the account can authenticate with a password
// (OAuth-only accounts have no hash).
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
