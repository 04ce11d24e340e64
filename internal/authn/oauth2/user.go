package oauth2

import "github.com/bornholm/hackboard/internal/authn"

type User struct {
	Subject  string
	Provider string

	Nickname string
	Email    string
}

// UserProvider implements authn.User.
func (u *User) UserProvider() string {
	return u.Provider
}

// UserSubject implements authn.User.
func (u *User) UserSubject() string {
	return u.Subject
}

// UserDisplayName implements authn.User.
func (u *User) UserDisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}

	return u.Email
}

// UserRole implements authn.User.
func (u *User) UserRole() string {
	return ""
}

var _ authn.User = &User{}
