package store

import (
	"context"
	"sync"

	"github.com/bornholm/hackboard/internal/authn"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const ProviderLocal = "local"

var passwordCost = bcrypt.DefaultCost

// dummyPasswordHash is compared against when the user does not exist so that
// unknown and known usernames take the same time to reject.
var dummyPasswordHash = sync.OnceValue(func() []byte {
	hash, err := hashPassword("hackboard-dummy-password")
	if err != nil {
		panic(errors.WithStack(err))
	}

	return hash
})

// CreateLocalUser registers a password based account. The first account ever
// created is granted the admin role.
func (s *Store) CreateLocalUser(ctx context.Context, username, email, password string) (*User, error) {
	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var user *User
	err = s.Tx(ctx, func(conn *sqlite.Conn) error {
		existing, err := s.findUser(conn, username, ProviderLocal)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return errors.WithStack(err)
		}

		if existing != nil {
			return errors.Wrapf(ErrAlreadyExists, "user '%s'", username)
		}

		var count int64
		err = sqlitex.Execute(conn, "SELECT COUNT(*) FROM users", &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				count = stmt.ColumnInt64(0)
				return nil
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		role := RoleMember
		if count == 0 {
			role = RoleAdmin
		}

		user, err = s.insertUser(conn, &User{
			Subject:      username,
			Provider:     ProviderLocal,
			Nickname:     username,
			Email:        email,
			Role:         role,
			PasswordHash: passwordHash,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// Authenticate checks local credentials.
func (s *Store) Authenticate(ctx context.Context, username string, password string) (*User, error) {
	var user *User
	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		found, err := s.findUser(conn, username, ProviderLocal)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return errors.WithStack(err)
		}

		if found == nil {
			verifyPassword([]byte(password), dummyPasswordHash())
			return errors.WithStack(authn.ErrUnauthenticated)
		}

		if !verifyPassword([]byte(password), found.PasswordHash) {
			return errors.WithStack(authn.ErrUnauthenticated)
		}

		user = found

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

func hashPassword(password string) ([]byte, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return bytes, err
}

func verifyPassword(password, hash []byte) bool {
	if len(hash) == 0 {
		return false
	}

	err := bcrypt.CompareHashAndPassword(hash, password)
	return err == nil
}
