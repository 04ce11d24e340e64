package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bornholm/hackboard/internal/authn"
	"github.com/pkg/errors"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

var userMigrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,

		subject TEXT NOT NULL,
		provider TEXT NOT NULL,

		nickname TEXT,
		email TEXT,

		role TEXT NOT NULL DEFAULT 'member',

		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		connected_at INTEGER,

		password BLOB,

		UNIQUE (subject, provider)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);`,
}

type User struct {
	ID int64

	Provider string
	Subject  string

	Role string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConnectedAt time.Time

	Nickname string
	Email    string

	PasswordHash []byte
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
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

	if u.Email != "" {
		return u.Email
	}

	return u.Subject
}

// UserRole implements authn.User.
func (u *User) UserRole() string {
	return u.Role
}

var _ authn.User = &User{}

func (s *Store) FindOrCreateUser(ctx context.Context, subject, provider string) (*User, error) {
	var user *User
	err := s.Tx(ctx, func(conn *sqlite.Conn) error {
		existing, err := s.findUser(conn, subject, provider)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return errors.WithStack(err)
		}

		if existing != nil {
			user = existing
			return nil
		}

		user, err = s.insertUser(conn, &User{Subject: subject, Provider: provider, Role: RoleMember})
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

func (s *Store) findUser(conn *sqlite.Conn, subject, provider string) (*User, error) {
	var user *User

	query := fmt.Sprintf(`SELECT %s FROM users WHERE subject = ? AND provider = ? LIMIT 1`, userAttributes)
	err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []any{subject, provider},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			user = &User{}
			return errors.WithStack(s.bindUser(stmt, user))
		},
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if user == nil {
		return nil, errors.WithStack(ErrNotFound)
	}

	return user, nil
}

func (s *Store) insertUser(conn *sqlite.Conn, user *User) (*User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users
			(subject, provider, nickname, email, role, password, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING %s;`,
		userAttributes,
	)

	now := time.Now().UTC().Unix()

	var inserted *User

	err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []any{user.Subject, user.Provider, user.Nickname, user.Email, user.Role, user.PasswordHash, now, now},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			inserted = &User{}
			return errors.WithStack(s.bindUser(stmt, inserted))
		},
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return inserted, nil
}

func (s *Store) GetUser(ctx context.Context, userID int64) (*User, error) {
	users, err := s.GetUsers(ctx, userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(users) == 0 {
		return nil, errors.WithStack(ErrNotFound)
	}

	return users[0], nil
}

func (s *Store) UpdateUser(ctx context.Context, user *User) (*User, error) {
	var updatedUser *User

	err := s.Tx(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf(`
			UPDATE users SET
				nickname = ?,
				email = ?,
				role = ?,
				updated_at = ?
			WHERE id = ? RETURNING %s
		`, userAttributes)

		now := time.Now().UTC().Unix()

		err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{user.Nickname, user.Email, user.Role, now, user.ID},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				updatedUser = &User{}
				return errors.WithStack(s.bindUser(stmt, updatedUser))
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		if updatedUser == nil {
			return errors.WithStack(ErrNotFound)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return updatedUser, nil
}

func (s *Store) UpdateUserRole(ctx context.Context, userID int64, role string) (*User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	user.Role = role

	user, err = s.UpdateUser(ctx, user)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// TouchUser records a new connection of the given user.
func (s *Store) TouchUser(ctx context.Context, userID int64) error {
	return s.Do(ctx, func(conn *sqlite.Conn) error {
		err := sqlitex.Execute(conn, `UPDATE users SET connected_at = ? WHERE id = ?`, &sqlitex.ExecOptions{
			Args: []any{time.Now().UTC().Unix(), userID},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
}

func (s *Store) DeleteUsers(ctx context.Context, userIDs ...int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	return s.Tx(ctx, func(conn *sqlite.Conn) error {
		placeholders := make([]string, len(userIDs))
		args := make([]any, len(userIDs))

		for i, id := range userIDs {
			placeholders[i] = "?"
			args[i] = id
		}

		query := fmt.Sprintf("DELETE FROM users WHERE id IN (%s)", strings.Join(placeholders, ", "))

		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: args,
		}))
	})
}

func (s *Store) GetUsers(ctx context.Context, userIDs ...int64) ([]*User, error) {
	var users []*User

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		var query string
		var args []any

		if len(userIDs) > 0 {
			placeholders := make([]string, len(userIDs))
			args = make([]any, len(userIDs))

			for i, id := range userIDs {
				placeholders[i] = "?"
				args[i] = id
			}

			query = fmt.Sprintf("SELECT %s FROM users WHERE id IN (%s) ORDER BY id",
				userAttributes, strings.Join(placeholders, ", "))
		} else {
			query = fmt.Sprintf("SELECT %s FROM users ORDER BY id", userAttributes)
		}

		err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: args,
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user := &User{}
				if err := s.bindUser(stmt, user); err != nil {
					return errors.WithStack(err)
				}

				users = append(users, user)
				return nil
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	return users, errors.WithStack(err)
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var count int64

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		return errors.WithStack(sqlitex.Execute(conn, "SELECT COUNT(*) FROM users", &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				count = stmt.ColumnInt64(0)
				return nil
			},
		}))
	})

	return count, errors.WithStack(err)
}

var userAttributes = `id, subject, provider, nickname, email, role, created_at, updated_at, connected_at, password`

func (s *Store) bindUser(stmt *sqlite.Stmt, user *User) error {
	user.ID = stmt.ColumnInt64(0)
	user.Subject = stmt.ColumnText(1)
	user.Provider = stmt.ColumnText(2)
	user.Nickname = stmt.ColumnText(3)
	user.Email = stmt.ColumnText(4)
	user.Role = stmt.ColumnText(5)
	user.CreatedAt = unixTime(stmt.ColumnInt64(6))
	user.UpdatedAt = unixTime(stmt.ColumnInt64(7))
	user.ConnectedAt = unixTime(stmt.ColumnInt64(8))

	user.PasswordHash = make([]byte, stmt.ColumnLen(9))
	stmt.ColumnBytes(9, user.PasswordHash)

	return nil
}

func unixTime(timestamp int64) time.Time {
	if timestamp == 0 {
		return time.Time{}
	}

	return time.Unix(timestamp, 0)
}
