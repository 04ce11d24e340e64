package authn

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/hackboard/pkg/log"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var ErrSessionNotFound = errors.New("session not found")

const sessionKeyUserID = "userId"

// Sessions stores the identifier of the authenticated user in a named
// gorilla session.
type Sessions struct {
	store sessions.Store
	name  string
}

func (s *Sessions) SaveUserID(w http.ResponseWriter, r *http.Request, userID int64) error {
	sess, err := s.get(r)
	if err != nil {
		return errors.WithStack(err)
	}

	sess.Values[sessionKeyUserID] = userID

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Sessions) UserID(r *http.Request) (int64, error) {
	sess, err := s.get(r)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	userID, ok := sess.Values[sessionKeyUserID].(int64)
	if !ok {
		return 0, errors.WithStack(ErrSessionNotFound)
	}

	return userID, nil
}

func (s *Sessions) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, err := s.get(r)
	if err != nil {
		return errors.WithStack(err)
	}

	sess.Values = map[any]any{}
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Sessions) get(r *http.Request) (*sessions.Session, error) {
	sess, err := s.store.Get(r, s.name)
	if err != nil {
		// An undecodable cookie still yields a fresh session
		if sess != nil {
			slog.DebugContext(r.Context(), "discarding invalid session", log.Error(errors.WithStack(err)))
			return sess, nil
		}

		return nil, errors.WithStack(err)
	}

	return sess, nil
}

type UserFinder func(ctx context.Context, userID int64) (User, error)

// Authenticator resolves the session user through find. Requests without a
// valid session are left unauthenticated.
func (s *Sessions) Authenticator(find UserFinder) Authenticator {
	return AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		ctx := r.Context()

		userID, err := s.UserID(r)
		if err != nil {
			return nil, nil
		}

		user, err := find(ctx, userID)
		if err != nil {
			slog.WarnContext(ctx, "could not retrieve session user", log.Error(errors.WithStack(err)), slog.Int64("userId", userID))
			return nil, nil
		}

		return user, nil
	})
}

func NewSessions(store sessions.Store, name string) *Sessions {
	return &Sessions{
		store: store,
		name:  name,
	}
}
