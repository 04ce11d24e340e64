package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/hackboard/internal/authn"
	"github.com/bornholm/hackboard/internal/authn/oauth2"
	"github.com/bornholm/hackboard/internal/config"
	"github.com/bornholm/hackboard/internal/store"
	"github.com/bornholm/hackboard/pkg/log"
	"github.com/pkg/errors"
)

// SignIn opens application sessions for users confirmed by either the local
// or an oauth2 identity provider.
type SignIn struct {
	store    *store.Store
	sessions *authn.Sessions
	admins   []config.User
}

func (s *SignIn) Local(w http.ResponseWriter, r *http.Request, user *store.User) error {
	return errors.WithStack(s.open(w, r, user))
}

func (s *SignIn) OAuth2(w http.ResponseWriter, r *http.Request, user *oauth2.User) error {
	ctx := r.Context()

	storeUser, err := s.store.FindOrCreateUser(ctx, user.UserSubject(), user.UserProvider())
	if err != nil {
		return errors.WithStack(err)
	}

	if storeUser.Email != user.Email || storeUser.Nickname != user.Nickname {
		storeUser.Email = user.Email
		storeUser.Nickname = user.Nickname

		storeUser, err = s.store.UpdateUser(ctx, storeUser)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	return errors.WithStack(s.open(w, r, storeUser))
}

func (s *SignIn) open(w http.ResponseWriter, r *http.Request, user *store.User) error {
	ctx := r.Context()

	if !user.IsAdmin() && s.isConfiguredAdmin(user) {
		promoted, err := s.store.UpdateUserRole(ctx, user.ID, store.RoleAdmin)
		if err != nil {
			return errors.WithStack(err)
		}

		slog.InfoContext(ctx, "user promoted to admin", slog.String("email", promoted.Email), slog.String("provider", promoted.Provider))
	}

	if err := s.store.TouchUser(ctx, user.ID); err != nil {
		slog.WarnContext(ctx, "could not record user connection", log.Error(errors.WithStack(err)))
	}

	if err := s.sessions.SaveUserID(w, r, user.ID); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *SignIn) isConfiguredAdmin(user *store.User) bool {
	if user.Email == "" {
		return false
	}

	for _, a := range s.admins {
		if string(a.Email) == user.Email && string(a.Provider) == user.Provider {
			return true
		}
	}

	return false
}

var NewSignInFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*SignIn, error) {
	store, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessions, err := NewSessionsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &SignIn{
		store:    store,
		sessions: sessions,
		admins:   conf.Auth.Admins,
	}, nil
})
