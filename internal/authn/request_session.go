package authn

import (
	"context"
	"net/http"

	"github.com/bornholm/hackboard/internal/ui"
	"github.com/pkg/errors"
)

type SignOutHook func(w http.ResponseWriter, r *http.Request) error

// RequestSession exposes the session of one HTTP request to the navigation
// bar.
type RequestSession struct {
	sessions *Sessions
	w        http.ResponseWriter
	r        *http.Request
	hooks    []SignOutHook
}

// CurrentUser implements ui.SessionProvider.
func (s *RequestSession) CurrentUser(ctx context.Context) (*ui.User, bool) {
	user, err := ContextUser(ctx)
	if err != nil {
		return nil, false
	}

	return &ui.User{
		Name: user.UserDisplayName(),
		Role: user.UserRole(),
	}, true
}

// IsAuthenticated implements ui.SessionProvider.
func (s *RequestSession) IsAuthenticated(ctx context.Context) bool {
	_, err := ContextUser(ctx)
	return err == nil
}

// SignOut implements ui.SessionProvider.
func (s *RequestSession) SignOut(ctx context.Context) error {
	if err := s.sessions.Clear(s.w, s.r); err != nil {
		return errors.WithStack(err)
	}

	for _, hook := range s.hooks {
		if err := hook(s.w, s.r); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

func NewRequestSession(sessions *Sessions, w http.ResponseWriter, r *http.Request, hooks ...SignOutHook) *RequestSession {
	return &RequestSession{
		sessions: sessions,
		w:        w,
		r:        r,
		hooks:    hooks,
	}
}

var _ ui.SessionProvider = &RequestSession{}
