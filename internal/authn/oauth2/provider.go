package oauth2

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/hackboard/pkg/log"
	"github.com/markbates/goth/gothic"
	"github.com/pkg/errors"
)

func (h *Handler) handleProvider(w http.ResponseWriter, r *http.Request) {
	if gothUser, err := gothic.CompleteUserAuth(w, r); err == nil {
		h.completeAuth(w, r, gothUser.UserID, gothUser.Provider, gothUser.Name, gothUser.Email, gothUser.RawData)
		return
	}

	gothic.BeginAuthHandler(w, r)
}

func (h *Handler) handleProviderCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	gothUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		slog.ErrorContext(ctx, "could not complete user auth", log.Error(errors.WithStack(err)))
		http.Redirect(w, r, h.failureRedirect, http.StatusSeeOther)
		return
	}

	slog.DebugContext(ctx, "authenticated user", slog.String("provider", gothUser.Provider), slog.String("userId", gothUser.UserID))

	h.completeAuth(w, r, gothUser.UserID, gothUser.Provider, gothUser.Name, gothUser.Email, gothUser.RawData)
}

func (h *Handler) completeAuth(w http.ResponseWriter, r *http.Request, subject, provider, name, email string, rawData map[string]any) {
	ctx := r.Context()

	user := &User{
		Subject:  subject,
		Provider: provider,

		Nickname: name,
		Email:    email,
	}

	if user.Email == "" {
		slog.ErrorContext(ctx, "could not authenticate user", log.Error(errors.New("user email missing")))
		http.Redirect(w, r, h.failureRedirect, http.StatusSeeOther)
		return
	}

	if user.UserProvider() == "" {
		slog.ErrorContext(ctx, "could not authenticate user", log.Error(errors.New("user provider missing")))
		http.Redirect(w, r, h.failureRedirect, http.StatusSeeOther)
		return
	}

	rawPreferredUsername, exists := rawData["preferred_username"]
	if exists {
		if preferredUsername, ok := rawPreferredUsername.(string); ok {
			user.Nickname = preferredUsername
		}
	}

	if err := h.onAuthenticated(w, r, user); err != nil {
		slog.ErrorContext(ctx, "could not open user session", log.Error(errors.WithStack(err)))
		http.Redirect(w, r, h.failureRedirect, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, h.postLoginRedirect, http.StatusSeeOther)
}

// Logout clears the identity provider session kept by gothic.
func Logout(w http.ResponseWriter, r *http.Request) error {
	if err := gothic.Logout(w, r); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
