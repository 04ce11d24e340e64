package local

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/hackboard/internal/authn"
	"github.com/bornholm/hackboard/internal/ui"
	"github.com/bornholm/hackboard/pkg/log"
	"github.com/pkg/errors"
)

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, http.StatusOK, "", "")
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, "", "Invalid form submission.")
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	if username == "" || password == "" {
		h.renderLogin(w, r, http.StatusBadRequest, username, "Username and password are required.")
		return
	}

	user, err := h.users.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, authn.ErrUnauthenticated) {
			slog.InfoContext(ctx, "invalid credentials", slog.String("username", username))
			h.renderLogin(w, r, http.StatusUnauthorized, username, "Invalid username or password.")
			return
		}

		slog.ErrorContext(ctx, "could not authenticate user", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.signIn(w, r, user); err != nil {
		slog.ErrorContext(ctx, "could not sign in user", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.postLoginRedirect, http.StatusSeeOther)
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, status int, username string, errorMessage string) {
	ctx := r.Context()

	data := LoginTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Sign in",
		},
		NavbarTemplateData: ui.NavbarTemplateData{
			Navbar: h.newNavbar(w, r).View(ctx),
		},
		Username:     username,
		ErrorMessage: errorMessage,
		Registration: h.registration,
	}

	for _, p := range h.providers {
		data.Providers = append(data.Providers, ProviderTemplateData{
			Provider: p,
			URL:      p.URL(h.providersPrefix),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := templates.ExecuteTemplate(w, "login", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
	}
}
