package local

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/bornholm/hackboard/internal/store"
	"github.com/bornholm/hackboard/internal/ui"
	"github.com/bornholm/hackboard/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	// bcrypt rejects longer passwords
	maxPasswordLength = 72
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]{3,32}$`)

func (h *Handler) getRegisterPage(w http.ResponseWriter, r *http.Request) {
	h.renderRegister(w, r, http.StatusOK, RegisterTemplateData{})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.renderRegister(w, r, http.StatusBadRequest, RegisterTemplateData{ErrorMessage: "Invalid form submission."})
		return
	}

	data := RegisterTemplateData{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
	}

	password := r.PostFormValue("password")

	if message := validateRegistration(data.Username, data.Email, password); message != "" {
		data.ErrorMessage = message
		h.renderRegister(w, r, http.StatusBadRequest, data)
		return
	}

	user, err := h.users.CreateLocalUser(ctx, data.Username, data.Email, password)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			data.ErrorMessage = "This username is already taken."
			h.renderRegister(w, r, http.StatusConflict, data)
			return
		}

		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			data.ErrorMessage = "Password must be at most 72 bytes long."
			h.renderRegister(w, r, http.StatusBadRequest, data)
			return
		}

		slog.ErrorContext(ctx, "could not create user", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	slog.InfoContext(ctx, "user registered", slog.String("username", user.Subject), slog.String("role", user.Role))

	if err := h.signIn(w, r, user); err != nil {
		slog.ErrorContext(ctx, "could not sign in user", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.postLoginRedirect, http.StatusSeeOther)
}

func validateRegistration(username, email, password string) string {
	switch {
	case !usernamePattern.MatchString(username):
		return "Username must be 3 to 32 letters, digits, dots, dashes or underscores."
	case !strings.Contains(email, "@"):
		return "A valid email address is required."
	case len(password) < minPasswordLength:
		return "Password must be at least 8 characters long."
	case len(password) > maxPasswordLength:
		return "Password must be at most 72 bytes long."
	default:
		return ""
	}
}

func (h *Handler) renderRegister(w http.ResponseWriter, r *http.Request, status int, data RegisterTemplateData) {
	ctx := r.Context()

	data.HeadTemplateData = ui.HeadTemplateData{
		PageTitle: "Sign up",
	}

	data.NavbarTemplateData = ui.NavbarTemplateData{
		Navbar: h.newNavbar(w, r).View(ctx),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := templates.ExecuteTemplate(w, "register", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
	}
}
