package admin

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/bornholm/hackboard/internal/authn"
	"github.com/bornholm/hackboard/internal/store"
	"github.com/bornholm/hackboard/internal/ui"
	"github.com/bornholm/hackboard/pkg/log"
	"github.com/pkg/errors"
)

const (
	querySuccess = "success"
	queryError   = "error"
)

var messages = map[string]string{
	"role-updated":  "Role updated.",
	"user-deleted":  "User deleted.",
	"invalid-role":  "Unknown role.",
	"self-demotion": "You cannot remove your own admin role.",
	"self-deletion": "You cannot delete your own account.",
	"unknown-user":  "Unknown user.",
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.store.GetUsers(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve users", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	count, err := h.store.CountUsers(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not count users", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	currentUserID := h.currentUserID(r)

	data := IndexTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Admin Panel",
		},
		NavbarTemplateData: ui.NavbarTemplateData{
			Navbar: h.newNavbar(w, r).View(ctx),
		},
		Prefix:         h.prefix,
		UserCount:      int(count),
		Users:          make([]UserTemplateData, 0, len(users)),
		Roles:          roles,
		SuccessMessage: messages[r.URL.Query().Get(querySuccess)],
		ErrorMessage:   messages[r.URL.Query().Get(queryError)],
	}

	for _, u := range users {
		userData := NewUserTemplateData(u)
		userData.IsSelf = u.ID == currentUserID

		if u.IsAdmin() {
			data.AdminCount++
		}

		data.Users = append(data.Users, userData)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.ExecuteTemplate(w, "admin", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) serveUpdateRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	role := r.PostFormValue("role")
	if !slices.Contains(roles, role) {
		h.redirect(w, r, queryError, "invalid-role")
		return
	}

	if userID == h.currentUserID(r) && role != store.RoleAdmin {
		h.redirect(w, r, queryError, "self-demotion")
		return
	}

	if _, err := h.store.UpdateUserRole(ctx, userID, role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.redirect(w, r, queryError, "unknown-user")
			return
		}

		slog.ErrorContext(ctx, "could not update user role", log.Error(errors.WithStack(err)), slog.Int64("userId", userID))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	slog.InfoContext(ctx, "user role updated", slog.Int64("userId", userID), slog.String("role", role))

	h.redirect(w, r, querySuccess, "role-updated")
}

func (h *Handler) serveDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if userID == h.currentUserID(r) {
		h.redirect(w, r, queryError, "self-deletion")
		return
	}

	if err := h.store.DeleteUsers(ctx, userID); err != nil {
		slog.ErrorContext(ctx, "could not delete user", log.Error(errors.WithStack(err)), slog.Int64("userId", userID))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	slog.InfoContext(ctx, "user deleted", slog.Int64("userId", userID))

	h.redirect(w, r, querySuccess, "user-deleted")
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, key, message string) {
	http.Redirect(w, r, h.prefix+"/?"+key+"="+message, http.StatusSeeOther)
}

func (h *Handler) currentUserID(r *http.Request) int64 {
	user, err := authn.ContextUser(r.Context())
	if err != nil {
		return 0
	}

	storeUser, ok := user.(*store.User)
	if !ok {
		return 0
	}

	return storeUser.ID
}
