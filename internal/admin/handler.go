package admin

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bornholm/hackboard/internal/store"
	"github.com/bornholm/hackboard/internal/ui"
)

type UserStore interface {
	GetUsers(ctx context.Context, userIDs ...int64) ([]*store.User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateUserRole(ctx context.Context, userID int64, role string) (*store.User, error)
	DeleteUsers(ctx context.Context, userIDs ...int64) error
}

type Handler struct {
	prefix    string
	store     UserStore
	newNavbar ui.NavigationBarFactory
	mux       *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(prefix string, store UserStore, newNavbar ui.NavigationBarFactory) *Handler {
	handler := &Handler{
		prefix:    prefix,
		store:     store,
		newNavbar: newNavbar,
		mux:       &http.ServeMux{},
	}

	handler.mux.HandleFunc(fmt.Sprintf("GET %s/{$}", prefix), handler.serveIndex)
	handler.mux.HandleFunc(fmt.Sprintf("POST %s/users/{id}/role", prefix), handler.serveUpdateRole)
	handler.mux.HandleFunc(fmt.Sprintf("POST %s/users/{id}/delete", prefix), handler.serveDeleteUser)

	return handler
}

var _ http.Handler = &Handler{}
