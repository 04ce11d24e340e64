package local

import (
	"context"
	"net/http"

	"github.com/bornholm/hackboard/internal/authn/oauth2"
	"github.com/bornholm/hackboard/internal/store"
	"github.com/bornholm/hackboard/internal/ui"
)

type UserStore interface {
	Authenticate(ctx context.Context, username, password string) (*store.User, error)
	CreateLocalUser(ctx context.Context, username, email, password string) (*store.User, error)
}

// SignInFunc opens the application session of an authenticated user.
type SignInFunc func(w http.ResponseWriter, r *http.Request, user *store.User) error

type Handler struct {
	mux               *http.ServeMux
	users             UserStore
	signIn            SignInFunc
	newNavbar         ui.NavigationBarFactory
	providers         []oauth2.Provider
	providersPrefix   string
	registration      bool
	postLoginRedirect string
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(users UserStore, signIn SignInFunc, newNavbar ui.NavigationBarFactory, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:               http.NewServeMux(),
		users:             users,
		signIn:            signIn,
		newNavbar:         newNavbar,
		providers:         opts.Providers,
		providersPrefix:   opts.ProvidersPrefix,
		registration:      opts.Registration,
		postLoginRedirect: opts.PostLoginRedirect,
	}

	h.mux.HandleFunc("GET "+ui.PathLogin, h.getLoginPage)
	h.mux.Handle("POST "+ui.PathLogin, opts.SubmitMiddleware(http.HandlerFunc(h.handleLogin)))

	if h.registration {
		h.mux.HandleFunc("GET "+ui.PathRegister, h.getRegisterPage)
		h.mux.Handle("POST "+ui.PathRegister, opts.SubmitMiddleware(http.HandlerFunc(h.handleRegister)))
	}

	return h
}

var _ http.Handler = &Handler{}
