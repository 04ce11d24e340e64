package oauth2

import (
	"context"
	"fmt"
	"net/http"
)

type Provider struct {
	ID    string
	Label string
	Icon  string
}

func (p Provider) URL(prefix string) string {
	return fmt.Sprintf("%s/providers/%s", prefix, p.ID)
}

// OnAuthenticatedFunc is called once the identity provider has confirmed the
// user. It is responsible for opening the application session.
type OnAuthenticatedFunc func(w http.ResponseWriter, r *http.Request, user *User) error

type Handler struct {
	mux               *http.ServeMux
	providers         []Provider
	prefix            string
	postLoginRedirect string
	failureRedirect   string
	onAuthenticated   OnAuthenticatedFunc
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) Providers() []Provider {
	return h.providers
}

func (h *Handler) Prefix() string {
	return h.prefix
}

func NewHandler(funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)
	h := &Handler{
		mux:               http.NewServeMux(),
		providers:         opts.Providers,
		prefix:            opts.Prefix,
		postLoginRedirect: opts.PostLoginRedirect,
		failureRedirect:   opts.FailureRedirect,
		onAuthenticated:   opts.OnAuthenticated,
	}

	h.mux.Handle(fmt.Sprintf("GET %s/providers/{provider}", h.prefix), withContextProvider(http.HandlerFunc(h.handleProvider)))
	h.mux.Handle(fmt.Sprintf("GET %s/providers/{provider}/callback", h.prefix), withContextProvider(http.HandlerFunc(h.handleProviderCallback)))

	return h
}

var _ http.Handler = &Handler{}

func withContextProvider(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		provider := r.PathValue("provider")
		// gothic looks the provider up with the plain "provider" string key
		r = r.WithContext(context.WithValue(r.Context(), "provider", provider))
		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
