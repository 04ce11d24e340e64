package local

import (
	"net/http"

	"github.com/bornholm/hackboard/internal/authn/oauth2"
)

type Options struct {
	Providers         []oauth2.Provider
	ProvidersPrefix   string
	Registration      bool
	PostLoginRedirect string
	SubmitMiddleware  func(http.Handler) http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Providers:         make([]oauth2.Provider, 0),
		ProvidersPrefix:   "/auth",
		Registration:      true,
		PostLoginRedirect: "/",
		SubmitMiddleware: func(h http.Handler) http.Handler {
			return h
		},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithProviders(prefix string, providers ...oauth2.Provider) OptionFunc {
	return func(opts *Options) {
		opts.ProvidersPrefix = prefix
		opts.Providers = providers
	}
}

func WithRegistration(enabled bool) OptionFunc {
	return func(opts *Options) {
		opts.Registration = enabled
	}
}

func WithPostLoginRedirect(path string) OptionFunc {
	return func(opts *Options) {
		opts.PostLoginRedirect = path
	}
}

// WithSubmitMiddleware wraps the credential submission endpoints.
func WithSubmitMiddleware(middleware func(http.Handler) http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.SubmitMiddleware = middleware
	}
}
