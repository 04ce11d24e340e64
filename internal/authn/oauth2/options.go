package oauth2

import "net/http"

type Options struct {
	Providers         []Provider
	Prefix            string
	PostLoginRedirect string
	FailureRedirect   string
	OnAuthenticated   OnAuthenticatedFunc
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Providers:         make([]Provider, 0),
		Prefix:            "",
		PostLoginRedirect: "/",
		FailureRedirect:   "/login",
		OnAuthenticated: func(w http.ResponseWriter, r *http.Request, user *User) error {
			return nil
		},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithProviders(providers ...Provider) OptionFunc {
	return func(opts *Options) {
		opts.Providers = providers
	}
}

func WithPrefix(prefix string) OptionFunc {
	return func(opts *Options) {
		opts.Prefix = prefix
	}
}

func WithPostLoginRedirect(path string) OptionFunc {
	return func(opts *Options) {
		opts.PostLoginRedirect = path
	}
}

func WithFailureRedirect(path string) OptionFunc {
	return func(opts *Options) {
		opts.FailureRedirect = path
	}
}

func WithOnAuthenticated(fn OnAuthenticatedFunc) OptionFunc {
	return func(opts *Options) {
		opts.OnAuthenticated = fn
	}
}
