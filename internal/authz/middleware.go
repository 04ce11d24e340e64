package authz

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/hackboard/internal/authn"
	"github.com/bornholm/hackboard/pkg/log"
	"github.com/pkg/errors"
)

// Middleware enforces path rules. Anonymous visitors of a restricted path are
// sent to loginPath.
func Middleware(loginPath string, rules ...*PathRule) func(h http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			rule := matchPathRule(rules, r.URL.Path)
			if rule == nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := authn.ContextUser(ctx)
			if err != nil {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			allowed, err := rule.Allow(user, r.URL.Path)
			if err != nil {
				slog.ErrorContext(ctx, "could not evaluate access rule", log.Error(errors.WithStack(err)), slog.String("prefix", rule.Prefix()))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !allowed {
				slog.WarnContext(ctx, "access denied", slog.String("path", r.URL.Path))
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		}
		return fn
	}
}
