package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/hackboard/internal/admin"
	"github.com/bornholm/hackboard/internal/authn"
	"github.com/bornholm/hackboard/internal/authn/local"
	"github.com/bornholm/hackboard/internal/authz"
	"github.com/bornholm/hackboard/internal/config"
	"github.com/bornholm/hackboard/internal/pprof"
	"github.com/bornholm/hackboard/internal/ratelimit"
	"github.com/bornholm/hackboard/internal/site"
	"github.com/bornholm/hackboard/internal/ui"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	sloghttp "github.com/samber/slog-http"
)

const (
	adminPrefix = "/admin"
	pprofPrefix = "/debug/pprof"
)

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	store, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessions, err := NewSessionsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	signIn, err := NewSignInFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	newNavbar, err := NewNavbarFactoryFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	oauth2Handler, err := NewOAuth2HandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	accessRules, err := NewAccessRulesFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rateLimiter := ratelimit.New(rate.Limit(conf.Auth.RateLimit.Rate), int(conf.Auth.RateLimit.Burst))

	localHandler := local.NewHandler(
		store, signIn.Local, newNavbar,
		local.WithProviders(oauth2Handler.Prefix(), oauth2Handler.Providers()...),
		local.WithRegistration(bool(conf.Auth.Registration)),
		local.WithSubmitMiddleware(rateLimiter.Middleware(ratelimit.ClientAddress)),
	)

	mux.Handle(oauth2Handler.Prefix()+"/", oauth2Handler)
	mux.Handle(ui.PathLogin, localHandler)
	mux.Handle(ui.PathRegister, localHandler)

	uiHandler := ui.NewHandler(newNavbar)
	mux.Handle(ui.PathLogout, uiHandler)
	mux.Handle(ui.PathNavbarSelect, uiHandler)

	mux.Handle(adminPrefix+"/", admin.NewHandler(adminPrefix, store, newNavbar))

	if conf.HTTP.Pprof {
		slog.WarnContext(ctx, "profiling endpoints enabled", slog.String("prefix", pprofPrefix))
		mux.Handle(pprofPrefix+"/", pprof.NewHandler(pprofPrefix))
	}

	mux.Handle("/", site.NewHandler(newNavbar))

	auth := authn.Chain(
		authn.WithAuthenticators(
			sessions.Authenticator(func(ctx context.Context, userID int64) (authn.User, error) {
				user, err := store.GetUser(ctx, userID)
				if err != nil {
					return nil, errors.WithStack(err)
				}

				return user, nil
			}),
		),
		authn.WithAllowAnonymous(true),
	)

	access := authz.Middleware(ui.PathLogin, accessRules...)

	slogMiddleware := sloghttp.NewWithConfig(slog.Default(), sloghttp.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	})

	var handler http.Handler = mux
	handler = access(handler)
	handler = auth(handler)
	handler = withRequestID(handler)
	handler = slogMiddleware(handler)
	handler = sloghttp.Recovery(handler)

	return handler, nil
}
