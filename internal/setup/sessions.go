package setup

import (
	"context"
	"crypto/rand"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/hackboard/internal/authn"
	"github.com/bornholm/hackboard/internal/config"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth/gothic"
	"github.com/pkg/errors"
)

const sessionName = "hackboard_session"

var NewSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*sessions.CookieStore, error) {
	keyPairs := make([][]byte, 0)
	if len(conf.HTTP.Session.Keys) == 0 {
		slog.WarnContext(ctx, "no session key configured, sessions will not survive a restart")

		key, err := getRandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		keyPairs = append(keyPairs, key)
	} else {
		for _, k := range conf.HTTP.Session.Keys {
			keyPairs = append(keyPairs, []byte(k))
		}
	}

	sessionStore := sessions.NewCookieStore(keyPairs...)

	maxAge := 7 * 24 * time.Hour
	if conf.HTTP.Session.Cookie.MaxAge != nil {
		maxAge = time.Duration(*conf.HTTP.Session.Cookie.MaxAge)
	}

	sessionStore.MaxAge(int(maxAge.Seconds()))
	sessionStore.Options.Path = string(conf.HTTP.Session.Cookie.Path)
	sessionStore.Options.HttpOnly = bool(conf.HTTP.Session.Cookie.HTTPOnly)
	sessionStore.Options.Secure = bool(conf.HTTP.Session.Cookie.Secure)
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	gothic.Store = sessionStore

	return sessionStore, nil
})

var NewSessionsFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*authn.Sessions, error) {
	sessionStore, err := NewSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return authn.NewSessions(sessionStore, sessionName), nil
})

func getRandomBytes(n int) ([]byte, error) {
	data := make([]byte, n)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != n {
		return nil, errors.Errorf("could not read %d bytes", n)
	}

	return data, nil
}
