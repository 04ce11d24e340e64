package setup

import (
	"context"
	"net/http"
	"slices"

	"github.com/bornholm/hackboard/internal/authn"
	"github.com/bornholm/hackboard/internal/authn/oauth2"
	"github.com/bornholm/hackboard/internal/config"
	"github.com/bornholm/hackboard/internal/router"
	"github.com/bornholm/hackboard/internal/ui"
	"github.com/pkg/errors"
)

var NewNavbarFactoryFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (ui.NavigationBarFactory, error) {
	sessions, err := NewSessionsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var rawOptions any
	if conf.UI.Avatar.Options != nil {
		rawOptions = conf.UI.Avatar.Options.Data
	}

	avatars, err := ui.NewAvatarURLBuilder(string(conf.UI.Avatar.URLTemplate), rawOptions)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defaults := []ui.NavigationBarOptionFunc{
		ui.WithAvatars(avatars),
	}

	if brand := string(conf.UI.Brand); brand != "" {
		defaults = append(defaults, ui.WithBrand(brand))
	}

	return func(w http.ResponseWriter, r *http.Request) *ui.NavigationBar {
		query := r.URL.Query()

		session := authn.NewRequestSession(sessions, w, r, oauth2.Logout)

		funcs := append(
			slices.Clone(defaults),
			ui.WithMenuOpen(query.Get(ui.QueryMenu) == ui.QueryValueOpen),
			ui.WithAccountMenuOpen(query.Get(ui.QueryAccountMenu) == ui.QueryValueOpen),
		)

		return ui.NewNavigationBar(session, router.New(w, r), funcs...)
	}, nil
})
