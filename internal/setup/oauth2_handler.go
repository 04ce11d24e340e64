package setup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bornholm/hackboard/internal/authn/oauth2"
	"github.com/bornholm/hackboard/internal/config"
	"github.com/bornholm/hackboard/pkg/log"
	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/openidConnect"
	"github.com/pkg/errors"

	giteaprovider "github.com/markbates/goth/providers/gitea"
	githubprovider "github.com/markbates/goth/providers/github"
	googleprovider "github.com/markbates/goth/providers/google"
)

const oauth2Prefix = "/auth"

var NewOAuth2HandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*oauth2.Handler, error) {
	// gothic keeps its state in the application cookie store
	if _, err := NewSessionStoreFromConfig(ctx, conf); err != nil {
		return nil, errors.WithStack(err)
	}

	signIn, err := NewSignInFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	gothProviders := make([]goth.Provider, 0)
	providers := make([]oauth2.Provider, 0)

	register := func(provider goth.Provider, label, icon string) {
		gothProviders = append(gothProviders, provider)
		providers = append(providers, oauth2.Provider{ID: provider.Name(), Label: label, Icon: icon})
	}

	callbackURL := func(provider string) string {
		return fmt.Sprintf("%s%s/providers/%s/callback", conf.HTTP.BaseURL, oauth2Prefix, provider)
	}

	enabled := func(p config.OAuth2Provider) bool {
		return p.Key != "" && p.Secret != ""
	}

	if google := conf.Auth.Providers.Google; enabled(google) {
		register(googleprovider.New(string(google.Key), string(google.Secret), callbackURL("google"), google.Scopes...), "Google", "fa-google")
	}

	if github := conf.Auth.Providers.Github; enabled(github) {
		register(githubprovider.New(string(github.Key), string(github.Secret), callbackURL("github"), github.Scopes...), "Github", "fa-github")
	}

	if gitea := conf.Auth.Providers.Gitea; enabled(gitea.OAuth2Provider) {
		register(
			giteaprovider.NewCustomisedURL(
				string(gitea.Key), string(gitea.Secret), callbackURL("gitea"),
				string(gitea.AuthURL), string(gitea.TokenURL), string(gitea.ProfileURL),
				gitea.Scopes...,
			),
			string(gitea.Label), "fa-git-alt",
		)
	}

	if oidc := conf.Auth.Providers.OIDC; enabled(oidc.OAuth2Provider) {
		slog.DebugContext(ctx, "configuring oidc provider", log.ScrubbedURL("discoveryUrl", string(oidc.DiscoveryURL)))

		oidcProvider, err := openidConnect.New(string(oidc.Key), string(oidc.Secret), callbackURL("openid-connect"), string(oidc.DiscoveryURL), oidc.Scopes...)
		if err != nil {
			return nil, errors.Wrap(err, "could not configure oidc provider")
		}

		register(oidcProvider, string(oidc.Label), string(oidc.Icon))
	}

	goth.UseProviders(gothProviders...)

	for _, p := range providers {
		slog.InfoContext(ctx, "oauth2 provider enabled", slog.String("provider", p.ID))
	}

	return oauth2.NewHandler(
		oauth2.WithProviders(providers...),
		oauth2.WithPrefix(oauth2Prefix),
		oauth2.WithOnAuthenticated(signIn.OAuth2),
	), nil
})
