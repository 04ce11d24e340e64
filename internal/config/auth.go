package config

import "github.com/goccy/go-yaml"

type Auth struct {
	Providers    AuthProviders    `yaml:"providers"`
	Admins       []User           `yaml:"admins"`
	Access       []AccessRule     `yaml:"access"`
	RateLimit    RateLimit        `yaml:"rateLimit"`
	Registration InterpolatedBool `yaml:"registration"`
}

type User struct {
	Email    InterpolatedString `yaml:"email"`
	Provider InterpolatedString `yaml:"provider"`
}

type AccessRule struct {
	Path  InterpolatedString       `yaml:"path"`
	Rules *InterpolatedStringSlice `yaml:"rules"`
}

type RateLimit struct {
	Rate  InterpolatedFloat `yaml:"rate"`
	Burst InterpolatedInt   `yaml:"burst"`
}

type AuthProviders struct {
	Google OAuth2Provider `yaml:"google"`
	Github OAuth2Provider `yaml:"github"`
	Gitea  GiteaProvider  `yaml:"gitea"`
	OIDC   OIDCProvider   `yaml:"oidc"`
}

type OAuth2Provider struct {
	Key    InterpolatedString      `yaml:"key"`
	Secret InterpolatedString      `yaml:"secret"`
	Scopes InterpolatedStringSlice `yaml:"scopes"`
}

type OIDCProvider struct {
	OAuth2Provider `yaml:",inline"`
	DiscoveryURL   InterpolatedString `yaml:"discoveryUrl"`
	Icon           InterpolatedString `yaml:"icon"`
	Label          InterpolatedString `yaml:"label"`
}

type GiteaProvider struct {
	OAuth2Provider `yaml:",inline"`
	TokenURL       InterpolatedString `yaml:"tokenUrl"`
	AuthURL        InterpolatedString `yaml:"authUrl"`
	ProfileURL     InterpolatedString `yaml:"profileUrl"`
	Label          InterpolatedString `yaml:"label"`
}

func NewDefaultAuthConfig() Auth {
	return Auth{
		Providers: AuthProviders{},
		Admins: []User{
			{
				Email:    "${HACKBOARD_ADMIN_EMAIL:-}",
				Provider: "local",
			},
		},
		Access: []AccessRule{
			{
				Path: "/admin",
				Rules: &InterpolatedStringSlice{
					`user.role == "admin"`,
				},
			},
			{
				Path: "/debug",
				Rules: &InterpolatedStringSlice{
					`user.role == "admin"`,
				},
			},
		},
		RateLimit: RateLimit{
			Rate:  1,
			Burst: 5,
		},
		Registration: true,
	}
}

func NewAuthConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                    []*yaml.Comment{yaml.HeadComment(" Auth configuration")},
		".providers":          []*yaml.Comment{yaml.HeadComment(" OAuth2 identity providers, enabled when key and secret are set")},
		".admins":             []*yaml.Comment{yaml.HeadComment(" List of users promoted to the admin role on sign in")},
		".admins[0].email":    []*yaml.Comment{yaml.HeadComment(" Admin's email address")},
		".admins[0].provider": []*yaml.Comment{yaml.HeadComment(" Admin's identity provider ('local' or see 'providers' section)")},
		".access":             []*yaml.Comment{yaml.HeadComment(" Path access rules, all rules of the longest matching path must pass", " See https://expr-lang.org/docs/language-definition")},
		".rateLimit":          []*yaml.Comment{yaml.HeadComment(" Rate limit applied to credential submissions, per client address")},
		".registration":       []*yaml.Comment{yaml.HeadComment(" Allow visitors to create a local account")},
	}
}
