package setup

import (
	"context"

	"github.com/bornholm/hackboard/internal/authz"
	"github.com/bornholm/hackboard/internal/authz/expr"
	"github.com/bornholm/hackboard/internal/config"
	"github.com/bornholm/hackboard/internal/site"
	"github.com/pkg/errors"
)

var NewAccessRulesFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) ([]*authz.PathRule, error) {
	pathRules := make([]*authz.PathRule, 0, len(conf.Auth.Access))

	// Configured rules come first and win over built-in ones on equal prefixes
	for _, access := range conf.Auth.Access {
		rules := make([]authz.Rule, 0)

		if access.Rules != nil {
			for _, script := range *access.Rules {
				rule := expr.NewRule(script)
				if err := rule.Compile(); err != nil {
					return nil, errors.Wrapf(err, "invalid access rule '%s' for path '%s'", script, access.Path)
				}

				rules = append(rules, rule)
			}
		}

		pathRules = append(pathRules, authz.NewPathRule(string(access.Path), rules...))
	}

	for _, path := range site.ProtectedPaths() {
		pathRules = append(pathRules, authz.NewPathRule(path))
	}

	return pathRules, nil
})
