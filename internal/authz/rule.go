package authz

import (
	"strings"

	"github.com/bornholm/hackboard/internal/authn"
	"github.com/pkg/errors"
)

type Rule interface {
	Exec(env map[string]any) (bool, error)
}

// PathRule restricts every path under prefix to users satisfying all rules.
type PathRule struct {
	prefix string
	rules  []Rule
}

func (r *PathRule) Prefix() string {
	return r.prefix
}

func (r *PathRule) Match(path string) bool {
	prefix := strings.TrimSuffix(r.prefix, "/")
	if prefix == "" {
		return true
	}

	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// Allow reports whether the user satisfies every rule.
func (r *PathRule) Allow(user authn.User, path string) (bool, error) {
	for _, rule := range r.rules {
		allowed, err := rule.Exec(NewEnv(user, path))
		if err != nil {
			return false, errors.WithStack(err)
		}

		if !allowed {
			return false, nil
		}
	}

	return true, nil
}

// NewPathRule without rules only requires an authenticated user.
func NewPathRule(prefix string, rules ...Rule) *PathRule {
	return &PathRule{prefix, rules}
}

func NewEnv(user authn.User, path string) map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name":     user.UserDisplayName(),
			"role":     user.UserRole(),
			"subject":  user.UserSubject(),
			"provider": user.UserProvider(),
		},
		"path": path,
	}
}

// matchPathRule returns the rule with the longest prefix matching path.
func matchPathRule(rules []*PathRule, path string) *PathRule {
	var matched *PathRule

	for _, r := range rules {
		if !r.Match(path) {
			continue
		}

		if matched == nil || len(r.prefix) > len(matched.prefix) {
			matched = r
		}
	}

	return matched
}
