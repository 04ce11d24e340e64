package expr

import (
	"github.com/expr-lang/expr"
	"github.com/pkg/errors"
)

const RoleAdmin = "admin"

// WithRuleAPI exposes helper functions to rule scripts:
//
//	hasRole(user, "admin")
func WithRuleAPI() expr.Option {
	return expr.Function(
		"hasRole",
		func(params ...any) (any, error) {
			user, ok := params[0].(map[string]any)
			if !ok {
				return false, errors.Errorf("unexpected user type '%T'", params[0])
			}

			role, ok := params[1].(string)
			if !ok {
				return false, errors.Errorf("unexpected role type '%T'", params[1])
			}

			return user["role"] == role, nil
		},
		new(func(map[string]any, string) bool),
	)
}
