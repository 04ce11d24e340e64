package log

import (
	"log/slog"
	"net/url"
	"strings"
)

const scrubbed = "xxx"

var secretParams = []string{"secret", "token", "password", "key"}

// ScrubbedURL masks credentials carried by the URL user info or by query
// parameters with a secret looking name.
func ScrubbedURL(name string, rawURL string) slog.Attr {
	u, err := url.Parse(rawURL)
	if err != nil {
		return slog.String(name, rawURL)
	}

	if u.User != nil {
		u.User = url.UserPassword(scrubbed, scrubbed)
	}

	if u.RawQuery != "" {
		query := u.Query()
		for param := range query {
			if isSecretParam(param) {
				query.Set(param, scrubbed)
			}
		}

		u.RawQuery = query.Encode()
	}

	return slog.String(name, u.String())
}

func isSecretParam(param string) bool {
	param = strings.ToLower(param)

	for _, s := range secretParams {
		if strings.Contains(param, s) {
			return true
		}
	}

	return false
}
