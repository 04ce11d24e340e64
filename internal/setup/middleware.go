package setup

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/hackboard/pkg/log"
	"github.com/rs/xid"

	sloghttp "github.com/samber/slog-http"
)

const headerRequestID = "X-Request-Id"

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequestID)
		if _, err := xid.FromString(requestID); err != nil {
			requestID = xid.New().String()
		}

		w.Header().Set(headerRequestID, requestID)

		attr := slog.String("requestId", requestID)
		sloghttp.AddCustomAttributes(r, attr)

		ctx := log.WithAttrs(r.Context(), attr)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
