package pprof

import (
	"expvar"
	"net/http"
	"net/http/pprof"
	"strings"
)

// Handler serves the runtime profiling endpoints under a path prefix.
type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(prefix string) *Handler {
	prefix = strings.TrimSuffix(prefix, "/")
	mux := http.NewServeMux()

	routes := map[string]http.Handler{
		"/":        http.HandlerFunc(pprof.Index),
		"/cmdline": http.HandlerFunc(pprof.Cmdline),
		"/profile": http.HandlerFunc(pprof.Profile),
		"/symbol":  http.HandlerFunc(pprof.Symbol),
		"/trace":   http.HandlerFunc(pprof.Trace),
		"/vars":    expvar.Handler(),
	}

	for path, handler := range routes {
		mux.Handle(prefix+path, handler)
	}

	mux.HandleFunc(prefix+"/{name}", func(w http.ResponseWriter, r *http.Request) {
		pprof.Handler(r.PathValue("name")).ServeHTTP(w, r)
	})

	return &Handler{mux}
}

var _ http.Handler = &Handler{}
