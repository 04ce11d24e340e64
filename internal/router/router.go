package router

import (
	"net/http"

	"github.com/bornholm/hackboard/internal/ui"
)

// Request navigates by answering the current request with a redirect.
type Request struct {
	w http.ResponseWriter
	r *http.Request
}

// CurrentPath implements ui.Router.
func (rr *Request) CurrentPath() string {
	return rr.r.URL.Path
}

// Navigate implements ui.Router.
func (rr *Request) Navigate(path string) {
	if rr.r.Header.Get("HX-Request") == "true" {
		rr.w.Header().Set("HX-Redirect", path)
		rr.w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(rr.w, rr.r, path, http.StatusSeeOther)
}

func New(w http.ResponseWriter, r *http.Request) *Request {
	return &Request{w: w, r: r}
}

var _ ui.Router = &Request{}
