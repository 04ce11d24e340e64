package ui

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/hackboard/pkg/log"
	"github.com/pkg/errors"
)

// NavigationBarFactory builds the navigation bar bound to a request.
type NavigationBarFactory func(w http.ResponseWriter, r *http.Request) *NavigationBar

type Handler struct {
	mux       *http.ServeMux
	newNavbar NavigationBarFactory
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kind := NavigationKind(r.PathValue("kind"))

	navbar := h.newNavbar(w, r)

	if err := navbar.SelectMobileItem(kind); err != nil {
		if errors.Is(err, ErrUnknownNavigationItem) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not select navigation item", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	h.newNavbar(w, r).SignOut(r.Context())
}

func NewHandler(newNavbar NavigationBarFactory) *Handler {
	h := &Handler{
		mux:       http.NewServeMux(),
		newNavbar: newNavbar,
	}

	h.mux.HandleFunc("GET "+PathNavbarSelect+"{kind}", h.handleSelect)
	h.mux.HandleFunc("POST "+PathLogout, h.handleSignOut)

	return h
}

var _ http.Handler = &Handler{}
