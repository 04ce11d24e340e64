package site

import (
	"net/http"

	"github.com/bornholm/hackboard/internal/ui"
)

type Handler struct {
	mux       *http.ServeMux
	newNavbar ui.NavigationBarFactory
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// ProtectedPaths lists the pages reserved to authenticated users.
func ProtectedPaths() []string {
	items := ui.NavigationItems()

	paths := make([]string, 0, len(items)+1)
	for _, item := range items {
		paths = append(paths, item.Path)
	}

	return append(paths, ui.PathProfile)
}

func NewHandler(newNavbar ui.NavigationBarFactory) *Handler {
	h := &Handler{
		mux:       http.NewServeMux(),
		newNavbar: newNavbar,
	}

	h.mux.HandleFunc("GET /{$}", h.getHomePage)

	for _, item := range ui.NavigationItems() {
		h.mux.HandleFunc("GET "+item.Path, h.sectionPage(item))
	}

	h.mux.HandleFunc("GET "+ui.PathProfile, h.getProfilePage)

	return h
}

var _ http.Handler = &Handler{}
