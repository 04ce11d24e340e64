package site

import (
	"net/http"

	"github.com/bornholm/hackboard/internal/authn"
	"github.com/bornholm/hackboard/internal/store"
	"github.com/bornholm/hackboard/internal/ui"
)

var descriptions = map[ui.NavigationKind]string{
	ui.KindTeams:      "Find teammates and manage the teams you belong to.",
	ui.KindHackathons: "Browse upcoming and past hackathons.",
	ui.KindBlogs:      "Read and write posts from the community.",
	ui.KindInbox:      "Messages and invitations sent to you.",
}

func (h *Handler) getHomePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := HomeTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Home",
		},
		NavbarTemplateData: ui.NavbarTemplateData{
			Navbar: h.newNavbar(w, r).View(ctx),
		},
	}

	if data.Navbar.Authenticated {
		for _, item := range ui.NavigationItems() {
			data.Sections = append(data.Sections, newSectionTemplateData(item))
		}
	}

	render(w, r, "home", data)
}

func (h *Handler) sectionPage(item ui.NavigationItem) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := newSectionTemplateData(item)
		data.HeadTemplateData = ui.HeadTemplateData{PageTitle: item.Label}
		data.NavbarTemplateData = ui.NavbarTemplateData{
			Navbar: h.newNavbar(w, r).View(r.Context()),
		}

		render(w, r, "section", data)
	}
}

func (h *Handler) getProfilePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := authn.ContextUser(ctx)
	if err != nil {
		http.Redirect(w, r, ui.PathLogin, http.StatusSeeOther)
		return
	}

	navbar := h.newNavbar(w, r).View(ctx)

	data := ProfileTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Profile",
		},
		NavbarTemplateData: ui.NavbarTemplateData{
			Navbar: navbar,
		},
		Name:     user.UserDisplayName(),
		Role:     user.UserRole(),
		Provider: user.UserProvider(),
	}

	if navbar.User != nil {
		data.AvatarURL = navbar.User.AvatarURL
	}

	if storeUser, ok := user.(*store.User); ok {
		data.Email = storeUser.Email
		data.CreatedAt = storeUser.CreatedAt
		data.ConnectedAt = storeUser.ConnectedAt
	}

	render(w, r, "profile", data)
}

func newSectionTemplateData(item ui.NavigationItem) SectionTemplateData {
	return SectionTemplateData{
		Kind:        item.Kind,
		Label:       item.Label,
		Path:        item.Path,
		Icon:        ui.Icon(item.Kind),
		Description: descriptions[item.Kind],
	}
}
