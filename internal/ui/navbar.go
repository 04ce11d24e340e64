package ui

import (
	"context"
	"html/template"
	"io"
	"log/slog"
	"net/url"

	"github.com/bornholm/hackboard/pkg/log"
	"github.com/pkg/errors"
)

// User is the identity summary displayed by the navigation bar.
type User struct {
	Name string
	Role string
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// SessionProvider exposes the current session to the navigation bar.
type SessionProvider interface {
	CurrentUser(ctx context.Context) (*User, bool)
	IsAuthenticated(ctx context.Context) bool
	SignOut(ctx context.Context) error
}

// Router exposes the current location and programmatic navigation.
type Router interface {
	CurrentPath() string
	Navigate(path string)
}

const (
	QueryMenu        = "menu"
	QueryAccountMenu = "account"
	QueryValueOpen   = "open"

	placeholderUserName = "Guest"

	PathNavbarSelect = "/navbar/select/"
)

// NavigationBar renders the site header: brand, primary links, user menu and
// the collapsible mobile panel. An instance is bound to one rendering and is
// not safe for concurrent use.
type NavigationBar struct {
	session SessionProvider
	router  Router
	brand   string
	avatars *AvatarURLBuilder

	menuOpen        bool
	accountMenuOpen bool
}

func (n *NavigationBar) IsMenuOpen() bool {
	return n.menuOpen
}

func (n *NavigationBar) ToggleMenu() {
	n.menuOpen = !n.menuOpen
}

func (n *NavigationBar) CloseMenu() {
	n.menuOpen = false
}

func (n *NavigationBar) IsAccountMenuOpen() bool {
	return n.accountMenuOpen
}

func (n *NavigationBar) OpenAccountMenu() {
	n.accountMenuOpen = true
}

func (n *NavigationBar) CloseAccountMenu() {
	n.accountMenuOpen = false
}

func (n *NavigationBar) ToggleAccountMenu() {
	n.accountMenuOpen = !n.accountMenuOpen
}

// SelectMobileItem closes the mobile panel and navigates to the item path.
func (n *NavigationBar) SelectMobileItem(kind NavigationKind) error {
	item, err := FindNavigationItem(kind)
	if err != nil {
		return errors.WithStack(err)
	}

	n.menuOpen = false
	n.router.Navigate(item.Path)

	return nil
}

// SignOut terminates the session and navigates to the root path. Navigation
// happens whether or not the session provider succeeded.
func (n *NavigationBar) SignOut(ctx context.Context) {
	if err := n.session.SignOut(ctx); err != nil {
		slog.ErrorContext(ctx, "could not sign out", log.Error(errors.WithStack(err)))
	}

	n.menuOpen = false
	n.accountMenuOpen = false

	n.router.Navigate(PathRoot)
}

type LinkView struct {
	Label string
	URL   string
}

type NavigationItemView struct {
	Kind      NavigationKind
	Label     string
	Path      string
	Icon      template.HTML
	Active    bool
	MobileURL string
}

type UserMenuView struct {
	Name       string
	Role       string
	AvatarURL  string
	Open       bool
	ToggleURL  string
	Profile    LinkView
	Admin      *LinkView
	SignOutURL string
}

// NavigationBarView is the render-ready state of a NavigationBar.
type NavigationBarView struct {
	Brand         LinkView
	Authenticated bool

	SignIn LinkView
	SignUp LinkView

	// Items feeds both the desktop links and the mobile panel.
	Items []NavigationItemView

	User *UserMenuView

	MenuOpen      bool
	MenuToggleURL string
}

func (n *NavigationBar) View(ctx context.Context) NavigationBarView {
	view := NavigationBarView{
		Brand: LinkView{Label: n.brand, URL: PathRoot},
	}

	if !n.session.IsAuthenticated(ctx) {
		view.SignIn = LinkView{Label: "Sign in", URL: PathLogin}
		view.SignUp = LinkView{Label: "Sign up", URL: PathRegister}
		return view
	}

	view.Authenticated = true

	currentPath := n.router.CurrentPath()

	items := NavigationItems()
	view.Items = make([]NavigationItemView, 0, len(items))
	for _, item := range items {
		view.Items = append(view.Items, NavigationItemView{
			Kind:      item.Kind,
			Label:     item.Label,
			Path:      item.Path,
			Icon:      Icon(item.Kind),
			Active:    item.Path == currentPath,
			MobileURL: PathNavbarSelect + string(item.Kind),
		})
	}

	user, exists := n.session.CurrentUser(ctx)
	if !exists || user == nil {
		user = &User{Name: placeholderUserName}
	}

	menu := &UserMenuView{
		Name:       user.Name,
		Role:       user.Role,
		AvatarURL:  n.avatarURL(ctx, user.Name),
		Open:       n.accountMenuOpen,
		ToggleURL:  n.stateURL(currentPath, n.menuOpen, !n.accountMenuOpen),
		Profile:    LinkView{Label: "Profile", URL: PathProfile},
		SignOutURL: PathLogout,
	}

	if user.IsAdmin() {
		menu.Admin = &LinkView{Label: "Admin Panel", URL: PathAdmin}
	}

	view.User = menu
	view.MenuOpen = n.menuOpen
	view.MenuToggleURL = n.stateURL(currentPath, !n.menuOpen, n.accountMenuOpen)

	return view
}

// Render writes the navigation bar markup.
func (n *NavigationBar) Render(ctx context.Context, w io.Writer) error {
	if err := templates.ExecuteTemplate(w, "navbar", n.View(ctx)); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (n *NavigationBar) avatarURL(ctx context.Context, name string) string {
	if n.avatars == nil {
		return ""
	}

	avatarURL, err := n.avatars.URL(name)
	if err != nil {
		slog.ErrorContext(ctx, "could not generate avatar url", log.Error(errors.WithStack(err)))
		return ""
	}

	return avatarURL
}

func (n *NavigationBar) stateURL(path string, menuOpen bool, accountMenuOpen bool) string {
	query := url.Values{}

	if menuOpen {
		query.Set(QueryMenu, QueryValueOpen)
	}

	if accountMenuOpen {
		query.Set(QueryAccountMenu, QueryValueOpen)
	}

	if len(query) == 0 {
		return path
	}

	return path + "?" + query.Encode()
}

func NewNavigationBar(session SessionProvider, router Router, funcs ...NavigationBarOptionFunc) *NavigationBar {
	opts := NewNavigationBarOptions(funcs...)

	return &NavigationBar{
		session:         session,
		router:          router,
		brand:           opts.Brand,
		avatars:         opts.Avatars,
		menuOpen:        opts.MenuOpen,
		accountMenuOpen: opts.AccountMenuOpen,
	}
}
