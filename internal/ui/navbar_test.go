package ui

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

type fakeSession struct {
	user          *User
	authenticated bool
	signOutErr    error
	signOutCalls  int
}

func (s *fakeSession) CurrentUser(ctx context.Context) (*User, bool) {
	return s.user, s.user != nil
}

func (s *fakeSession) IsAuthenticated(ctx context.Context) bool {
	return s.authenticated
}

func (s *fakeSession) SignOut(ctx context.Context) error {
	s.signOutCalls++
	if s.signOutErr != nil {
		return s.signOutErr
	}

	s.authenticated = false
	s.user = nil

	return nil
}

type fakeRouter struct {
	path        string
	navigations []string
}

func (r *fakeRouter) CurrentPath() string {
	return r.path
}

func (r *fakeRouter) Navigate(path string) {
	r.navigations = append(r.navigations, path)
}

func newAuthenticatedSession(name, role string) *fakeSession {
	return &fakeSession{
		user:          &User{Name: name, Role: role},
		authenticated: true,
	}
}

func TestNavigationBarActiveItem(t *testing.T) {
	paths := []string{"/", "/teams", "/hackathons", "/blogs", "/inbox", "/teams/42", "/Teams", "/profile"}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			navbar := NewNavigationBar(newAuthenticatedSession("Alice", "member"), &fakeRouter{path: path})
			view := navbar.View(context.Background())

			if e, g := 4, len(view.Items); e != g {
				t.Fatalf("len(view.Items): expected '%v', got '%v'", e, g)
			}

			for _, item := range view.Items {
				if e, g := item.Path == path, item.Active; e != g {
					t.Errorf("item '%s' active: expected '%v', got '%v'", item.Kind, e, g)
				}
			}
		})
	}
}

func TestNavigationBarItemsOrder(t *testing.T) {
	navbar := NewNavigationBar(newAuthenticatedSession("Alice", "member"), &fakeRouter{path: "/"})
	view := navbar.View(context.Background())

	labels := make([]string, 0, len(view.Items))
	for _, item := range view.Items {
		labels = append(labels, item.Label)

		if item.Icon == "" {
			t.Errorf("item '%s': expected icon", item.Kind)
		}

		if e, g := PathNavbarSelect+string(item.Kind), item.MobileURL; e != g {
			t.Errorf("item '%s' mobile url: expected '%v', got '%v'", item.Kind, e, g)
		}
	}

	if e, g := []string{"Teams", "Hackathons", "Blogs", "Inbox"}, labels; !slices.Equal(e, g) {
		t.Errorf("labels: expected '%v', got '%v'", e, g)
	}
}

func TestNavigationBarUnauthenticated(t *testing.T) {
	navbar := NewNavigationBar(&fakeSession{}, &fakeRouter{path: "/"})
	view := navbar.View(context.Background())

	if view.Authenticated {
		t.Errorf("view.Authenticated: expected false")
	}

	if e, g := 0, len(view.Items); e != g {
		t.Errorf("len(view.Items): expected '%v', got '%v'", e, g)
	}

	if view.User != nil {
		t.Errorf("view.User: expected nil, got '%v'", view.User)
	}

	if e, g := PathLogin, view.SignIn.URL; e != g {
		t.Errorf("view.SignIn.URL: expected '%v', got '%v'", e, g)
	}

	if e, g := PathRegister, view.SignUp.URL; e != g {
		t.Errorf("view.SignUp.URL: expected '%v', got '%v'", e, g)
	}

	if e, g := PathRoot, view.Brand.URL; e != g {
		t.Errorf("view.Brand.URL: expected '%v', got '%v'", e, g)
	}
}

func TestNavigationBarAdminLink(t *testing.T) {
	type testCase struct {
		Role          string
		ExpectedAdmin bool
	}

	testCases := []testCase{
		{Role: "admin", ExpectedAdmin: true},
		{Role: "member", ExpectedAdmin: false},
		{Role: "Admin", ExpectedAdmin: false},
		{Role: "", ExpectedAdmin: false},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			navbar := NewNavigationBar(newAuthenticatedSession("Bob", tc.Role), &fakeRouter{path: "/"})
			view := navbar.View(context.Background())

			if view.User == nil {
				t.Fatalf("view.User: expected non nil")
			}

			if e, g := tc.ExpectedAdmin, view.User.Admin != nil; e != g {
				t.Errorf("admin link present: expected '%v', got '%v'", e, g)
			}

			if e, g := PathProfile, view.User.Profile.URL; e != g {
				t.Errorf("view.User.Profile.URL: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestNavigationBarToggleMenu(t *testing.T) {
	for _, initial := range []bool{false, true} {
		navbar := NewNavigationBar(newAuthenticatedSession("Alice", "member"), &fakeRouter{path: "/"}, WithMenuOpen(initial))

		navbar.ToggleMenu()

		if e, g := !initial, navbar.IsMenuOpen(); e != g {
			t.Errorf("after one toggle: expected '%v', got '%v'", e, g)
		}

		navbar.ToggleMenu()

		if e, g := initial, navbar.IsMenuOpen(); e != g {
			t.Errorf("after two toggles: expected '%v', got '%v'", e, g)
		}
	}

	navbar := NewNavigationBar(newAuthenticatedSession("Alice", "member"), &fakeRouter{path: "/blogs"})
	if navbar.IsMenuOpen() {
		t.Errorf("initial menu state: expected false")
	}

	if e, g := "/blogs?menu=open", navbar.View(context.Background()).MenuToggleURL; e != g {
		t.Errorf("closed MenuToggleURL: expected '%v', got '%v'", e, g)
	}

	navbar.ToggleMenu()

	if e, g := "/blogs", navbar.View(context.Background()).MenuToggleURL; e != g {
		t.Errorf("open MenuToggleURL: expected '%v', got '%v'", e, g)
	}
}

func TestNavigationBarAccountMenu(t *testing.T) {
	navbar := NewNavigationBar(newAuthenticatedSession("Alice", "member"), &fakeRouter{path: "/inbox"})

	if navbar.IsAccountMenuOpen() {
		t.Errorf("initial account menu state: expected false")
	}

	navbar.OpenAccountMenu()

	view := navbar.View(context.Background())
	if !view.User.Open {
		t.Errorf("view.User.Open: expected true")
	}

	if e, g := "/inbox", view.User.ToggleURL; e != g {
		t.Errorf("view.User.ToggleURL: expected '%v', got '%v'", e, g)
	}

	navbar.CloseAccountMenu()

	if navbar.IsAccountMenuOpen() {
		t.Errorf("account menu state after close: expected false")
	}

	navbar.ToggleAccountMenu()
	navbar.ToggleAccountMenu()

	if navbar.IsAccountMenuOpen() {
		t.Errorf("account menu state after two toggles: expected false")
	}
}

func TestNavigationBarSelectMobileItem(t *testing.T) {
	for _, item := range NavigationItems() {
		t.Run(string(item.Kind), func(t *testing.T) {
			router := &fakeRouter{path: "/"}
			navbar := NewNavigationBar(newAuthenticatedSession("Alice", "member"), router, WithMenuOpen(true))

			if err := navbar.SelectMobileItem(item.Kind); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if navbar.IsMenuOpen() {
				t.Errorf("menu state: expected false")
			}

			if e, g := []string{item.Path}, router.navigations; !slices.Equal(e, g) {
				t.Errorf("router.navigations: expected '%v', got '%v'", e, g)
			}
		})
	}

	router := &fakeRouter{path: "/"}
	navbar := NewNavigationBar(newAuthenticatedSession("Alice", "member"), router, WithMenuOpen(true))

	err := navbar.SelectMobileItem("unknown")
	if !errors.Is(err, ErrUnknownNavigationItem) {
		t.Errorf("err: expected '%v', got '%v'", ErrUnknownNavigationItem, err)
	}

	if !navbar.IsMenuOpen() {
		t.Errorf("menu state after unknown selection: expected unchanged")
	}

	if e, g := 0, len(router.navigations); e != g {
		t.Errorf("len(router.navigations): expected '%v', got '%v'", e, g)
	}
}

func TestNavigationBarSignOut(t *testing.T) {
	type testCase struct {
		SignOutErr error
	}

	testCases := []testCase{
		{SignOutErr: nil},
		{SignOutErr: errors.New("session store unavailable")},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			session := newAuthenticatedSession("Alice", "admin")
			session.signOutErr = tc.SignOutErr

			router := &fakeRouter{path: "/teams"}
			navbar := NewNavigationBar(session, router, WithMenuOpen(true), WithAccountMenuOpen(true))

			navbar.SignOut(context.Background())

			if e, g := 1, session.signOutCalls; e != g {
				t.Errorf("session.signOutCalls: expected '%v', got '%v'", e, g)
			}

			if e, g := []string{PathRoot}, router.navigations; !slices.Equal(e, g) {
				t.Errorf("router.navigations: expected '%v', got '%v'", e, g)
			}

			if navbar.IsMenuOpen() || navbar.IsAccountMenuOpen() {
				t.Errorf("menus: expected closed")
			}
		})
	}
}

func TestNavigationBarMissingUser(t *testing.T) {
	session := &fakeSession{authenticated: true}
	navbar := NewNavigationBar(session, &fakeRouter{path: "/"})

	view := navbar.View(context.Background())

	if view.User == nil {
		t.Fatalf("view.User: expected placeholder")
	}

	if e, g := placeholderUserName, view.User.Name; e != g {
		t.Errorf("view.User.Name: expected '%v', got '%v'", e, g)
	}

	if view.User.Admin != nil {
		t.Errorf("view.User.Admin: expected nil")
	}
}

func TestNavigationBarAvatar(t *testing.T) {
	avatars, err := NewAvatarURLBuilder("", nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	navbar := NewNavigationBar(newAuthenticatedSession("Ada Lovelace", "member"), &fakeRouter{path: "/"}, WithAvatars(avatars))
	view := navbar.View(context.Background())

	if !strings.Contains(view.User.AvatarURL, "name=Ada+Lovelace") {
		t.Errorf("view.User.AvatarURL: expected to contain encoded name, got '%v'", view.User.AvatarURL)
	}
}

func TestNavigationBarRenderAdminScenario(t *testing.T) {
	navbar := NewNavigationBar(newAuthenticatedSession("Alice", "admin"), &fakeRouter{path: "/teams"})

	doc := renderNavbar(t, navbar)

	items := findAll(doc, withAttr("data-nav-item"))
	if e, g := 4, len(items); e != g {
		t.Fatalf("len(items): expected '%v', got '%v'", e, g)
	}

	for _, item := range items {
		kind := attr(item, "data-nav-item")
		active := strings.Contains(attr(item, "class"), "is-active")

		if e, g := kind == string(KindTeams), active; e != g {
			t.Errorf("item '%s' active: expected '%v', got '%v'", kind, e, g)
		}
	}

	if e, g := 1, len(findAll(doc, withAttrValue("data-action", "admin"))); e != g {
		t.Errorf("admin links: expected '%v', got '%v'", e, g)
	}

	if e, g := 1, len(findAll(doc, withAttrValue("data-action", "toggle-menu"))); e != g {
		t.Errorf("menu toggles: expected '%v', got '%v'", e, g)
	}

	if e, g := 1, len(findAll(doc, withAttrValue("data-action", "sign-out"))); e != g {
		t.Errorf("sign out controls: expected '%v', got '%v'", e, g)
	}

	if e, g := 0, len(findAll(doc, withAttr("data-mobile-menu"))); e != g {
		t.Errorf("mobile panels: expected '%v', got '%v'", e, g)
	}
}

func TestNavigationBarRenderMemberScenario(t *testing.T) {
	navbar := NewNavigationBar(newAuthenticatedSession("Bob", "member"), &fakeRouter{path: "/inbox"})

	doc := renderNavbar(t, navbar)

	if e, g := 0, len(findAll(doc, withAttrValue("data-action", "admin"))); e != g {
		t.Errorf("admin links: expected '%v', got '%v'", e, g)
	}

	if e, g := 1, len(findAll(doc, withAttrValue("data-action", "profile"))); e != g {
		t.Errorf("profile links: expected '%v', got '%v'", e, g)
	}
}

func TestNavigationBarRenderUnauthenticatedScenario(t *testing.T) {
	navbar := NewNavigationBar(&fakeSession{}, &fakeRouter{path: "/"})

	doc := renderNavbar(t, navbar)

	if e, g := 1, len(findAll(doc, withAttr("data-nav-brand"))); e != g {
		t.Errorf("brand links: expected '%v', got '%v'", e, g)
	}

	if e, g := 1, len(findAll(doc, withAttrValue("data-action", "sign-in"))); e != g {
		t.Errorf("sign in links: expected '%v', got '%v'", e, g)
	}

	if e, g := 1, len(findAll(doc, withAttrValue("data-action", "sign-up"))); e != g {
		t.Errorf("sign up links: expected '%v', got '%v'", e, g)
	}

	absent := []func(n *html.Node) bool{
		withAttr("data-nav-item"),
		withAttr("data-user-menu"),
		withAttr("data-mobile-menu"),
		withAttrValue("data-action", "toggle-menu"),
		withAttrValue("data-action", "sign-out"),
	}

	for idx, match := range absent {
		if e, g := 0, len(findAll(doc, match)); e != g {
			t.Errorf("absent #%d: expected '%v' elements, got '%v'", idx, e, g)
		}
	}
}

func TestNavigationBarRenderMobileMenu(t *testing.T) {
	navbar := NewNavigationBar(newAuthenticatedSession("Alice", "member"), &fakeRouter{path: "/blogs"}, WithMenuOpen(true))

	doc := renderNavbar(t, navbar)

	if e, g := 1, len(findAll(doc, withAttr("data-mobile-menu"))); e != g {
		t.Fatalf("mobile panels: expected '%v', got '%v'", e, g)
	}

	desktop := findAll(doc, withAttr("data-nav-item"))
	mobile := findAll(doc, withAttr("data-mobile-item"))

	if e, g := len(desktop), len(mobile); e != g {
		t.Fatalf("len(mobile): expected '%v', got '%v'", e, g)
	}

	for idx := range desktop {
		if e, g := attr(desktop[idx], "data-nav-item"), attr(mobile[idx], "data-mobile-item"); e != g {
			t.Errorf("mobile item #%d: expected '%v', got '%v'", idx, e, g)
		}

		if e, g := PathNavbarSelect+attr(desktop[idx], "data-nav-item"), attr(mobile[idx], "href"); e != g {
			t.Errorf("mobile item #%d href: expected '%v', got '%v'", idx, e, g)
		}
	}
}

func renderNavbar(t *testing.T, navbar *NavigationBar) *html.Node {
	t.Helper()

	var buff bytes.Buffer
	if err := navbar.Render(context.Background(), &buff); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	doc, err := html.Parse(&buff)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return doc
}

func findAll(root *html.Node, match func(n *html.Node) bool) []*html.Node {
	nodes := make([]*html.Node, 0)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			nodes = append(nodes, n)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)

	return nodes
}

func withAttr(key string) func(n *html.Node) bool {
	return func(n *html.Node) bool {
		return slices.ContainsFunc(n.Attr, func(a html.Attribute) bool {
			return a.Key == key
		})
	}
}

func withAttrValue(key, value string) func(n *html.Node) bool {
	return func(n *html.Node) bool {
		return slices.ContainsFunc(n.Attr, func(a html.Attribute) bool {
			return a.Key == key && a.Val == value
		})
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}

	return ""
}
