package ui

import (
	"slices"

	"github.com/pkg/errors"
)

var ErrUnknownNavigationItem = errors.New("unknown navigation item")

type NavigationKind string

const (
	KindTeams      NavigationKind = "teams"
	KindHackathons NavigationKind = "hackathons"
	KindBlogs      NavigationKind = "blogs"
	KindInbox      NavigationKind = "inbox"
)

// NavigationItem is one entry of the primary navigation.
type NavigationItem struct {
	Kind  NavigationKind
	Label string
	Path  string
}

var navigationItems = []NavigationItem{
	{Kind: KindTeams, Label: "Teams", Path: "/teams"},
	{Kind: KindHackathons, Label: "Hackathons", Path: "/hackathons"},
	{Kind: KindBlogs, Label: "Blogs", Path: "/blogs"},
	{Kind: KindInbox, Label: "Inbox", Path: "/inbox"},
}

// NavigationItems returns the primary navigation entries, in display order.
func NavigationItems() []NavigationItem {
	return slices.Clone(navigationItems)
}

func FindNavigationItem(kind NavigationKind) (NavigationItem, error) {
	idx := slices.IndexFunc(navigationItems, func(item NavigationItem) bool {
		return item.Kind == kind
	})
	if idx == -1 {
		return NavigationItem{}, errors.Wrapf(ErrUnknownNavigationItem, "kind '%s'", kind)
	}

	return navigationItems[idx], nil
}

const (
	PathRoot     = "/"
	PathLogin    = "/login"
	PathRegister = "/register"
	PathLogout   = "/logout"
	PathProfile  = "/profile"
	PathAdmin    = "/admin"
)

const RoleAdmin = "admin"
