package ui

import (
	"html/template"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Icons are outline glyphs drawn on a 24x24 grid.
var navigationIcons = map[NavigationKind]func() g.Node{
	KindTeams: func() g.Node {
		return outlineIcon(
			"M17 20h5v-2a4 4 0 0 0-5.36-3.76",
			"M17 20H7m10 0v-2c0-.66-.13-1.28-.36-1.86M7 20H2v-2a4 4 0 0 1 5.36-3.76M7 20v-2c0-.66.13-1.28.36-1.86m0 0a5 5 0 0 1 9.28 0",
			"M15 7a3 3 0 1 1-6 0 3 3 0 0 1 6 0Z",
		)
	},
	KindHackathons: func() g.Node {
		return outlineIcon(
			"M10 20l4-16m4 4 4 4-4 4M6 16l-4-4 4-4",
		)
	},
	KindBlogs: func() g.Node {
		return outlineIcon(
			"M19 20H5a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2h10a2 2 0 0 1 2 2v1m2 13a2 2 0 0 1-2-2V7m2 13a2 2 0 0 0 2-2V9a2 2 0 0 0-2-2h-2",
			"M7 8h6M7 12h6M7 16h3",
		)
	},
	KindInbox: func() g.Node {
		return outlineIcon(
			"M20 13V6a2 2 0 0 0-2-2H6a2 2 0 0 0-2 2v7m16 0v5a2 2 0 0 1-2 2H6a2 2 0 0 1-2-2v-5m16 0h-2.59a1 1 0 0 0-.7.29l-2.42 2.42a1 1 0 0 1-.7.29h-3.18a1 1 0 0 1-.7-.29l-2.42-2.42a1 1 0 0 0-.7-.29H4",
		)
	},
}

func outlineIcon(paths ...string) g.Node {
	children := []g.Node{
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		h.Class("icon"),
	}

	for _, d := range paths {
		children = append(children, g.El("path", g.Attr("d", d)))
	}

	return g.El("svg", children...)
}

// Icon renders the icon associated with the given navigation kind, or an
// empty string if the kind has none.
func Icon(kind NavigationKind) template.HTML {
	render, exists := navigationIcons[kind]
	if !exists {
		return ""
	}

	var sb strings.Builder
	if err := render().Render(&sb); err != nil {
		return ""
	}

	return template.HTML(sb.String())
}
