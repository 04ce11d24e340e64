package ui

type NavigationBarOptions struct {
	Brand           string
	Avatars         *AvatarURLBuilder
	MenuOpen        bool
	AccountMenuOpen bool
}

type NavigationBarOptionFunc func(opts *NavigationBarOptions)

func NewNavigationBarOptions(funcs ...NavigationBarOptionFunc) *NavigationBarOptions {
	opts := &NavigationBarOptions{
		Brand: "Hackboard",
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithBrand(brand string) NavigationBarOptionFunc {
	return func(opts *NavigationBarOptions) {
		opts.Brand = brand
	}
}

func WithAvatars(avatars *AvatarURLBuilder) NavigationBarOptionFunc {
	return func(opts *NavigationBarOptions) {
		opts.Avatars = avatars
	}
}

// WithMenuOpen sets the initial state of the mobile panel.
func WithMenuOpen(open bool) NavigationBarOptionFunc {
	return func(opts *NavigationBarOptions) {
		opts.MenuOpen = open
	}
}

// WithAccountMenuOpen sets the initial state of the user dropdown.
func WithAccountMenuOpen(open bool) NavigationBarOptionFunc {
	return func(opts *NavigationBarOptions) {
		opts.AccountMenuOpen = open
	}
}
