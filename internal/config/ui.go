package config

import (
	"fmt"

	"github.com/bornholm/hackboard/internal/ui"
	"github.com/goccy/go-yaml"
)

type UI struct {
	Brand  InterpolatedString `yaml:"brand"`
	Avatar Avatar             `yaml:"avatar"`
}

type Avatar struct {
	URLTemplate InterpolatedString `yaml:"urlTemplate"`
	Options     *InterpolatedMap   `yaml:"options"`
}

func NewDefaultUIConfig() UI {
	defaults := ui.DefaultAvatarOptions()

	return UI{
		Brand: "${HACKBOARD_UI_BRAND:-Hackboard}",
		Avatar: Avatar{
			URLTemplate: ui.DefaultAvatarURLTemplate,
			Options: &InterpolatedMap{
				Data: map[string]any{
					"background": fmt.Sprintf("${HACKBOARD_AVATAR_BACKGROUND:-%s}", defaults.Background),
					"color":      defaults.Color,
					"size":       defaults.Size,
					"rounded":    defaults.Rounded,
				},
			},
		},
	}
}

func NewUIConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                    []*yaml.Comment{yaml.HeadComment(" User interface configuration")},
		".brand":              []*yaml.Comment{yaml.HeadComment(" Label of the navigation bar brand link")},
		".avatar.urlTemplate": []*yaml.Comment{yaml.HeadComment(" Avatar image URL template, rendered with the user display name", " Available fields: .Name, .Background, .Color, .Size, .Rounded")},
		".avatar.options":     []*yaml.Comment{yaml.HeadComment(" Avatar template options")},
	}
}
