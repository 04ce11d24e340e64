package ui

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

const DefaultAvatarURLTemplate = "https://ui-avatars.com/api/?name={{ urlquery .Name }}&background={{ urlquery .Background }}&color={{ urlquery .Color }}&size={{ .Size }}&rounded={{ .Rounded }}"

type AvatarOptions struct {
	Background string `mapstructure:"background"`
	Color      string `mapstructure:"color"`
	Size       int    `mapstructure:"size"`
	Rounded    bool   `mapstructure:"rounded"`
}

func DefaultAvatarOptions() AvatarOptions {
	return AvatarOptions{
		Background: "random",
		Color:      "fff",
		Size:       64,
		Rounded:    true,
	}
}

type avatarTemplateData struct {
	AvatarOptions
	Name string
}

// AvatarURLBuilder derives avatar image URLs from a user display name using
// an external image service URL template.
type AvatarURLBuilder struct {
	tmpl    *template.Template
	options AvatarOptions
}

func (b *AvatarURLBuilder) URL(name string) (string, error) {
	var sb strings.Builder

	data := avatarTemplateData{
		AvatarOptions: b.options,
		Name:          name,
	}

	if err := b.tmpl.Execute(&sb, data); err != nil {
		return "", errors.WithStack(err)
	}

	return sb.String(), nil
}

// NewAvatarURLBuilder parses rawTemplate and decodes the raw options map over
// the default avatar options.
func NewAvatarURLBuilder(rawTemplate string, rawOptions any) (*AvatarURLBuilder, error) {
	if rawTemplate == "" {
		rawTemplate = DefaultAvatarURLTemplate
	}

	tmpl, err := template.New("avatar").Funcs(sprig.TxtFuncMap()).Parse(rawTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse avatar url template")
	}

	opts := DefaultAvatarOptions()

	if rawOptions != nil {
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &opts,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, errors.WithStack(err)
		}

		if err := decoder.Decode(rawOptions); err != nil {
			return nil, errors.Wrap(err, "could not parse avatar options")
		}
	}

	return &AvatarURLBuilder{
		tmpl:    tmpl,
		options: opts,
	}, nil
}
