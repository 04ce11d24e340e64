package local

import (
	"embed"
	"html/template"

	"github.com/bornholm/hackboard/internal/authn/oauth2"
	"github.com/bornholm/hackboard/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

type ProviderTemplateData struct {
	oauth2.Provider
	URL string
}

type LoginTemplateData struct {
	ui.HeadTemplateData
	ui.NavbarTemplateData
	Username     string
	ErrorMessage string
	Providers    []ProviderTemplateData
	Registration bool
}

type RegisterTemplateData struct {
	ui.HeadTemplateData
	ui.NavbarTemplateData
	Username     string
	Email        string
	ErrorMessage string
}
