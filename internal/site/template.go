package site

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/hackboard/internal/ui"
	"github.com/bornholm/hackboard/pkg/log"
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

type HomeTemplateData struct {
	ui.HeadTemplateData
	ui.NavbarTemplateData
	Sections []SectionTemplateData
}

type SectionTemplateData struct {
	ui.HeadTemplateData
	ui.NavbarTemplateData
	Kind        ui.NavigationKind
	Label       string
	Path        string
	Icon        template.HTML
	Description string
}

type ProfileTemplateData struct {
	ui.HeadTemplateData
	ui.NavbarTemplateData
	Name        string
	Role        string
	AvatarURL   string
	Email       string
	Provider    string
	CreatedAt   time.Time
	ConnectedAt time.Time
}

func render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "could not execute template", log.Error(errors.WithStack(err)), slog.String("template", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
