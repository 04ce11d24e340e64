package admin

import (
	"embed"
	"html/template"
	"time"

	"github.com/bornholm/hackboard/internal/store"
	"github.com/bornholm/hackboard/internal/ui"
	"github.com/dustin/go-humanize"
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

var roles = []string{store.RoleMember, store.RoleAdmin}

// UserTemplateData contains information about a user
type UserTemplateData struct {
	ID               int64
	Provider         string
	Subject          string
	DisplayName      string
	Email            string
	Role             string
	IsSelf           bool
	CreatedAt        time.Time
	ConnectedAt      time.Time
	HumanCreatedAt   string
	HumanConnectedAt string
}

type IndexTemplateData struct {
	ui.HeadTemplateData
	ui.NavbarTemplateData
	Prefix         string
	UserCount      int
	AdminCount     int
	Users          []UserTemplateData
	Roles          []string
	ErrorMessage   string
	SuccessMessage string
}

func NewUserTemplateData(user *store.User) UserTemplateData {
	data := UserTemplateData{
		ID:               user.ID,
		Provider:         user.Provider,
		Subject:          user.Subject,
		DisplayName:      user.UserDisplayName(),
		Email:            user.Email,
		Role:             user.Role,
		CreatedAt:        user.CreatedAt,
		ConnectedAt:      user.ConnectedAt,
		HumanCreatedAt:   humanize.Time(user.CreatedAt),
		HumanConnectedAt: "never",
	}

	if !user.ConnectedAt.IsZero() {
		data.HumanConnectedAt = humanize.Time(user.ConnectedAt)
	}

	return data
}
