package config

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestInterpolateDefaultConfig(t *testing.T) {
	getEnv = func(key string) string {
		switch key {
		case "HACKBOARD_HTTP_ADDRESS":
			return "127.0.0.1:3000"
		case "HACKBOARD_UI_BRAND":
			return "Hack Night"
		default:
			return ""
		}
	}

	conf := NewDefaultConfig()

	if err := Interpolate(conf); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "127.0.0.1:3000", string(conf.HTTP.Address); e != g {
		t.Errorf("conf.HTTP.Address: expected '%v', got '%v'", e, g)
	}

	if e, g := "http://localhost:8080", string(conf.HTTP.BaseURL); e != g {
		t.Errorf("conf.HTTP.BaseURL: expected '%v', got '%v'", e, g)
	}

	if e, g := "Hack Night", string(conf.UI.Brand); e != g {
		t.Errorf("conf.UI.Brand: expected '%v', got '%v'", e, g)
	}

	if e, g := true, bool(conf.Auth.Registration); e != g {
		t.Errorf("conf.Auth.Registration: expected '%v', got '%v'", e, g)
	}

	if e, g := "data.db", string(conf.Store.Path); e != g {
		t.Errorf("conf.Store.Path: expected '%v', got '%v'", e, g)
	}

	if e, g := 7*24*time.Hour, time.Duration(*conf.HTTP.Session.Cookie.MaxAge); e != g {
		t.Errorf("conf.HTTP.Session.Cookie.MaxAge: expected '%v', got '%v'", e, g)
	}

	if e, g := "random", conf.UI.Avatar.Options.Data["background"]; e != g {
		t.Errorf("conf.UI.Avatar.Options.Data[\"background\"]: expected '%v', got '%v'", e, g)
	}

	if e, g := 2, len(conf.Auth.Access); e != g {
		t.Fatalf("len(conf.Auth.Access): expected '%v', got '%v'", e, g)
	}

	if e, g := "/admin", string(conf.Auth.Access[0].Path); e != g {
		t.Errorf("conf.Auth.Access[0].Path: expected '%v', got '%v'", e, g)
	}
}

func TestDumpConfig(t *testing.T) {
	var buff bytes.Buffer

	if err := Dump(&buff, NewDefaultConfig()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	dump := buff.String()

	for _, expected := range []string{"# Webserver configuration", "# Avatar image URL template", "${HACKBOARD_STORE_PATH:-data.db}"} {
		if !strings.Contains(dump, expected) {
			t.Errorf("dump: expected to contain '%s'", expected)
		}
	}
}
