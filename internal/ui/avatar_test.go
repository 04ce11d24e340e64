package ui

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestAvatarURLBuilder(t *testing.T) {
	type testCase struct {
		Template string
		Options  any
		Name     string
		Expected string
	}

	testCases := []testCase{
		{
			Template: "",
			Options:  nil,
			Name:     "Grace Hopper",
			Expected: "https://ui-avatars.com/api/?name=Grace+Hopper&background=random&color=fff&size=64&rounded=true",
		},
		{
			Template: "https://avatars.example.com/{{ .Name | lower | urlquery }}.png?s={{ .Size }}",
			Options: map[string]any{
				"size": "128",
			},
			Name:     "Linus",
			Expected: "https://avatars.example.com/linus.png?s=128",
		},
		{
			Template: "https://avatars.example.com/?bg={{ .Background }}",
			Options: map[string]any{
				"background": "0D8ABC",
			},
			Name:     "",
			Expected: "https://avatars.example.com/?bg=0D8ABC",
		},
		{
			Template: "",
			Options: map[string]any{
				"background": "#0D8ABC",
				"color":      "#fff&size=1",
			},
			Name:     "Ada",
			Expected: "https://ui-avatars.com/api/?name=Ada&background=%230D8ABC&color=%23fff%26size%3D1&size=64&rounded=true",
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			builder, err := NewAvatarURLBuilder(tc.Template, tc.Options)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			url, err := builder.URL(tc.Name)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, url; e != g {
				t.Errorf("url: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestAvatarURLBuilderInvalidTemplate(t *testing.T) {
	if _, err := NewAvatarURLBuilder("{{ .Name", nil); err == nil {
		t.Errorf("err: expected non nil")
	}
}
