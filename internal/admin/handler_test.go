package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/bornholm/hackboard/internal/authn"
	"github.com/bornholm/hackboard/internal/router"
	"github.com/bornholm/hackboard/internal/store"
	"github.com/bornholm/hackboard/internal/ui"
	"github.com/pkg/errors"
)

type adminSession struct{}

func (adminSession) CurrentUser(ctx context.Context) (*ui.User, bool) {
	return &ui.User{Name: "root", Role: ui.RoleAdmin}, true
}

func (adminSession) IsAuthenticated(ctx context.Context) bool { return true }
func (adminSession) SignOut(ctx context.Context) error        { return nil }

func newTestHandler(t *testing.T) (*Handler, *store.Store, *store.User, *store.User) {
	t.Helper()

	ctx := context.Background()

	st := store.NewStore(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}
	})

	root, err := st.FindOrCreateUser(ctx, "root", store.ProviderLocal)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	root, err = st.UpdateUserRole(ctx, root.ID, store.RoleAdmin)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	member, err := st.FindOrCreateUser(ctx, "bob", "github")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	handler := NewHandler("/admin", st, func(w http.ResponseWriter, r *http.Request) *ui.NavigationBar {
		return ui.NewNavigationBar(adminSession{}, router.New(w, r))
	})

	return handler, st, root, member
}

func serve(handler http.Handler, method, path string, user authn.User, values url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if values != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	req = req.WithContext(authn.WithContextUser(req.Context(), user))

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	return res
}

func TestIndex(t *testing.T) {
	handler, _, root, _ := newTestHandler(t)

	res := serve(handler, http.MethodGet, "/admin/", root, nil)
	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	body := res.Body.String()

	if e, g := 2, strings.Count(body, "data-user="); e != g {
		t.Errorf("rows: expected '%v', got '%v'", e, g)
	}

	if !strings.Contains(body, `data-admin-count>1<`) {
		t.Errorf("body: expected one admin")
	}

	if !strings.Contains(body, `href="/admin"`) {
		t.Errorf("body: expected navigation bar admin link")
	}
}

func TestUpdateRole(t *testing.T) {
	type testCase struct {
		Name             string
		Target           func(root, member *store.User) int64
		Role             string
		ExpectedLocation string
		ExpectedRole     string
	}

	testCases := []testCase{
		{
			Name:             "promote member",
			Target:           func(root, member *store.User) int64 { return member.ID },
			Role:             store.RoleAdmin,
			ExpectedLocation: "/admin/?success=role-updated",
			ExpectedRole:     store.RoleAdmin,
		},
		{
			Name:             "unknown role",
			Target:           func(root, member *store.User) int64 { return member.ID },
			Role:             "superuser",
			ExpectedLocation: "/admin/?error=invalid-role",
			ExpectedRole:     store.RoleMember,
		},
		{
			Name:             "self demotion",
			Target:           func(root, member *store.User) int64 { return root.ID },
			Role:             store.RoleMember,
			ExpectedLocation: "/admin/?error=self-demotion",
			ExpectedRole:     store.RoleAdmin,
		},
		{
			Name:             "unknown user",
			Target:           func(root, member *store.User) int64 { return 999 },
			Role:             store.RoleAdmin,
			ExpectedLocation: "/admin/?error=unknown-user",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			handler, st, root, member := newTestHandler(t)

			userID := tc.Target(root, member)
			path := "/admin/users/" + strconv.FormatInt(userID, 10) + "/role"

			res := serve(handler, http.MethodPost, path, root, url.Values{"role": {tc.Role}})

			if e, g := http.StatusSeeOther, res.Code; e != g {
				t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedLocation, res.Header().Get("Location"); e != g {
				t.Errorf("Location: expected '%v', got '%v'", e, g)
			}

			if tc.ExpectedRole == "" {
				return
			}

			user, err := st.GetUser(context.Background(), userID)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedRole, user.Role; e != g {
				t.Errorf("user.Role: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestDeleteUser(t *testing.T) {
	handler, st, root, member := newTestHandler(t)

	res := serve(handler, http.MethodPost, "/admin/users/"+strconv.FormatInt(root.ID, 10)+"/delete", root, url.Values{})
	if e, g := "/admin/?error=self-deletion", res.Header().Get("Location"); e != g {
		t.Errorf("Location: expected '%v', got '%v'", e, g)
	}

	res = serve(handler, http.MethodPost, "/admin/users/"+strconv.FormatInt(member.ID, 10)+"/delete", root, url.Values{})
	if e, g := "/admin/?success=user-deleted", res.Header().Get("Location"); e != g {
		t.Errorf("Location: expected '%v', got '%v'", e, g)
	}

	count, err := st.CountUsers(context.Background())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), count; e != g {
		t.Errorf("count: expected '%v', got '%v'", e, g)
	}
}
