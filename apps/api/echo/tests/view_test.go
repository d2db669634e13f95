package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/tutormate/apps/api/echo"
	"github.com/trezcool/tutormate/core/navigation"
)

func Test_viewApi(t *testing.T) {
	f := setup(t)
	token := f.login(t)

	view := func(cur, prev navigation.Page, data *navigation.Data) []byte {
		state := navigation.State{Current: cur, Previous: prev, Data: data}
		v := state.View()
		return marchallObj(t, ViewResponse{Page: v.Page(), View: v, Navigation: state})
	}
	navigate := func(page string, tutorID string) []byte {
		req := NavigateRequest{Page: navigation.Page(page)}
		if tutorID != "" {
			req.Data = &navigation.Data{TutorID: tutorID}
		}
		return marchallObj(t, req)
	}
	tutor3 := &navigation.Data{TutorID: "3"}

	// each case runs on the state left by the previous one
	f.runTests(t, []httpTest{
		{
			name: "after login", path: "/v1/view", token: token,
			wantData: view(navigation.PageDashboard, navigation.PageLogin, nil),
		},
		{
			name: "tutor profile", method: http.MethodPost, path: "/v1/view/navigate", token: token,
			body:     navigate("tutor-profile", "3"),
			wantData: view(navigation.PageTutorProfile, navigation.PageDashboard, tutor3),
		},
		{
			name: "booking keeps page data", method: http.MethodPost, path: "/v1/view/navigate", token: token,
			body:     navigate("booking", ""),
			wantData: view(navigation.PageBooking, navigation.PageTutorProfile, tutor3),
		},
		{
			name: "back", method: http.MethodPost, path: "/v1/view/back", token: token,
			wantData: view(navigation.PageTutorProfile, navigation.PageTutorProfile, tutor3),
		},
		{
			name: "back twice", method: http.MethodPost, path: "/v1/view/back", token: token,
			wantData: view(navigation.PageTutorProfile, navigation.PageTutorProfile, tutor3),
		},
		{
			name: "unknown page", method: http.MethodPost, path: "/v1/view/navigate", token: token,
			body:     navigate("nowhere", "1"),
			wantData: view("nowhere", navigation.PageTutorProfile, &navigation.Data{TutorID: "1"}),
		},
		{
			name: "persisted", path: "/v1/view", token: token,
			wantData: view("nowhere", navigation.PageTutorProfile, &navigation.Data{TutorID: "1"}),
		},
	})
}

func Test_viewApi_nav(t *testing.T) {
	f := setup(t)
	token := f.login(t)

	var nav NavResponse
	rec := f.do(t, http.MethodGet, "/v1/nav", token)
	unmarshalBody(t, rec, &nav)
	assert.True(t, nav.Visible)
	assert.Equal(t, navigation.MainMenu(), nav.MainMenu)
	assert.Equal(t, navigation.AccountMenu(), nav.AccountMenu)

	f.do(t, http.MethodPost, "/v1/view/navigate", token, marchallObj(t, NavigateRequest{Page: navigation.PageLogin}))
	rec = f.do(t, http.MethodGet, "/v1/nav", token)
	unmarshalBody(t, rec, &nav)
	assert.False(t, nav.Visible)
	assert.Equal(t, navigation.PageLogin, nav.Current)
}
