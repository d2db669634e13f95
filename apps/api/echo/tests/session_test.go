package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutormate/core/navigation"
)

func TestServer_home(t *testing.T) {
	f := setup(t)

	req, rec := newRequest(http.MethodGet, "/")
	f.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to TutorMate API!", rec.Body.String())
}

func Test_sessionApi_login(t *testing.T) {
	f := setup(t)

	req, rec := newRequest(http.MethodPost, "/v1/sessions")
	f.app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp loginResp
	unmarshalBody(t, rec, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, navigation.PageDashboard, resp.View.Page)
	assert.Equal(t, navigation.PageDashboard, resp.View.Navigation.Current)
	assert.Equal(t, navigation.PageLogin, resp.View.Navigation.Previous)
}

func Test_sessionApi_auth(t *testing.T) {
	f := setup(t)
	token := f.login(t)
	stale := f.login(t)

	rec := f.do(t, http.MethodDelete, "/v1/sessions", stale)
	require.Equal(t, http.StatusNoContent, rec.Code)

	f.runTests(t, []httpTest{
		{name: "Token required", path: "/v1/view", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "Invalid token", path: "/v1/view", token: "not.a.token", wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, httpErr{Error: "invalid or expired jwt"}),
		},
		{
			name: "Discarded session", path: "/v1/view", token: stale, wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, httpErr{Error: "session expired"}),
		},
		{name: "Valid session", path: "/v1/view", token: token, wantCode: http.StatusOK},
	})
}
