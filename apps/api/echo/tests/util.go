package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/tutormate/apps/api/echo"
	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/core/booking"
	"github.com/trezcool/tutormate/core/calendar"
	"github.com/trezcool/tutormate/core/dashboard"
	"github.com/trezcool/tutormate/core/groupclass"
	"github.com/trezcool/tutormate/core/message"
	"github.com/trezcool/tutormate/core/navigation"
	"github.com/trezcool/tutormate/core/recording"
	"github.com/trezcool/tutormate/core/session"
	"github.com/trezcool/tutormate/core/tutor"
	"github.com/trezcool/tutormate/core/wallet"
	"github.com/trezcool/tutormate/services/email"
	"github.com/trezcool/tutormate/storage/database/inmem"
	"github.com/trezcool/tutormate/tests"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type fixture struct {
	app  *Server
	conf *core.Config
}

func setup(t *testing.T) fixture {
	conf := testutil.NewConfig()
	logger := testutil.NewLogger(conf)
	validate, translator := testutil.NewTranslatedValidator()

	// set up DB & services
	db := testutil.OpenDB(t)
	mailSvc := emailsvc.NewConsoleServiceMock(conf, logger)
	emailsvc.ResetSentMessages()

	tutorSvc := tutor.NewService(inmemdb.NewTutorRepository(db))
	walletSvc := wallet.NewService(inmemdb.NewWalletRepository(db), conf)
	calendarSvc := calendar.NewService(inmemdb.NewSessionRepository(db), conf)
	classSvc := groupclass.NewService(inmemdb.NewClassRepository(db))

	deps := &Deps{
		SessionSvc:   session.NewService(inmemdb.NewUISessionRepository(db), conf),
		TutorSvc:     tutorSvc,
		BookingSvc:   booking.NewService(tutorSvc, walletSvc, calendarSvc, mailSvc, conf, logger),
		CalendarSvc:  calendarSvc,
		MessageSvc:   message.NewService(inmemdb.NewMessageRepository(db), validate),
		WalletSvc:    walletSvc,
		ClassSvc:     classSvc,
		RecordingSvc: recording.NewService(inmemdb.NewRecordingRepository(db)),
		DashboardSvc: dashboard.NewService(tutorSvc, classSvc, calendarSvc),
	}

	// set up server
	return fixture{
		app:  NewServer(conf, logger, validate, translator, deps),
		conf: conf,
	}
}

// login starts a UI session and returns its token.
func (f fixture) login(t *testing.T) string {
	req, rec := newRequest(http.MethodPost, "/v1/sessions")
	f.app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("login() failed: code = %v; body %v", rec.Code, rec.Body.String())
	}
	var resp loginResp
	unmarshalBody(t, rec, &resp)
	return resp.Token
}

// do sends an authenticated request and returns the recorder.
func (f fixture) do(t *testing.T, method, path, token string, data ...[]byte) *httptest.ResponseRecorder {
	req, rec := newAuthRequest(method, path, token, data...)
	f.app.ServeHTTP(rec, req)
	return rec
}

func (f fixture) runTests(t *testing.T, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			var body [][]byte
			if tt.body != nil {
				body = append(body, tt.body)
			}
			rec := f.do(t, method, tt.path, tt.token, body...)
			checkCodeAndData(t, tt, rec)
		})
	}
}

// LoginResponse and ViewResponse carry a navigation.View, which cannot be decoded back.
type (
	viewResp struct {
		Page       navigation.Page  `json:"page"`
		Navigation navigation.State `json:"navigation"`
	}

	loginResp struct {
		Token string   `json:"token"`
		View  viewResp `json:"view"`
	}
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func unmarshalBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("unmarshalBody() failed: %v; body %v", err, rec.Body.String())
	}
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqualValues(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	wantCode := tt.wantCode
	if wantCode == 0 {
		wantCode = http.StatusOK
	}
	if rec.Code != wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
