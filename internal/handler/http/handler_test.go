package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/mock"
	"github.com/MKhiriev/go-expense-keeper/internal/service"
	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "header.payload.signature"

var testUser = models.User{UserID: 7, Username: "alice", Email: "alice@example.com"}

type testMocks struct {
	auth     *mock.MockAuthService
	reset    *mock.MockPasswordResetService
	expenses *mock.MockExpenseService
	appInfo  *mock.MockAppInfoService
}

func newTestRouter(t *testing.T) (http.Handler, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := testMocks{
		auth:     mock.NewMockAuthService(ctrl),
		reset:    mock.NewMockPasswordResetService(ctrl),
		expenses: mock.NewMockExpenseService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:          m.auth,
		PasswordResetService: m.reset,
		ExpenseService:       m.expenses,
		AppInfoService:       m.appInfo,
	}
	cfg := config.Server{AllowedOrigins: []string{"http://localhost:3000"}}

	return NewHandler(services, cfg, logger.Nop()).Init(), m
}

// expectAuthorized makes the next ResolveIdentity call succeed for testUser.
func (m testMocks) expectAuthorized() {
	m.auth.EXPECT().ResolveIdentity(gomock.Any(), testToken).Return(testUser, nil)
}

func doRequest(router http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return serve(router, req)
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testToken}
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.DetailResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Detail
}

func newRequest(method, target, body string) *http.Request {
	return httptest.NewRequest(method, target, strings.NewReader(body))
}

func newFormRequest(target string, form url.Values) *http.Request {
	req := newRequest(http.MethodPost, target, form.Encode())
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
