package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "curator/internal/delivery/context"
	"curator/internal/delivery/http/response"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/service"
	mockService "curator/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)

	return resp.Error
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		setup         func(m *mockService.MockTokenService)
		wantStatus    int
		wantCode      string
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "not a bearer token", authorization: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{
			name:          "invalid token",
			authorization: "Bearer bad",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "TOKEN_INVALID",
		},
		{
			name:          "valid token",
			authorization: "Bearer good",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{
					Roles:            []string{service.RoleCurator},
					RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{TokenSvc: tokenSvc, Logger: discardLogger()})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/quality/reload", nil)
			if tt.authorization != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authorization)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var operator string
			err := m.Authenticate(func(c echo.Context) error {
				operator = deliverycontext.GetOperator(c.Request().Context())

				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)

				return
			}
			assert.Equal(t, "alice", operator)
			assert.Equal(t, "alice", c.Get(KeySubject))
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{Logger: discardLogger()})
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	tests := []struct {
		name       string
		roles      any
		wantStatus int
	}{
		{name: "no roles on context", wantStatus: http.StatusForbidden},
		{name: "missing role", roles: []string{"viewer"}, wantStatus: http.StatusForbidden},
		{name: "has role", roles: []string{"viewer", service.RoleCurator}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
			if tt.roles != nil {
				c.Set(KeyRoles, tt.roles)
			}

			require.NoError(t, m.RequireRole(service.RoleCurator)(next)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Equal(t, "FORBIDDEN", decodeError(t, rec).Code)
			}
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails string
	}{
		{
			name:        "application error",
			err:         errors.Wrap(domainerrors.ErrTitleNotFound.WithDetails("title 7"), "load title"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "TITLE_NOT_FOUND",
			wantDetails: "title 7",
		},
		{name: "unknown route", err: echo.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND", wantDetails: "/missing"},
		{name: "body too large", err: echo.ErrStatusRequestEntityTooLarge, wantStatus: http.StatusRequestEntityTooLarge, wantCode: "HTTP_ERROR"},
		{name: "unexpected error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), rec)

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, tt.wantDetails, info.Details)
		})
	}
}
