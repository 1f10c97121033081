package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"curator/config"
	deliverycontext "curator/internal/delivery/context"
	domainerrors "curator/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "", want: false},
		{id: "3f2a-41bc", want: true},
		{id: "has space", want: false},
		{id: "line\nbreak", want: false},
		{id: strings.Repeat("a", maxRequestIDLength), want: true},
		{id: strings.Repeat("a", maxRequestIDLength+1), want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validRequestID(tt.id), "id %q", tt.id)
	}
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "reuses incoming id", header: "req-1", keep: true},
		{name: "replaces malformed id", header: "bad id"},
		{name: "generates missing id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var ctxID string
			err := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			respID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, respID, ctxID)
			assert.Equal(t, respID, deliverycontext.GetRequestID(c))
			if tt.keep {
				assert.Equal(t, tt.header, respID)
			} else {
				assert.Len(t, respID, 36)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		handler echo.HandlerFunc
		wantLog string
	}{
		{
			name:    "quiet success outside debug",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
		{
			name:    "success in debug",
			debug:   true,
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog: "status=200",
		},
		{
			name:    "client error outside debug",
			handler: func(c echo.Context) error { return echo.ErrNotFound },
		},
		{
			name:    "application error maps to its status",
			handler: func(c echo.Context) error { return errors.WithStack(domainerrors.ErrTagUpdateFailed) },
			wantLog: "status=502",
		},
		{
			name:    "unknown error is a server error",
			handler: func(c echo.Context) error { return errors.New("boom") },
			wantLog: "status=500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/quality/stats", nil), httptest.NewRecorder())
			_ = m.Handle(tt.handler)(c)

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), "uri=/api/v1/quality/stats")
		})
	}
}
