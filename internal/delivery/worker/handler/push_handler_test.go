package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"curator/config"
	"curator/internal/domain/constants"
	"curator/internal/domain/service"
	"curator/internal/infra/pubsub"
	mockRepo "curator/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type fixtures struct {
	handler     *PushHandler
	productRepo *mockRepo.MockProductRepository
}

func createTestPushHandler(t *testing.T, cfg *config.Config) *fixtures {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
		cfg.Env.Env = constants.EnvDevelop
	}

	productRepo := mockRepo.NewMockProductRepository(t)

	return &fixtures{
		handler: NewPushHandler(PushHandlerParams{
			Config:      cfg,
			Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
			ProductRepo: productRepo,
		}),
		productRepo: productRepo,
	}
}

func pushBody(t *testing.T, cmd *service.SetLocationsCommand) string {
	t.Helper()

	msg, err := pubsub.NewPushMessage(cmd, "projects/test/subscriptions/set-locations-sub")
	require.NoError(t, err)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func (fx *fixtures) push(body, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	_ = fx.handler.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_AppliesCommand(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	fx.productRepo.EXPECT().SetProductLocations(mock.Anything, int64(10), []string{"Amsterdam"}).Return(nil).Once()

	rec := fx.push(pushBody(t, &service.SetLocationsCommand{
		RequestID: "req-1",
		CommandID: "cmd-1",
		ProductID: 10,
		Locations: []string{"Amsterdam"},
		IssuedAt:  time.Now(),
	}), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_StoreFailureIsAcknowledged(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	fx.productRepo.EXPECT().SetProductLocations(mock.Anything, int64(11), []string{"Germany"}).
		Return(errors.New("connection refused")).Once()

	rec := fx.push(pushBody(t, &service.SetLocationsCommand{CommandID: "cmd-2", ProductID: 11, Locations: []string{"Germany"}}), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "not a command", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`},
		{name: "missing product id", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(`{"locations":["Amsterdam"]}`)) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushHandler(t, nil)

			rec := fx.push(tt.body, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{
			Provider:     constants.PubSubProviderGoogle,
			PushAudience: "https://tagworker.example.com/push",
		},
	}
	cfg.Env.Env = constants.EnvProduction
	body := func(t *testing.T) string {
		return pushBody(t, &service.SetLocationsCommand{CommandID: "cmd-3", ProductID: 12, Locations: []string{"Europe"}})
	}

	tests := []struct {
		name          string
		authorization string
		payload       *idtoken.Payload
		validateErr   error
		expectApply   bool
		wantStatus    int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", authorization: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", authorization: "Bearer bad", validateErr: errors.New("signature"), wantStatus: http.StatusUnauthorized},
		{
			name:          "wrong issuer",
			authorization: "Bearer token",
			payload:       &idtoken.Payload{Issuer: "https://evil.example.com"},
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "valid",
			authorization: "Bearer token",
			payload:       &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}},
			expectApply:   true,
			wantStatus:    http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushHandler(t, cfg)
			fx.handler.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "https://tagworker.example.com/push", audience)
				if tt.validateErr != nil {
					return nil, tt.validateErr
				}

				return tt.payload, nil
			}
			if tt.expectApply {
				fx.productRepo.EXPECT().SetProductLocations(mock.Anything, int64(12), []string{"Europe"}).Return(nil).Once()
			}

			rec := fx.push(body(t), tt.authorization)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestExtractRequestID(t *testing.T) {
	msg := &pubsub.PushMessage{}
	msg.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	assert.Equal(t, "from-attributes", extractRequestID(context.Background(), msg, &service.SetLocationsCommand{RequestID: "from-command"}))

	assert.Equal(t, "from-command", extractRequestID(context.Background(), &pubsub.PushMessage{}, &service.SetLocationsCommand{RequestID: "from-command"}))

	generated := extractRequestID(context.Background(), &pubsub.PushMessage{}, &service.SetLocationsCommand{})
	assert.Len(t, generated, 36)
}
