package router

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"curator/internal/delivery/http/middleware"
	"curator/internal/delivery/http/router/handler"
	"curator/internal/delivery/http/validator"
	"curator/internal/domain/service"
	mockService "curator/internal/mocks/service"
	mockUsecase "curator/internal/mocks/usecase"
	"curator/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fixtures struct {
	echo      *echo.Echo
	tokenSvc  *mockService.MockTokenService
	qualityUC *mockUsecase.MockQualityUsecase
	titleUC   *mockUsecase.MockTitleUsecase
}

func createTestRouter(t *testing.T) *fixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := &fixtures{
		echo:      echo.New(),
		tokenSvc:  mockService.NewMockTokenService(t),
		qualityUC: mockUsecase.NewMockQualityUsecase(t),
		titleUC:   mockUsecase.NewMockTitleUsecase(t),
	}
	fx.echo.Validator = validator.New()

	NewRouter(RouterParams{
		QualityHandler: handler.NewQualityHandler(handler.QualityHandlerParams{QualityUC: fx.qualityUC, Logger: logger}),
		TitleHandler:   handler.NewTitleHandler(handler.TitleHandlerParams{TitleUC: fx.titleUC, Logger: logger}),
		RelevanceHandler: handler.NewRelevanceHandler(handler.RelevanceHandlerParams{
			RelevanceUC: mockUsecase.NewMockRelevanceUsecase(t),
			Logger:      logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenSvc: fx.tokenSvc, Logger: logger}),
	}).RegisterRoutes(fx.echo)

	return fx
}

func (fx *fixtures) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func claims(roles ...string) *service.Claims {
	return &service.Claims{Roles: roles, RegisteredClaims: jwt.RegisteredClaims{Subject: "ops@example.com"}}
}

func TestRouter_HealthCheck(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_ReadRoutesArePublic(t *testing.T) {
	fx := createTestRouter(t)
	fx.qualityUC.EXPECT().ProductStats(mock.Anything).Return(&usecase.ProductStats{Active: 2, Total: 2}, nil).Once()

	rec := fx.do(http.MethodGet, "/api/v1/quality/stats", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_PruneRequiresCuratorRole(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		setup      func(fx *fixtures)
		wantStatus int
	}{
		{
			name:       "missing token",
			setup:      func(fx *fixtures) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "invalid token",
			token: "bad",
			setup: func(fx *fixtures) {
				fx.tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "missing role",
			token: "viewer",
			setup: func(fx *fixtures) {
				fx.tokenSvc.EXPECT().ValidateToken("viewer").Return(claims("viewer"), nil).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:  "curator",
			token: "curator",
			setup: func(fx *fixtures) {
				fx.tokenSvc.EXPECT().ValidateToken("curator").Return(claims(service.RoleCurator), nil).Once()
				fx.qualityUC.EXPECT().PruneProduct(mock.Anything, int64(10)).
					Return(&usecase.PruneResult{ProductID: 10, Submitted: true}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRouter(t)
			tt.setup(fx)

			rec := fx.do(http.MethodPost, "/api/v1/products/10/prune", tt.token)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_BreakAlias(t *testing.T) {
	fx := createTestRouter(t)
	fx.tokenSvc.EXPECT().ValidateToken("curator").Return(claims(service.RoleCurator), nil).Once()
	fx.titleUC.EXPECT().Apply(mock.Anything, int64(4), usecase.TitleActionBreakAlias).Return(nil, nil).Once()

	rec := fx.do(http.MethodDelete, "/api/v1/titles/4/alias", "curator")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AncestorsReadsPathParam(t *testing.T) {
	fx := createTestRouter(t)
	fx.qualityUC.EXPECT().Ancestors(mock.Anything, "place.ams").
		Return(&usecase.AncestorsOutput{MapboxID: "place.ams", CanonicalName: "Amsterdam"}, nil).Once()

	rec := fx.do(http.MethodGet, "/api/v1/locations/place.ams/ancestors", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"canonical_name":"Amsterdam"`)
}
