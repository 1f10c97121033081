package handler

import (
	"errors"
	"net/http"
	"testing"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	mockUsecase "curator/internal/mocks/usecase"
	"curator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestQualityHandler(t *testing.T) (*QualityHandler, *mockUsecase.MockQualityUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockQualityUsecase(t)

	return NewQualityHandler(QualityHandlerParams{QualityUC: uc, Logger: newDiscardLogger()}), uc
}

func TestQualityHandler_Checks(t *testing.T) {
	h, uc := createTestQualityHandler(t)
	uc.EXPECT().Checks(mock.Anything).Return([]entity.Check{
		{Label: "Locations without mapbox_id", Kind: entity.CheckKindSimple, Level: entity.CheckLevelDanger, Pass: true},
	}, nil).Once()

	c, rec := newContext(http.MethodGet, "/api/v1/quality/checks", "", nil)
	require.NoError(t, h.Checks(c))

	var checks []entity.Check
	resp := decodeResponse(t, rec, &checks)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	require.Len(t, checks, 1)
	assert.Equal(t, "Locations without mapbox_id", checks[0].Label)
}

func TestQualityHandler_RedundantProducts_NotReady(t *testing.T) {
	h, uc := createTestQualityHandler(t)
	uc.EXPECT().RedundantProducts(mock.Anything).Return(nil, domainerrors.ErrSnapshotNotReady).Once()

	c, rec := newContext(http.MethodGet, "/api/v1/quality/redundant-products", "", nil)
	require.NoError(t, h.RedundantProducts(c))

	resp := decodeResponse(t, rec, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "SNAPSHOT_NOT_READY", resp.Error.Code)
}

func TestQualityHandler_Ancestors(t *testing.T) {
	h, uc := createTestQualityHandler(t)
	uc.EXPECT().Ancestors(mock.Anything, "place.ams").Return(&usecase.AncestorsOutput{
		MapboxID:      "place.ams",
		CanonicalName: "Amsterdam",
		Ancestors:     []entity.LocationTag{{MapboxID: "country.nl", CanonicalName: "Netherlands"}},
	}, nil).Once()

	c, rec := newContext(http.MethodGet, "/api/v1/locations/place.ams/ancestors", "", map[string]string{"mapboxId": "place.ams"})
	require.NoError(t, h.Ancestors(c))

	var out usecase.AncestorsOutput
	decodeResponse(t, rec, &out)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Amsterdam", out.CanonicalName)
	require.Len(t, out.Ancestors, 1)
	assert.Equal(t, "country.nl", out.Ancestors[0].MapboxID)
}

func TestQualityHandler_Ancestors_NotFound(t *testing.T) {
	h, uc := createTestQualityHandler(t)
	uc.EXPECT().Ancestors(mock.Anything, "place.nowhere").Return(nil, domainerrors.ErrLocationNotFound).Once()

	c, rec := newContext(http.MethodGet, "/", "", map[string]string{"mapboxId": "place.nowhere"})
	require.NoError(t, h.Ancestors(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQualityHandler_PruneProduct(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		setup      func(uc *mockUsecase.MockQualityUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "submitted",
			id:   "10",
			setup: func(uc *mockUsecase.MockQualityUsecase) {
				uc.EXPECT().PruneProduct(mock.Anything, int64(10)).Return(&usecase.PruneResult{
					ProductID: 10,
					Before:    []string{"Netherlands", "Amsterdam"},
					After:     []string{"Amsterdam"},
					Submitted: true,
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid id",
			id:         "abc",
			setup:      func(uc *mockUsecase.MockQualityUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name: "sink failure",
			id:   "11",
			setup: func(uc *mockUsecase.MockQualityUsecase) {
				uc.EXPECT().PruneProduct(mock.Anything, int64(11)).
					Return(nil, domainerrors.ErrTagUpdateFailed.WithDetails("rejected")).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantCode:   "TAG_UPDATE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := createTestQualityHandler(t)
			tt.setup(uc)

			c, rec := newContext(http.MethodPost, "/", "", map[string]string{"id": tt.id})
			require.NoError(t, h.PruneProduct(c))

			resp := decodeResponse(t, rec, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
			}
		})
	}
}

func TestQualityHandler_PruneAll(t *testing.T) {
	h, uc := createTestQualityHandler(t)
	uc.EXPECT().PruneAll(mock.Anything).Return(&usecase.PruneSummary{Candidates: 2, Submitted: 1, Failed: 1}, nil).Once()

	c, rec := newContext(http.MethodPost, "/api/v1/products/prune", "", nil)
	require.NoError(t, h.PruneAll(c))

	var summary usecase.PruneSummary
	decodeResponse(t, rec, &summary)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, summary.Candidates)
	assert.Equal(t, 1, summary.Failed)
}

func TestQualityHandler_UnexpectedError(t *testing.T) {
	h, uc := createTestQualityHandler(t)
	boom := errors.New("boom")
	uc.EXPECT().Reload(mock.Anything).Return(nil, boom).Once()

	c, _ := newContext(http.MethodPost, "/api/v1/quality/reload", "", nil)
	err := h.Reload(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
