package handler

import (
	"net/http"
	"testing"

	domainerrors "curator/internal/domain/errors"
	mockUsecase "curator/internal/mocks/usecase"
	"curator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRelevanceHandler_Run(t *testing.T) {
	uc := mockUsecase.NewMockRelevanceUsecase(t)
	h := NewRelevanceHandler(RelevanceHandlerParams{RelevanceUC: uc, Logger: newDiscardLogger()})

	uc.EXPECT().Run(mock.Anything).Return(&usecase.RelevanceReport{Cases: 3, Passed: 2, Failed: 1}, nil).Once()

	c, rec := newContext(http.MethodPost, "/api/v1/relevance/run", "", nil)
	require.NoError(t, h.Run(c))

	var report usecase.RelevanceReport
	decodeResponse(t, rec, &report)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, report.Cases)
	assert.Equal(t, 1, report.Failed)
}

func TestRelevanceHandler_Run_CasesUnavailable(t *testing.T) {
	uc := mockUsecase.NewMockRelevanceUsecase(t)
	h := NewRelevanceHandler(RelevanceHandlerParams{RelevanceUC: uc, Logger: newDiscardLogger()})

	uc.EXPECT().Run(mock.Anything).Return(nil, domainerrors.ErrSearchCasesUnavailable.WithDetails("status 403")).Once()

	c, rec := newContext(http.MethodPost, "/api/v1/relevance/run", "", nil)
	require.NoError(t, h.Run(c))

	resp := decodeResponse(t, rec, nil)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.NotEqual(t, http.StatusOK, rec.Code)
}
