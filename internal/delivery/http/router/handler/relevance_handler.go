package handler

import (
	"log/slog"
	"net/http"

	"curator/internal/delivery/http/response"
	"curator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RelevanceHandlerParams holds dependencies for RelevanceHandler, injected by Fx.
type RelevanceHandlerParams struct {
	fx.In

	RelevanceUC usecase.RelevanceUsecase
	Logger      *slog.Logger
}

// RelevanceHandler serves the search relevance route.
type RelevanceHandler struct {
	relevanceUC usecase.RelevanceUsecase
	logger      *slog.Logger
}

// NewRelevanceHandler is the constructor for RelevanceHandler
func NewRelevanceHandler(params RelevanceHandlerParams) *RelevanceHandler {
	return &RelevanceHandler{
		relevanceUC: params.RelevanceUC,
		logger:      params.Logger,
	}
}

// Run executes the relevance check over every test case.
func (h *RelevanceHandler) Run(c echo.Context) error {
	report, err := h.relevanceUC.Run(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Relevance check finished")
}
