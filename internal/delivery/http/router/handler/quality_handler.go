package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"curator/internal/delivery/http/response"
	"curator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QualityHandlerParams holds dependencies for QualityHandler, injected by Fx.
type QualityHandlerParams struct {
	fx.In

	QualityUC usecase.QualityUsecase
	Logger    *slog.Logger
}

// QualityHandler serves the location hierarchy checks and pruning routes.
type QualityHandler struct {
	qualityUC usecase.QualityUsecase
	logger    *slog.Logger
}

// NewQualityHandler is the constructor for QualityHandler
func NewQualityHandler(params QualityHandlerParams) *QualityHandler {
	return &QualityHandler{
		qualityUC: params.QualityUC,
		logger:    params.Logger,
	}
}

// Checks returns every data-quality check, most severe first.
func (h *QualityHandler) Checks(c echo.Context) error {
	checks, err := h.qualityUC.Checks(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checks, "Checks computed")
}

// Stats returns product counts by status.
func (h *QualityHandler) Stats(c echo.Context) error {
	stats, err := h.qualityUC.ProductStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// RedundantProducts lists products carrying a redundant location tag.
func (h *QualityHandler) RedundantProducts(c echo.Context) error {
	products, err := h.qualityUC.RedundantProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Reload reloads locations and products from the store.
func (h *QualityHandler) Reload(c echo.Context) error {
	info, err := h.qualityUC.Reload(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, info, "Snapshot reloaded")
}

// Ancestors resolves the ancestor chain of a location.
func (h *QualityHandler) Ancestors(c echo.Context) error {
	out, err := h.qualityUC.Ancestors(c.Request().Context(), c.Param("mapboxId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out, "")
}

// PruneProduct submits one product's tag-set without redundant tags.
func (h *QualityHandler) PruneProduct(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	result, err := h.qualityUC.PruneProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Pruned locations submitted")
}

// PruneAll prunes every product with redundant tags.
func (h *QualityHandler) PruneAll(c echo.Context) error {
	summary, err := h.qualityUC.PruneAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Pruning finished")
}
