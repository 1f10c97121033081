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

// TitleHandlerParams holds dependencies for TitleHandler, injected by Fx.
type TitleHandlerParams struct {
	fx.In

	TitleUC usecase.TitleUsecase
	Logger  *slog.Logger
}

// TitleHandler serves the job title alias routes.
type TitleHandler struct {
	titleUC usecase.TitleUsecase
	logger  *slog.Logger
}

// NewTitleHandler is the constructor for TitleHandler
func NewTitleHandler(params TitleHandlerParams) *TitleHandler {
	return &TitleHandler{
		titleUC: params.TitleUC,
		logger:  params.Logger,
	}
}

// MakeAliasRequest represents the request body for aliasing a title
type MakeAliasRequest struct {
	CanonicalID int64 `json:"canonical_id" validate:"required,gt=0"`
}

// ListTitles returns titles, optionally filtered by the q pattern.
func (h *TitleHandler) ListTitles(c echo.Context) error {
	var input usecase.ListTitlesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query")
	}

	list, err := h.titleUC.ListTitles(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list, "")
}

// Checks returns the alias graph findings.
func (h *TitleHandler) Checks(c echo.Context) error {
	out, err := h.titleUC.Checks(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out, "")
}

// PossibleAliases suggests aliases of a title.
func (h *TitleHandler) PossibleAliases(c echo.Context) error {
	id, ok := titleIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid title ID")
	}

	list, err := h.titleUC.PossibleAliases(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list, "")
}

// MakeAlias points the title at the canonical title in the request body.
func (h *TitleHandler) MakeAlias(c echo.Context) error {
	id, ok := titleIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid title ID")
	}

	var req MakeAliasRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alias input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	changed, err := h.titleUC.MakeAlias(c.Request().Context(), id, req.CanonicalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, changed, "Alias created")
}

// BreakAlias releases the title from its canonical title.
func (h *TitleHandler) BreakAlias(c echo.Context) error {
	return h.apply(c, usecase.TitleActionBreakAlias, "Alias removed")
}

// Rebase makes the alias the canonical title of its group.
func (h *TitleHandler) Rebase(c echo.Context) error {
	return h.apply(c, usecase.TitleActionRebase, "Title rebased")
}

// Deactivate marks the title inactive and releases its aliases.
func (h *TitleHandler) Deactivate(c echo.Context) error {
	return h.apply(c, usecase.TitleActionDeactivate, "Title deactivated")
}

// Decanonify clears the canonical flag and releases the title's aliases.
func (h *TitleHandler) Decanonify(c echo.Context) error {
	return h.apply(c, usecase.TitleActionDecanonify, "Title decanonified")
}

func (h *TitleHandler) apply(c echo.Context, action usecase.TitleAction, message string) error {
	id, ok := titleIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid title ID")
	}

	changed, err := h.titleUC.Apply(c.Request().Context(), id, action)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, changed, message)
}

func titleIDParam(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	return id, err == nil && id > 0
}
