package handlers

import (
	"errors"
	"net/http"

	"backoffice/internal/catalog"
	"backoffice/internal/common"
	"backoffice/internal/models"
	"backoffice/internal/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// MenuSettingsHandlers handles the storefront navigation menu. The menu is
// small and always edited as a whole, so the list is not paginated.
type MenuSettingsHandlers struct {
	repo repositories.MenuSettingsRepository
}

func NewMenuSettingsHandlers(repo repositories.MenuSettingsRepository) *MenuSettingsHandlers {
	return &MenuSettingsHandlers{repo: repo}
}

type menuSettingRequest struct {
	URL      string                   `json:"url" validate:"required"`
	Position int                      `json:"position" validate:"min=0"`
	Active   bool                     `json:"active"`
	Data     []models.MenuSettingData `json:"data" validate:"required,min=1,dive"`
}

// List handles GET /menu-settings
func (h *MenuSettingsHandlers) List(c echo.Context) error {
	entries, err := h.repo.List(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to load menu settings")
	}
	if entries == nil {
		entries = []*models.MenuSetting{}
	}
	return c.JSON(http.StatusOK, entries)
}

// Get handles GET /menu-settings/:id
func (h *MenuSettingsHandlers) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	entry, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Menu entry")
	}
	return c.JSON(http.StatusOK, entry)
}

// Create handles POST /menu-settings
func (h *MenuSettingsHandlers) Create(c echo.Context) error {
	var req menuSettingRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	entry := &models.MenuSetting{
		URL:      req.URL,
		Position: req.Position,
		Active:   req.Active,
		Data:     req.Data,
	}
	if err := h.repo.Create(c.Request().Context(), entry); err != nil {
		return common.SendServerError(c, "Failed to create menu entry")
	}
	return c.JSON(http.StatusCreated, entry)
}

// Update handles PUT /menu-settings/:id
func (h *MenuSettingsHandlers) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req menuSettingRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	entry := &models.MenuSetting{
		ID:       id,
		URL:      req.URL,
		Position: req.Position,
		Active:   req.Active,
		Data:     req.Data,
	}
	if err := h.repo.Update(c.Request().Context(), entry); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Menu entry")
		}
		return common.SendServerError(c, "Failed to update menu entry")
	}
	return c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /menu-settings/:id
func (h *MenuSettingsHandlers) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to delete menu entry")
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdatePositions handles PUT /menu-settings/positions
func (h *MenuSettingsHandlers) UpdatePositions(c echo.Context) error {
	var req struct {
		OrderedIDs []int64 `json:"ordered_ids" validate:"required,min=1"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "ordered_ids", err.Error())
	}

	if err := h.repo.UpdatePositions(c.Request().Context(), catalog.Renumber(req.OrderedIDs)); err != nil {
		return common.SendServerError(c, "Failed to update menu positions")
	}
	return c.NoContent(http.StatusNoContent)
}
