package handlers

import (
	"errors"
	"net/http"

	"backoffice/internal/common"
	"backoffice/internal/models"
	"backoffice/internal/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var homeWebSortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"active":     "active",
	"created_at": "created_at",
}

var validBlockTypes = map[string]bool{
	models.HomeBlockSlider:    true,
	models.HomeBlockInstagram: true,
	models.HomeBlockMidBanner: true,
	models.HomeBlockCategory:  true,
}

// HomeWebHandlers handles home page definitions and their ordered block
// layouts.
type HomeWebHandlers struct {
	repo repositories.HomeWebRepository
}

func NewHomeWebHandlers(repo repositories.HomeWebRepository) *HomeWebHandlers {
	return &HomeWebHandlers{repo: repo}
}

type homeWebRequest struct {
	Name   string  `json:"name" validate:"required"`
	Active bool    `json:"active"`
	Stores []int64 `json:"stores"`
}

type layoutBlockRequest struct {
	BlockType  string `json:"block_type" validate:"required"`
	ResourceID int64  `json:"resource_id" validate:"required,min=1"`
}

// List handles GET /home-webs
func (h *HomeWebHandlers) List(c echo.Context) error {
	var params common.ListParams
	if err := c.Bind(&params); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	params.Normalize()
	sort := params.SortFor(homeWebSortColumns, "id")

	ctx := c.Request().Context()
	items, err := h.repo.List(ctx, sort, params.PerPage, params.Offset())
	if err != nil {
		return common.SendServerError(c, "Failed to load home pages")
	}
	total, err := h.repo.Count(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to count home pages")
	}
	return c.JSON(http.StatusOK, models.NewPaginated(items, total, params.WirePage(), params.PerPage))
}

// Get handles GET /home-webs/:id, layouts included.
func (h *HomeWebHandlers) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	homeWeb, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Home page")
	}
	return c.JSON(http.StatusOK, homeWeb)
}

// Create handles POST /home-webs
func (h *HomeWebHandlers) Create(c echo.Context) error {
	var req homeWebRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	homeWeb := &models.HomeWeb{
		Name:   req.Name,
		Active: req.Active,
		Stores: req.Stores,
	}
	if err := h.repo.Create(c.Request().Context(), homeWeb); err != nil {
		return common.SendServerError(c, "Failed to create home page")
	}
	return c.JSON(http.StatusCreated, homeWeb)
}

// Update handles PUT /home-webs/:id
func (h *HomeWebHandlers) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req homeWebRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	homeWeb := &models.HomeWeb{
		ID:     id,
		Name:   req.Name,
		Active: req.Active,
		Stores: req.Stores,
	}
	if err := h.repo.Update(c.Request().Context(), homeWeb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Home page")
		}
		return common.SendServerError(c, "Failed to update home page")
	}
	return c.JSON(http.StatusOK, homeWeb)
}

// Delete handles DELETE /home-webs/:id
func (h *HomeWebHandlers) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to delete home page")
	}
	return c.NoContent(http.StatusNoContent)
}

// ReplaceLayouts handles PUT /home-webs/:id/layouts. The submitted array
// replaces the stored block list; positions follow array order.
func (h *HomeWebHandlers) ReplaceLayouts(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req struct {
		Layouts []layoutBlockRequest `json:"layouts" validate:"required,dive"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "layouts", err.Error())
	}

	layouts := make([]*models.LayoutHomeWeb, len(req.Layouts))
	for i, block := range req.Layouts {
		if !validBlockTypes[block.BlockType] {
			return common.SendValidationError(c, "block_type", "unknown block type "+block.BlockType)
		}
		layouts[i] = &models.LayoutHomeWeb{
			HomeWebID:  id,
			BlockType:  block.BlockType,
			ResourceID: block.ResourceID,
			Position:   i,
		}
	}

	if err := h.repo.ReplaceLayouts(c.Request().Context(), id, layouts); err != nil {
		return common.SendServerError(c, "Failed to replace home page layouts")
	}
	return c.JSON(http.StatusOK, layouts)
}
