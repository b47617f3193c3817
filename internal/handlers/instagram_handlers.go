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

var instagramSortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"active":     "active",
	"created_at": "created_at",
}

// InstagramHandlers handles instagram grid layouts and their tiles.
type InstagramHandlers struct {
	repo repositories.InstagramRepository
}

func NewInstagramHandlers(repo repositories.InstagramRepository) *InstagramHandlers {
	return &InstagramHandlers{repo: repo}
}

type instagramLayoutRequest struct {
	Name   string `json:"name" validate:"required"`
	Active bool   `json:"active"`
}

type instagramItemRequest struct {
	Position int    `json:"position" validate:"min=0"`
	URL      string `json:"url" validate:"required"`
	ImageKey string `json:"image_key" validate:"required"`
}

// List handles GET /instagram
func (h *InstagramHandlers) List(c echo.Context) error {
	var params common.ListParams
	if err := c.Bind(&params); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	params.Normalize()
	sort := params.SortFor(instagramSortColumns, "id")

	ctx := c.Request().Context()
	layouts, err := h.repo.List(ctx, sort, params.PerPage, params.Offset())
	if err != nil {
		return common.SendServerError(c, "Failed to load instagram layouts")
	}
	total, err := h.repo.Count(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to count instagram layouts")
	}
	return c.JSON(http.StatusOK, models.NewPaginated(layouts, total, params.WirePage(), params.PerPage))
}

// Get handles GET /instagram/:id, tiles included.
func (h *InstagramHandlers) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	layout, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return common.SendNotFoundError(c, "Instagram layout")
	}
	items, err := h.repo.ListItems(ctx, id)
	if err != nil {
		return common.SendServerError(c, "Failed to load instagram items")
	}
	layout.Items = items
	return c.JSON(http.StatusOK, layout)
}

// Create handles POST /instagram
func (h *InstagramHandlers) Create(c echo.Context) error {
	var req instagramLayoutRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	layout := &models.InstagramLayout{
		Name:   req.Name,
		Active: req.Active,
	}
	if err := h.repo.Create(c.Request().Context(), layout); err != nil {
		return common.SendServerError(c, "Failed to create instagram layout")
	}
	return c.JSON(http.StatusCreated, layout)
}

// Update handles PUT /instagram/:id
func (h *InstagramHandlers) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req instagramLayoutRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	layout := &models.InstagramLayout{
		ID:     id,
		Name:   req.Name,
		Active: req.Active,
	}
	if err := h.repo.Update(c.Request().Context(), layout); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Instagram layout")
		}
		return common.SendServerError(c, "Failed to update instagram layout")
	}
	return c.JSON(http.StatusOK, layout)
}

// Delete handles DELETE /instagram/:id
func (h *InstagramHandlers) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to delete instagram layout")
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateItem handles POST /instagram/:id/items
func (h *InstagramHandlers) CreateItem(c echo.Context) error {
	layoutID, err := parseID(c)
	if err != nil {
		return err
	}

	var req instagramItemRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	item := &models.InstagramItem{
		LayoutID: layoutID,
		Position: req.Position,
		URL:      req.URL,
		ImageKey: req.ImageKey,
	}
	if err := h.repo.CreateItem(c.Request().Context(), item); err != nil {
		return common.SendServerError(c, "Failed to create instagram item")
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /instagram/:id/items/:itemId
func (h *InstagramHandlers) UpdateItem(c echo.Context) error {
	layoutID, err := parseID(c)
	if err != nil {
		return err
	}
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		return err
	}

	var req instagramItemRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	item := &models.InstagramItem{
		ID:       itemID,
		LayoutID: layoutID,
		Position: req.Position,
		URL:      req.URL,
		ImageKey: req.ImageKey,
	}
	if err := h.repo.UpdateItem(c.Request().Context(), item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Instagram item")
		}
		return common.SendServerError(c, "Failed to update instagram item")
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /instagram/:id/items/:itemId
func (h *InstagramHandlers) DeleteItem(c echo.Context) error {
	layoutID, err := parseID(c)
	if err != nil {
		return err
	}
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		return err
	}
	if err := h.repo.DeleteItem(c.Request().Context(), layoutID, itemID); err != nil {
		return common.SendServerError(c, "Failed to delete instagram item")
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateItemPositions handles PUT /instagram/:id/items/positions
func (h *InstagramHandlers) UpdateItemPositions(c echo.Context) error {
	layoutID, err := parseID(c)
	if err != nil {
		return err
	}

	var req struct {
		OrderedIDs []int64 `json:"ordered_ids" validate:"required,min=1"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "ordered_ids", err.Error())
	}

	ctx := c.Request().Context()
	current, err := h.repo.GetItemPositions(ctx, layoutID)
	if err != nil {
		return common.SendServerError(c, "Failed to load instagram item positions")
	}
	for _, id := range req.OrderedIDs {
		if _, ok := current[id]; !ok {
			return common.SendClientError(c, "Unknown instagram item in ordered list")
		}
	}

	changed := catalog.PositionDiff(req.OrderedIDs, current)
	if len(changed) > 0 {
		if err := h.repo.UpdateItemPositions(ctx, layoutID, changed); err != nil {
			return common.SendServerError(c, "Failed to update instagram item positions")
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"updated": len(changed)})
}
