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

var sliderSortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"active":     "active",
	"created_at": "created_at",
}

// SliderHandlers handles home page slider layouts and their slides.
type SliderHandlers struct {
	repo repositories.SliderRepository
}

func NewSliderHandlers(repo repositories.SliderRepository) *SliderHandlers {
	return &SliderHandlers{repo: repo}
}

type sliderLayoutRequest struct {
	Name   string  `json:"name" validate:"required"`
	Active bool    `json:"active"`
	Stores []int64 `json:"stores"`
}

type sliderItemRequest struct {
	Position int                     `json:"position" validate:"min=0"`
	Data     []models.SliderItemData `json:"data" validate:"required,min=1,dive"`
}

// List handles GET /sliders
func (h *SliderHandlers) List(c echo.Context) error {
	var params common.ListParams
	if err := c.Bind(&params); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	params.Normalize()
	sort := params.SortFor(sliderSortColumns, "id")

	ctx := c.Request().Context()
	layouts, err := h.repo.List(ctx, sort, params.PerPage, params.Offset())
	if err != nil {
		return common.SendServerError(c, "Failed to load sliders")
	}
	total, err := h.repo.Count(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to count sliders")
	}
	return c.JSON(http.StatusOK, models.NewPaginated(layouts, total, params.WirePage(), params.PerPage))
}

// Get handles GET /sliders/:id, items included.
func (h *SliderHandlers) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	layout, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return common.SendNotFoundError(c, "Slider")
	}
	items, err := h.repo.ListItems(ctx, id)
	if err != nil {
		return common.SendServerError(c, "Failed to load slider items")
	}
	layout.Items = items
	return c.JSON(http.StatusOK, layout)
}

// Create handles POST /sliders
func (h *SliderHandlers) Create(c echo.Context) error {
	var req sliderLayoutRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	layout := &models.SliderLayout{
		Name:   req.Name,
		Active: req.Active,
		Stores: req.Stores,
	}
	if err := h.repo.Create(c.Request().Context(), layout); err != nil {
		return common.SendServerError(c, "Failed to create slider")
	}
	return c.JSON(http.StatusCreated, layout)
}

// Update handles PUT /sliders/:id
func (h *SliderHandlers) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req sliderLayoutRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	layout := &models.SliderLayout{
		ID:     id,
		Name:   req.Name,
		Active: req.Active,
		Stores: req.Stores,
	}
	if err := h.repo.Update(c.Request().Context(), layout); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Slider")
		}
		return common.SendServerError(c, "Failed to update slider")
	}
	return c.JSON(http.StatusOK, layout)
}

// Delete handles DELETE /sliders/:id
func (h *SliderHandlers) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to delete slider")
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateItem handles POST /sliders/:id/items
func (h *SliderHandlers) CreateItem(c echo.Context) error {
	layoutID, err := parseID(c)
	if err != nil {
		return err
	}

	var req sliderItemRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	item := &models.SliderItem{
		LayoutID: layoutID,
		Position: req.Position,
		Data:     req.Data,
	}
	if err := h.repo.CreateItem(c.Request().Context(), item); err != nil {
		return common.SendServerError(c, "Failed to create slider item")
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /sliders/:id/items/:itemId
func (h *SliderHandlers) UpdateItem(c echo.Context) error {
	layoutID, err := parseID(c)
	if err != nil {
		return err
	}
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		return err
	}

	var req sliderItemRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	item := &models.SliderItem{
		ID:       itemID,
		LayoutID: layoutID,
		Position: req.Position,
		Data:     req.Data,
	}
	if err := h.repo.UpdateItem(c.Request().Context(), item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Slider item")
		}
		return common.SendServerError(c, "Failed to update slider item")
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /sliders/:id/items/:itemId
func (h *SliderHandlers) DeleteItem(c echo.Context) error {
	layoutID, err := parseID(c)
	if err != nil {
		return err
	}
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		return err
	}
	if err := h.repo.DeleteItem(c.Request().Context(), layoutID, itemID); err != nil {
		return common.SendServerError(c, "Failed to delete slider item")
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateItemPositions handles PUT /sliders/:id/items/positions. Only rows
// whose position actually changes are written.
func (h *SliderHandlers) UpdateItemPositions(c echo.Context) error {
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
		return common.SendServerError(c, "Failed to load slider item positions")
	}
	for _, id := range req.OrderedIDs {
		if _, ok := current[id]; !ok {
			return common.SendClientError(c, "Unknown slider item in ordered list")
		}
	}

	changed := catalog.PositionDiff(req.OrderedIDs, current)
	if len(changed) > 0 {
		if err := h.repo.UpdateItemPositions(ctx, layoutID, changed); err != nil {
			return common.SendServerError(c, "Failed to update slider item positions")
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"updated": len(changed)})
}
