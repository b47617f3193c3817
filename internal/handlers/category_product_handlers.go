package handlers

import (
	"errors"
	"net/http"

	"backoffice/internal/common"
	"backoffice/internal/models"
	"backoffice/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryProductHandlers handles the product grid inside one category:
// listing with filters, drag and drop reordering, row moves and bulk edits.
type CategoryProductHandlers struct {
	service services.CategoryProductService
}

func NewCategoryProductHandlers(service services.CategoryProductService) *CategoryProductHandlers {
	return &CategoryProductHandlers{service: service}
}

// List handles GET /categories/:id/products?status=&name=&reference=
func (h *CategoryProductHandlers) List(c echo.Context) error {
	categoryID, err := parseID(c)
	if err != nil {
		return err
	}

	filter := models.CategoryProductFilter{
		Name:      c.QueryParam("name"),
		Reference: c.QueryParam("reference"),
	}
	if status := c.QueryParam("status"); status != "" {
		if status != models.ProductStatusDraft && status != models.ProductStatusEnabled {
			return common.SendValidationError(c, "status", "must be draft or enabled")
		}
		filter.Status = &status
	}

	products, err := h.service.List(c.Request().Context(), categoryID, filter)
	if err != nil {
		return common.SendNotFoundError(c, "Category")
	}
	if products == nil {
		products = []*models.CategoryProduct{}
	}
	return c.JSON(http.StatusOK, products)
}

// UpdatePositions handles PUT /categories/:id/products/positions
func (h *CategoryProductHandlers) UpdatePositions(c echo.Context) error {
	categoryID, err := parseID(c)
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

	changed, err := h.service.UpdatePositions(c.Request().Context(), categoryID, req.OrderedIDs)
	if err != nil {
		if errors.Is(err, services.ErrProductNotInCategory) {
			return common.SendClientError(c, err.Error())
		}
		return common.SendServerError(c, "Failed to update product positions")
	}
	return c.JSON(http.StatusOK, map[string]any{"updated": len(changed)})
}

// UpdatePosition handles PUT /categories/:id/products/:productId/position
func (h *CategoryProductHandlers) UpdatePosition(c echo.Context) error {
	categoryID, err := parseID(c)
	if err != nil {
		return err
	}
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return err
	}

	var req struct {
		Position int `json:"position" validate:"min=0"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "position", err.Error())
	}

	if err := h.service.UpdatePosition(c.Request().Context(), categoryID, productID, req.Position); err != nil {
		return common.SendServerError(c, "Failed to update product position")
	}
	return c.NoContent(http.StatusNoContent)
}

// Reorder handles POST /categories/:id/products/reorder
func (h *CategoryProductHandlers) Reorder(c echo.Context) error {
	categoryID, err := parseID(c)
	if err != nil {
		return err
	}

	var req struct {
		From int `json:"from" validate:"min=0"`
		To   int `json:"to" validate:"min=0"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	if err := h.service.Reorder(c.Request().Context(), categoryID, req.From, req.To); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// MoveRow handles POST /categories/:id/products/move-row
func (h *CategoryProductHandlers) MoveRow(c echo.Context) error {
	categoryID, err := parseID(c)
	if err != nil {
		return err
	}

	var req struct {
		Row       int    `json:"row" validate:"min=0"`
		Columns   int    `json:"columns" validate:"required,min=1"`
		Direction string `json:"direction" validate:"required,oneof=up down"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	if err := h.service.MoveRow(c.Request().Context(), categoryID, req.Row, req.Columns, req.Direction == "up"); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// Attach handles POST /categories/:id/products
func (h *CategoryProductHandlers) Attach(c echo.Context) error {
	categoryID, err := parseID(c)
	if err != nil {
		return err
	}

	var req struct {
		ProductID int64 `json:"product_id" validate:"required,min=1"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "product_id", err.Error())
	}

	if err := h.service.Attach(c.Request().Context(), categoryID, req.ProductID); err != nil {
		return common.SendNotFoundError(c, "Category or product")
	}
	return c.NoContent(http.StatusCreated)
}

// Detach handles DELETE /categories/:id/products/:productId
func (h *CategoryProductHandlers) Detach(c echo.Context) error {
	categoryID, err := parseID(c)
	if err != nil {
		return err
	}
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return err
	}

	if err := h.service.Detach(c.Request().Context(), categoryID, productID); err != nil {
		return common.SendServerError(c, "Failed to detach product")
	}
	return c.NoContent(http.StatusNoContent)
}

// BulkDetach handles DELETE /categories/:id/products
func (h *CategoryProductHandlers) BulkDetach(c echo.Context) error {
	categoryID, err := parseID(c)
	if err != nil {
		return err
	}

	var req struct {
		ProductIDs []int64 `json:"product_ids" validate:"required,min=1"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "product_ids", err.Error())
	}

	if err := h.service.BulkDetach(c.Request().Context(), categoryID, req.ProductIDs); err != nil {
		return common.SendServerError(c, "Failed to detach products")
	}
	return c.NoContent(http.StatusNoContent)
}
