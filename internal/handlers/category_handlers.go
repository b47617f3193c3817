package handlers

import (
	"net/http"
	"strconv"

	"backoffice/internal/common"
	"backoffice/internal/models"
	"backoffice/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandlers handles HTTP requests for the category tree.
type CategoryHandlers struct {
	categoryService services.CategoryService
}

func NewCategoryHandlers(categoryService services.CategoryService) *CategoryHandlers {
	return &CategoryHandlers{categoryService: categoryService}
}

type categoryRequest struct {
	ParentID *int64                `json:"parent_id"`
	ErpID    *string               `json:"erp_id"`
	Data     []models.CategoryData `json:"data" validate:"required,min=1,dive"`
	URLs     []models.CategoryURL  `json:"urls" validate:"required,min=1,dive"`
	Stores   []int64               `json:"stores"`
}

// GetTree handles GET /categories/tree
func (h *CategoryHandlers) GetTree(c echo.Context) error {
	tree, err := h.categoryService.Tree(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to load category tree")
	}
	if tree == nil {
		tree = []*models.Category{}
	}
	return c.JSON(http.StatusOK, tree)
}

// GetOptions handles GET /categories/options?excludeId=&languageId=
func (h *CategoryHandlers) GetOptions(c echo.Context) error {
	var excludeID int64
	if raw := c.QueryParam("excludeId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return common.SendValidationError(c, "excludeId", "must be an integer")
		}
		excludeID = parsed
	}

	languageID, err := strconv.ParseInt(c.QueryParam("languageId"), 10, 64)
	if err != nil || languageID <= 0 {
		return common.SendValidationError(c, "languageId", "must be a positive integer")
	}

	options, err := h.categoryService.Options(c.Request().Context(), excludeID, languageID)
	if err != nil {
		return common.SendServerError(c, "Failed to load category options")
	}
	return c.JSON(http.StatusOK, options)
}

// GetCategory handles GET /categories/:id
func (h *CategoryHandlers) GetCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	category, err := h.categoryService.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Category")
	}
	return c.JSON(http.StatusOK, category)
}

// CreateCategory handles POST /categories
func (h *CategoryHandlers) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	category := &models.Category{
		ParentID: req.ParentID,
		ErpID:    req.ErpID,
		Data:     req.Data,
		URLs:     req.URLs,
		Stores:   req.Stores,
	}
	if err := h.categoryService.Create(c.Request().Context(), category); err != nil {
		if err == services.ErrParentNotFound {
			return common.SendClientError(c, "Parent category not found")
		}
		return common.SendServerError(c, "Failed to create category")
	}
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT /categories/:id
func (h *CategoryHandlers) UpdateCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	category := &models.Category{
		ID:       id,
		ParentID: req.ParentID,
		ErpID:    req.ErpID,
		Data:     req.Data,
		URLs:     req.URLs,
		Stores:   req.Stores,
	}
	if err := h.categoryService.Update(c.Request().Context(), category); err != nil {
		switch err {
		case services.ErrCyclicParent:
			return c.JSON(http.StatusUnprocessableEntity,
				common.NewErrorResponse("CYCLIC_PARENT", "Category cannot be moved under one of its own descendants", nil))
		case services.ErrParentNotFound:
			return common.SendClientError(c, "Parent category not found")
		default:
			return common.SendServerError(c, "Failed to update category")
		}
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /categories/:id
func (h *CategoryHandlers) DeleteCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		if err == services.ErrCategoryHasChildren {
			return common.SendConflictError(c, "Category still has children")
		}
		return common.SendServerError(c, "Failed to delete category")
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdatePositions handles PUT /categories/positions
func (h *CategoryHandlers) UpdatePositions(c echo.Context) error {
	var req struct {
		OrderedIDs []int64 `json:"ordered_ids" validate:"required,min=1"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "ordered_ids", err.Error())
	}

	if err := h.categoryService.ReorderPositions(c.Request().Context(), req.OrderedIDs); err != nil {
		return common.SendServerError(c, "Failed to update category positions")
	}
	return c.NoContent(http.StatusNoContent)
}

// parseID parses the :id path param shared by every resource handler. The
// returned error is an echo.HTTPError rendered into the standard envelope by
// the global error handler.
func parseID(c echo.Context) (int64, error) {
	return parseIDParam(c, "id")
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}
