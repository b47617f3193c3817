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

var featureSortColumns = map[string]string{
	"id":       "id",
	"active":   "active",
	"position": "position",
}

// FeatureHandlers handles CRUD for the highlighted selling points.
type FeatureHandlers struct {
	repo repositories.FeatureRepository
}

func NewFeatureHandlers(repo repositories.FeatureRepository) *FeatureHandlers {
	return &FeatureHandlers{repo: repo}
}

type featureRequest struct {
	Active   bool                 `json:"active"`
	Position int                  `json:"position" validate:"min=0"`
	Icon     string               `json:"icon"`
	Data     []models.FeatureData `json:"data" validate:"required,min=1,dive"`
}

// List handles GET /features
func (h *FeatureHandlers) List(c echo.Context) error {
	var params common.ListParams
	if err := c.Bind(&params); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	params.Normalize()
	sort := params.SortFor(featureSortColumns, "position")

	ctx := c.Request().Context()
	items, err := h.repo.List(ctx, sort, params.PerPage, params.Offset())
	if err != nil {
		return common.SendServerError(c, "Failed to load features")
	}
	total, err := h.repo.Count(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to count features")
	}
	return c.JSON(http.StatusOK, models.NewPaginated(items, total, params.WirePage(), params.PerPage))
}

// Get handles GET /features/:id
func (h *FeatureHandlers) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	feature, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Feature")
	}
	return c.JSON(http.StatusOK, feature)
}

// Create handles POST /features
func (h *FeatureHandlers) Create(c echo.Context) error {
	var req featureRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	feature := &models.Feature{
		Active:   req.Active,
		Position: req.Position,
		Icon:     req.Icon,
		Data:     req.Data,
	}
	if err := h.repo.Create(c.Request().Context(), feature); err != nil {
		return common.SendServerError(c, "Failed to create feature")
	}
	return c.JSON(http.StatusCreated, feature)
}

// Update handles PUT /features/:id
func (h *FeatureHandlers) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req featureRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	feature := &models.Feature{
		ID:       id,
		Active:   req.Active,
		Position: req.Position,
		Icon:     req.Icon,
		Data:     req.Data,
	}
	if err := h.repo.Update(c.Request().Context(), feature); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Feature")
		}
		return common.SendServerError(c, "Failed to update feature")
	}
	return c.JSON(http.StatusOK, feature)
}

// Delete handles DELETE /features/:id
func (h *FeatureHandlers) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to delete feature")
	}
	return c.NoContent(http.StatusNoContent)
}
