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

var midBannerSortColumns = map[string]string{
	"id":         "id",
	"active":     "active",
	"created_at": "created_at",
}

// MidBannerHandlers handles CRUD for the home page mid banner blocks.
type MidBannerHandlers struct {
	repo repositories.MidBannerRepository
}

func NewMidBannerHandlers(repo repositories.MidBannerRepository) *MidBannerHandlers {
	return &MidBannerHandlers{repo: repo}
}

type midBannerRequest struct {
	Active bool                   `json:"active"`
	Data   []models.MidBannerData `json:"data" validate:"required,min=1,dive"`
	Stores []int64                `json:"stores"`
}

// List handles GET /mid-banners
func (h *MidBannerHandlers) List(c echo.Context) error {
	var params common.ListParams
	if err := c.Bind(&params); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	params.Normalize()
	sort := params.SortFor(midBannerSortColumns, "id")

	ctx := c.Request().Context()
	items, err := h.repo.List(ctx, sort, params.PerPage, params.Offset())
	if err != nil {
		return common.SendServerError(c, "Failed to load mid banners")
	}
	total, err := h.repo.Count(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to count mid banners")
	}
	return c.JSON(http.StatusOK, models.NewPaginated(items, total, params.WirePage(), params.PerPage))
}

// Get handles GET /mid-banners/:id
func (h *MidBannerHandlers) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	banner, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Mid banner")
	}
	return c.JSON(http.StatusOK, banner)
}

// Create handles POST /mid-banners
func (h *MidBannerHandlers) Create(c echo.Context) error {
	var req midBannerRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	banner := &models.MidBanner{
		Active: req.Active,
		Data:   req.Data,
		Stores: req.Stores,
	}
	if err := h.repo.Create(c.Request().Context(), banner); err != nil {
		return common.SendServerError(c, "Failed to create mid banner")
	}
	return c.JSON(http.StatusCreated, banner)
}

// Update handles PUT /mid-banners/:id
func (h *MidBannerHandlers) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req midBannerRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	banner := &models.MidBanner{
		ID:     id,
		Active: req.Active,
		Data:   req.Data,
		Stores: req.Stores,
	}
	if err := h.repo.Update(c.Request().Context(), banner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Mid banner")
		}
		return common.SendServerError(c, "Failed to update mid banner")
	}
	return c.JSON(http.StatusOK, banner)
}

// Delete handles DELETE /mid-banners/:id
func (h *MidBannerHandlers) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to delete mid banner")
	}
	return c.NoContent(http.StatusNoContent)
}
