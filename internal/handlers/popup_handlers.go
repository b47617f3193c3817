package handlers

import (
	"errors"
	"net/http"
	"time"

	"backoffice/internal/common"
	"backoffice/internal/models"
	"backoffice/internal/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var popupSortColumns = map[string]string{
	"id":         "id",
	"active":     "active",
	"starts_at":  "starts_at",
	"ends_at":    "ends_at",
	"created_at": "created_at",
}

// PopupHandlers handles CRUD for promotional popups.
type PopupHandlers struct {
	repo repositories.PopupRepository
}

func NewPopupHandlers(repo repositories.PopupRepository) *PopupHandlers {
	return &PopupHandlers{repo: repo}
}

type popupRequest struct {
	Active   bool               `json:"active"`
	StartsAt *time.Time         `json:"starts_at"`
	EndsAt   *time.Time         `json:"ends_at"`
	Data     []models.PopupData `json:"data" validate:"required,min=1,dive"`
	Stores   []int64            `json:"stores"`
}

// List handles GET /popups
func (h *PopupHandlers) List(c echo.Context) error {
	var params common.ListParams
	if err := c.Bind(&params); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	params.Normalize()
	sort := params.SortFor(popupSortColumns, "id")

	ctx := c.Request().Context()
	items, err := h.repo.List(ctx, sort, params.PerPage, params.Offset())
	if err != nil {
		return common.SendServerError(c, "Failed to load popups")
	}
	total, err := h.repo.Count(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to count popups")
	}
	return c.JSON(http.StatusOK, models.NewPaginated(items, total, params.WirePage(), params.PerPage))
}

// Get handles GET /popups/:id
func (h *PopupHandlers) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	popup, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Popup")
	}
	return c.JSON(http.StatusOK, popup)
}

// Create handles POST /popups
func (h *PopupHandlers) Create(c echo.Context) error {
	var req popupRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	popup := &models.Popup{
		Active:   req.Active,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Data:     req.Data,
		Stores:   req.Stores,
	}
	if err := h.repo.Create(c.Request().Context(), popup); err != nil {
		return common.SendServerError(c, "Failed to create popup")
	}
	return c.JSON(http.StatusCreated, popup)
}

// Update handles PUT /popups/:id
func (h *PopupHandlers) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req popupRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	popup := &models.Popup{
		ID:       id,
		Active:   req.Active,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Data:     req.Data,
		Stores:   req.Stores,
	}
	if err := h.repo.Update(c.Request().Context(), popup); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Popup")
		}
		return common.SendServerError(c, "Failed to update popup")
	}
	return c.JSON(http.StatusOK, popup)
}

// Delete handles DELETE /popups/:id
func (h *PopupHandlers) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to delete popup")
	}
	return c.NoContent(http.StatusNoContent)
}
