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

var announcementSortColumns = map[string]string{
	"id":         "id",
	"active":     "active",
	"starts_at":  "starts_at",
	"ends_at":    "ends_at",
	"created_at": "created_at",
}

// AnnouncementHandlers handles CRUD for storefront announcements.
type AnnouncementHandlers struct {
	repo repositories.AnnouncementRepository
}

func NewAnnouncementHandlers(repo repositories.AnnouncementRepository) *AnnouncementHandlers {
	return &AnnouncementHandlers{repo: repo}
}

type announcementRequest struct {
	Active   bool                      `json:"active"`
	StartsAt *time.Time                `json:"starts_at"`
	EndsAt   *time.Time                `json:"ends_at"`
	Data     []models.AnnouncementData `json:"data" validate:"required,min=1,dive"`
	Stores   []int64                   `json:"stores"`
}

// List handles GET /announcements
func (h *AnnouncementHandlers) List(c echo.Context) error {
	var params common.ListParams
	if err := c.Bind(&params); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	params.Normalize()
	sort := params.SortFor(announcementSortColumns, "id")

	ctx := c.Request().Context()
	items, err := h.repo.List(ctx, sort, params.PerPage, params.Offset())
	if err != nil {
		return common.SendServerError(c, "Failed to load announcements")
	}
	total, err := h.repo.Count(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to count announcements")
	}
	return c.JSON(http.StatusOK, models.NewPaginated(items, total, params.WirePage(), params.PerPage))
}

// Get handles GET /announcements/:id
func (h *AnnouncementHandlers) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	announcement, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Announcement")
	}
	return c.JSON(http.StatusOK, announcement)
}

// Create handles POST /announcements
func (h *AnnouncementHandlers) Create(c echo.Context) error {
	var req announcementRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	announcement := &models.Announcement{
		Active:   req.Active,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Data:     req.Data,
		Stores:   req.Stores,
	}
	if err := h.repo.Create(c.Request().Context(), announcement); err != nil {
		return common.SendServerError(c, "Failed to create announcement")
	}
	return c.JSON(http.StatusCreated, announcement)
}

// Update handles PUT /announcements/:id
func (h *AnnouncementHandlers) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req announcementRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	announcement := &models.Announcement{
		ID:       id,
		Active:   req.Active,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Data:     req.Data,
		Stores:   req.Stores,
	}
	if err := h.repo.Update(c.Request().Context(), announcement); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Announcement")
		}
		return common.SendServerError(c, "Failed to update announcement")
	}
	return c.JSON(http.StatusOK, announcement)
}

// Delete handles DELETE /announcements/:id
func (h *AnnouncementHandlers) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to delete announcement")
	}
	return c.NoContent(http.StatusNoContent)
}
