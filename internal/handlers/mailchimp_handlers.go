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

var mailchimpSortColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"status":     "status",
	"sent_at":    "sent_at",
	"created_at": "created_at",
}

// MailchimpHandlers handles the campaign metadata mirrored from the
// Mailchimp account.
type MailchimpHandlers struct {
	repo repositories.MailchimpRepository
}

func NewMailchimpHandlers(repo repositories.MailchimpRepository) *MailchimpHandlers {
	return &MailchimpHandlers{repo: repo}
}

type mailchimpRequest struct {
	CampaignID string     `json:"campaign_id" validate:"required"`
	Title      string     `json:"title" validate:"required"`
	ListID     string     `json:"list_id"`
	Status     string     `json:"status"`
	SentAt     *time.Time `json:"sent_at"`
}

// List handles GET /mailchimp/campaigns
func (h *MailchimpHandlers) List(c echo.Context) error {
	var params common.ListParams
	if err := c.Bind(&params); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	params.Normalize()
	sort := params.SortFor(mailchimpSortColumns, "id")

	ctx := c.Request().Context()
	items, err := h.repo.List(ctx, sort, params.PerPage, params.Offset())
	if err != nil {
		return common.SendServerError(c, "Failed to load campaigns")
	}
	total, err := h.repo.Count(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to count campaigns")
	}
	return c.JSON(http.StatusOK, models.NewPaginated(items, total, params.WirePage(), params.PerPage))
}

// Get handles GET /mailchimp/campaigns/:id
func (h *MailchimpHandlers) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	campaign, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Campaign")
	}
	return c.JSON(http.StatusOK, campaign)
}

// Create handles POST /mailchimp/campaigns
func (h *MailchimpHandlers) Create(c echo.Context) error {
	var req mailchimpRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	campaign := &models.MailchimpCampaign{
		CampaignID: req.CampaignID,
		Title:      req.Title,
		ListID:     req.ListID,
		Status:     req.Status,
		SentAt:     req.SentAt,
	}
	if err := h.repo.Create(c.Request().Context(), campaign); err != nil {
		return common.SendServerError(c, "Failed to create campaign")
	}
	return c.JSON(http.StatusCreated, campaign)
}

// Update handles PUT /mailchimp/campaigns/:id
func (h *MailchimpHandlers) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req mailchimpRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	campaign := &models.MailchimpCampaign{
		ID:         id,
		CampaignID: req.CampaignID,
		Title:      req.Title,
		ListID:     req.ListID,
		Status:     req.Status,
		SentAt:     req.SentAt,
	}
	if err := h.repo.Update(c.Request().Context(), campaign); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Campaign")
		}
		return common.SendServerError(c, "Failed to update campaign")
	}
	return c.JSON(http.StatusOK, campaign)
}

// Delete handles DELETE /mailchimp/campaigns/:id
func (h *MailchimpHandlers) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to delete campaign")
	}
	return c.NoContent(http.StatusNoContent)
}
