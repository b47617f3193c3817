package handlers

import (
	"net/http"

	"backoffice/internal/common"
	"backoffice/internal/services"

	"github.com/labstack/echo/v4"
)

// AuditLogsHandlers exposes the mutation audit trail.
type AuditLogsHandlers struct {
	auditService services.AuditLogsService
}

func NewAuditLogsHandlers(auditService services.AuditLogsService) *AuditLogsHandlers {
	return &AuditLogsHandlers{auditService: auditService}
}

// List handles GET /audit-logs
func (h *AuditLogsHandlers) List(c echo.Context) error {
	var params common.ListParams
	if err := c.Bind(&params); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	params.Normalize()

	entries, err := h.auditService.List(c.Request().Context(), params.PerPage, params.Offset())
	if err != nil {
		return common.SendServerError(c, "Failed to load audit logs")
	}
	return c.JSON(http.StatusOK, entries)
}
