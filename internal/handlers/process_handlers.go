package handlers

import (
	"errors"
	"net/http"

	"backoffice/internal/common"
	"backoffice/internal/models"
	"backoffice/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProcessHandlers handles file-driven bulk operations: uploading the CSV,
// triggering an immediate run and inspecting results.
type ProcessHandlers struct {
	processService services.ProcessService
}

func NewProcessHandlers(processService services.ProcessService) *ProcessHandlers {
	return &ProcessHandlers{processService: processService}
}

// Create handles POST /processes (multipart: "type" field, "file" field).
func (h *ProcessHandlers) Create(c echo.Context) error {
	processType := c.FormValue("type")
	if !models.ValidProcessType(processType) {
		return common.SendValidationError(c, "type", "must be stock_update or order_status")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return common.SendValidationError(c, "file", "csv file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return common.SendServerError(c, "Failed to read uploaded file")
	}
	defer file.Close()

	ctx := c.Request().Context()
	var createdBy *uuid.UUID
	if userID, ok := common.GetUserIDFromContext(ctx); ok {
		createdBy = &userID
	}

	contentType := fileHeader.Header.Get("Content-Type")
	process, err := h.processService.CreateFromUpload(ctx, processType, fileHeader.Filename, contentType, file, fileHeader.Size, createdBy)
	if err != nil {
		if errors.Is(err, services.ErrUnknownProcessType) {
			return common.SendValidationError(c, "type", err.Error())
		}
		return common.SendServerError(c, "Failed to create process")
	}
	return c.JSON(http.StatusCreated, process)
}

// Execute handles POST /processes/:id/execute, running the process
// immediately instead of waiting for the scheduler.
func (h *ProcessHandlers) Execute(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendValidationError(c, "id", "must be a valid UUID")
	}

	process, err := h.processService.Execute(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Process")
	}
	return c.JSON(http.StatusOK, process)
}

// Get handles GET /processes/:id
func (h *ProcessHandlers) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendValidationError(c, "id", "must be a valid UUID")
	}

	process, err := h.processService.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Process")
	}
	return c.JSON(http.StatusOK, process)
}

// List handles GET /processes
func (h *ProcessHandlers) List(c echo.Context) error {
	var params common.ListParams
	if err := c.Bind(&params); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	params.Normalize()

	processes, total, err := h.processService.List(c.Request().Context(), params.PerPage, params.Offset())
	if err != nil {
		return common.SendServerError(c, "Failed to load processes")
	}
	return c.JSON(http.StatusOK, models.NewPaginated(processes, total, params.WirePage(), params.PerPage))
}
