package common

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

// UserIDKey carries the authenticated user's id through the request context.
const UserIDKey contextKey = "user_id"

// ErrorResponse is the standardized error envelope returned by every
// endpoint.
type ErrorResponse struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

// NewErrorResponse builds the standardized error envelope.
func NewErrorResponse(code, message string, details map[string]string) *ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Details = details
	return &resp
}

// SendValidationError sends a 400 with per-field details.
func SendValidationError(c echo.Context, field, message string) error {
	return c.JSON(http.StatusBadRequest, NewErrorResponse("VALIDATION_ERROR", "Validation failed", map[string]string{field: message}))
}

// SendClientError sends a 400 with a message.
func SendClientError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, NewErrorResponse("CLIENT_ERROR", message, nil))
}

// SendConflictError sends a 409, used for blocking guards such as deleting a
// category that still has children.
func SendConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, NewErrorResponse("CONFLICT", message, nil))
}

// SendServerError sends a 500 with a message.
func SendServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, NewErrorResponse("SERVER_ERROR", message, nil))
}

// SendNotFoundError sends a 404 for the named resource.
func SendNotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, NewErrorResponse("NOT_FOUND", fmt.Sprintf("%s not found", resource), nil))
}

// GetUserIDFromContext extracts the authenticated user id from the request
// context.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}
