package middleware

import (
	"fmt"
	"strings"

	"backoffice/internal/common"
	"backoffice/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuditMiddleware records every mutating request after it completes.
type AuditMiddleware struct {
	auditService services.AuditLogsService
}

func NewAuditMiddleware(auditService services.AuditLogsService) *AuditMiddleware {
	return &AuditMiddleware{auditService: auditService}
}

var auditedMethods = map[string]bool{
	"POST":   true,
	"PUT":    true,
	"PATCH":  true,
	"DELETE": true,
}

// AuditRequest logs write operations. Reads are never audited.
func (m *AuditMiddleware) AuditRequest() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			method := c.Request().Method
			if !auditedMethods[method] {
				return err
			}

			ctx := c.Request().Context()
			var userPtr *uuid.UUID
			if userID, ok := common.GetUserIDFromContext(ctx); ok {
				userPtr = &userID
			}

			detail := fmt.Sprintf("status=%d", c.Response().Status)
			if err != nil {
				detail = fmt.Sprintf("%s error=%v", detail, err)
			}

			if auditErr := m.auditService.Record(ctx, userPtr,
				method+" "+c.Path(), resourceFromPath(c.Path()), c.Param("id"), detail); auditErr != nil {
				c.Logger().Errorf("audit log write failed: %v", auditErr)
			}

			return err
		}
	}
}

// resourceFromPath extracts the resource segment from a route like
// /v1/categories/:id.
func resourceFromPath(path string) string {
	for _, segment := range strings.Split(path, "/") {
		if segment == "" || segment == "v1" || strings.HasPrefix(segment, ":") {
			continue
		}
		return segment
	}
	return path
}
