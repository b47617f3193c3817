package services

import (
	"context"

	"github.com/google/uuid"

	"backoffice/internal/models"
	"backoffice/internal/repositories"
)

type AuditLogsService interface {
	Record(ctx context.Context, userID *uuid.UUID, action, resource, resourceID, detail string) error
	List(ctx context.Context, limit, offset int) ([]*models.AuditLog, error)
}

type auditLogsService struct {
	repo repositories.AuditLogsRepository
}

func NewAuditLogsService(repo repositories.AuditLogsRepository) AuditLogsService {
	return &auditLogsService{repo: repo}
}

func (s *auditLogsService) Record(ctx context.Context, userID *uuid.UUID, action, resource, resourceID, detail string) error {
	return s.repo.Create(ctx, &models.AuditLog{
		ID:         uuid.New(),
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Detail:     detail,
	})
}

func (s *auditLogsService) List(ctx context.Context, limit, offset int) ([]*models.AuditLog, error) {
	return s.repo.List(ctx, limit, offset)
}
